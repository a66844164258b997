package wildcard

import "sync"

const (
	// star matches any run of graphemes, including an empty one.
	star = "*"
	// anyOne matches exactly one grapheme.
	anyOne = "?"
)

// DefaultDenseCellLimit is the largest grid, in cells, that MemoAuto backs
// with a dense table. Larger grids fall back to a sparse map.
const DefaultDenseCellLimit = 1 << 20

const (
	memoUnknown uint8 = iota
	memoFalse
	memoTrue
)

// cell is a (row, col) coordinate in the match grid. Row r has consumed
// pattern[:r-1] and column c has consumed text[:c-1]; 0 marks a position
// before the start of the sequence.
type cell struct {
	row, col int
}

// memoTable records the set-once result of each visited cell.
type memoTable interface {
	get(row, col int) (value, ok bool)
	set(row, col int, value bool)
	release()
}

// denseMemo is a row-major (P+2)x(T+2) grid of memo* states.
type denseMemo struct {
	buf    *[]uint8
	cells  []uint8
	stride int
}

// densePool recycles grid buffers between calls. Buffers are zeroed on
// checkout so no result outlives the call that produced it.
var densePool = sync.Pool{
	New: func() any {
		b := make([]uint8, 0)
		return &b
	},
}

func newDenseMemo(rows, cols int) *denseMemo {
	n := rows * cols
	buf := densePool.Get().(*[]uint8)
	if cap(*buf) < n {
		*buf = make([]uint8, n)
	} else {
		*buf = (*buf)[:n]
		clear(*buf)
	}
	return &denseMemo{buf: buf, cells: *buf, stride: cols}
}

func (m *denseMemo) get(row, col int) (bool, bool) {
	v := m.cells[row*m.stride+col]
	return v == memoTrue, v != memoUnknown
}

func (m *denseMemo) set(row, col int, value bool) {
	v := memoFalse
	if value {
		v = memoTrue
	}
	m.cells[row*m.stride+col] = v
}

func (m *denseMemo) release() {
	if m.buf == nil {
		return
	}
	if cap(*m.buf) <= DefaultDenseCellLimit {
		densePool.Put(m.buf)
	}
	m.buf, m.cells = nil, nil
}

// sparseMemo only allocates for cells the search actually visits.
type sparseMemo map[cell]bool

func (m sparseMemo) get(row, col int) (bool, bool) {
	v, ok := m[cell{row, col}]
	return v, ok
}

func (m sparseMemo) set(row, col int, value bool) {
	m[cell{row, col}] = value
}

func (sparseMemo) release() {}

// newMemo picks a table for a rows x cols grid.
func newMemo(strategy MemoStrategy, denseLimit, rows, cols int) memoTable {
	switch strategy {
	case MemoDense:
		return newDenseMemo(rows, cols)
	case MemoSparse:
		return make(sparseMemo)
	}
	if rows <= denseLimit/cols {
		return newDenseMemo(rows, cols)
	}
	return make(sparseMemo)
}

// engine evaluates one pattern against one text. It is owned by a single
// call and discarded afterwards.
type engine struct {
	pattern []string
	text    []string
	memo    memoTable
	stack   []cell
}

// evaluate decides whether pattern matches all of text.
func evaluate(pattern, text []string, o *options) bool {
	rows, cols := len(pattern)+2, len(text)+2
	e := &engine{
		pattern: pattern,
		text:    text,
		memo:    newMemo(o.memo, o.denseCellLimit, rows, cols),
		stack:   make([]cell, 0, len(pattern)+len(text)+2),
	}
	defer e.memo.release()

	return e.solve(cell{len(pattern) + 1, len(text) + 1})
}

// solve runs a depth-first search from goal toward (1, 1). The call stack
// is replaced by e.stack: a cell stays on the stack until every cell it
// depends on has a value, so depth never exceeds P+T+2.
func (e *engine) solve(goal cell) bool {
	e.memo.set(1, 1, true)
	e.stack = append(e.stack, goal)

	for len(e.stack) > 0 {
		top := e.stack[len(e.stack)-1]
		if _, ok := e.lookup(top.row, top.col); ok {
			e.stack = e.stack[:len(e.stack)-1]
			continue
		}

		value, pending, ok := e.resolve(top.row, top.col)
		if !ok {
			e.stack = append(e.stack, pending)
			continue
		}
		e.memo.set(top.row, top.col, value)
		e.stack = e.stack[:len(e.stack)-1]
	}

	value, _ := e.lookup(goal.row, goal.col)
	return value
}

// lookup returns the known value of a cell. Cells on the zero border are
// always false.
func (e *engine) lookup(row, col int) (bool, bool) {
	if row == 0 || col == 0 {
		return false, true
	}
	return e.memo.get(row, col)
}

// resolve computes a cell from its dependencies. When a dependency has no
// value yet, it is returned as pending and ok is false.
func (e *engine) resolve(row, col int) (value bool, pending cell, ok bool) {
	var p, t string
	if row > 1 {
		p = e.pattern[row-2]
	}
	if col > 1 {
		t = e.text[col-2]
	}

	switch {
	case (p == t && t != star) || p == anyOne:
		return e.need(row-1, col-1)
	case p == star:
		// Let the star match nothing first; only extend it into the
		// text when that fails.
		value, pending, ok = e.need(row-1, col)
		if !ok || value {
			return value, pending, ok
		}
		return e.need(row, col-1)
	default:
		return false, cell{}, true
	}
}

func (e *engine) need(row, col int) (bool, cell, bool) {
	if value, ok := e.lookup(row, col); ok {
		return value, cell{}, true
	}
	return false, cell{row, col}, false
}
