package wildcard

import "errors"

// ErrInvalidOption is returned by NewMatcher when an Option carries an
// unusable value. Matching itself never fails.
var ErrInvalidOption = errors.New("invalid option")
