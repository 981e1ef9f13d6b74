package compose

import "errors"

// ErrRowMismatch indicates Blocks received blocks with differing row counts.
var ErrRowMismatch = errors.New("compose: blocks must have the same number of rows")
