package signed

import "errors"

// ErrSyntax indicates FourText input outside the grammar -?D+(.D*)?.
var ErrSyntax = errors.New("signed: input must be a decimal number with optional leading '-' and one '.'")
