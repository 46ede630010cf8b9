package checkpoint

import "errors"

var (
	ErrBadConfig  = errors.New("bad config")
	ErrNotValid   = errors.New("invalid")
	ErrUnexpected = errors.New("unexpected")
)
