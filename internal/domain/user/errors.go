package user

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrHRAccessRequired = errors.New("hr or admin access required")
)
