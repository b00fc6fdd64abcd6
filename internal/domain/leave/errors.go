package leave

import "errors"

var (
	ErrApplicationNotFound = errors.New("leave application not found")
)
