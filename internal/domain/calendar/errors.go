package calendar

import "errors"

var (
	ErrInvalidRange = errors.New("calendar range start must not be after end")
)
