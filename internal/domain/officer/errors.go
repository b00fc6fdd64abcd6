package officer

import "errors"

var (
	ErrCompensationNotFound = errors.New("compensation record not found")
	ErrOfficerNotFound      = errors.New("officer not found")
)
