package payroll

import "errors"

var (
	ErrRunAlreadyExists = errors.New("payroll run already exists for this period")
	ErrRunNotFound      = errors.New("payroll run not found")
	ErrInvalidPeriod    = errors.New("invalid payroll period")
)
