package user

import (
	"time"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleHR      Role = "hr"
	RoleOfficer Role = "officer"
)

type User struct {
	ID            string
	Email         string
	PasswordHash  string
	Role          Role
	OfficerID     *string
	InstitutionID *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
