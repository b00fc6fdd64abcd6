package http

import (
	"net/http"

	"github.com/edupoint/ims-backend-go/internal/domain/auth"
	"github.com/edupoint/ims-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

// requestClaims are the token claims the handlers care about.
type requestClaims struct {
	UserID        string
	Role          user.Role
	OfficerID     string
	InstitutionID string
}

func claimsFromRequest(r *http.Request) (requestClaims, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return requestClaims{}, auth.ErrInvalidToken
	}

	c := requestClaims{}
	if v, ok := claims["user_id"].(string); ok {
		c.UserID = v
	}
	if v, ok := claims["role"].(string); ok {
		c.Role = user.Role(v)
	}
	if v, ok := claims["officer_id"].(string); ok {
		c.OfficerID = v
	}
	if v, ok := claims["institution_id"].(string); ok {
		c.InstitutionID = v
	}

	if c.UserID == "" || c.InstitutionID == "" {
		return requestClaims{}, auth.ErrInvalidToken
	}
	return c, nil
}

// canAccessOfficer reports whether the caller may read the officer's data.
// HR and admins see everyone in their institution; officers see themselves.
func (c requestClaims) canAccessOfficer(officerID string) bool {
	if c.Role == user.RoleAdmin || c.Role == user.RoleHR {
		return true
	}
	return c.OfficerID != "" && c.OfficerID == officerID
}
