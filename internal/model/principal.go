package model

import "github.com/google/uuid"

// Principal is the authenticated caller, taken from the access token.
type Principal struct {
	UserID uuid.UUID
	Role   string
}

func (p Principal) IsAdmin() bool {
	return p.Role == "ADMIN"
}

func (p Principal) IsAnalyst() bool {
	return p.Role == "ANALYST"
}
