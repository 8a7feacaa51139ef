package domain

import (
	"github.com/google/uuid"
)

type UserRole string

const (
	Admin UserRole = "admin"
	Staff UserRole = "staff"
)

type TokenPayload struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Role   UserRole
}

func (p *TokenPayload) IsAdmin() bool {
	return p != nil && p.Role == Admin
}
