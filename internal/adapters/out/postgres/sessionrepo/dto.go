// Package sessionrepo persists the dashboard session (backend credentials
// and store scope) in PostgreSQL, implementing the SessionStore port.
//
// The table holds at most one active session row; saving replaces the
// previous session so a stale token never lingers next to a fresh one.
package sessionrepo

import (
	"time"

	"github.com/google/uuid"

	"orderdesk/internal/core/ports"
)

// SessionDTO represents the database structure for the persisted session.
type SessionDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	BearerToken  string
	GatewayToken string
	StoreKey     string
	UpdatedAt    time.Time
}

// TableName specifies the database table name for sessions.
func (SessionDTO) TableName() string {
	return "sessions"
}

// fromPort converts a port session into its database representation.
// A fresh row id is generated; the previous row is deleted on save.
func fromPort(session ports.Session) SessionDTO {
	return SessionDTO{
		ID:           uuid.New(),
		BearerToken:  session.Credentials.BearerToken,
		GatewayToken: session.Credentials.GatewayToken,
		StoreKey:     session.StoreKey,
	}
}

// toPort converts a database row into the port session.
func toPort(dto SessionDTO) ports.Session {
	return ports.Session{
		Credentials: ports.Credentials{
			BearerToken:  dto.BearerToken,
			GatewayToken: dto.GatewayToken,
		},
		StoreKey: dto.StoreKey,
	}
}
