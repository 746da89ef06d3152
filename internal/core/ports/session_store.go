package ports

import "context"

// Credentials are the bearer tokens attached to every backend call. The
// core does not acquire or refresh them; an external auth flow writes them
// to the session store.
type Credentials struct {
	// BearerToken authorizes the operator against the backend API.
	BearerToken string

	// GatewayToken is the platform gateway's own claims token, sent in a
	// dedicated header alongside the bearer token.
	GatewayToken string
}

// Session is the persisted dashboard session: the active credentials plus
// the store scope used to filter order listings.
type Session struct {
	Credentials Credentials
	StoreKey    string
}

// SessionStore is the outbound port to the persistent key-value storage of
// the active session.
type SessionStore interface {
	// Load returns the active session. Returns an ObjectNotFoundError when
	// no session has been saved yet.
	Load(ctx context.Context) (Session, error)

	// Save persists the session, replacing any previous one.
	Save(ctx context.Context, session Session) error

	// Clear removes the active session.
	Clear(ctx context.Context) error
}
