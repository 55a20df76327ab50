package repository

import (
	"github.com/google/uuid"
)

// SessionKey scopes base to one shopping session so several carts can share a backend.
func SessionKey(base string, session uuid.UUID) string {
	if session == uuid.Nil {
		return base
	}
	return base + ":" + session.String()
}
