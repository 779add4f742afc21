package models

import (
	"github.com/google/uuid"
)

// Credentials carry the ambient execution context of one request: the acting
// user, the client session whose undo stack is being operated on, and the
// action group correlating all actions registered during this request. The
// API layer builds them once per request and they are passed explicitly, not
// stored on any request-global object.
//
// (UserId, SessionId) together identify one undo/redo stack: two sessions of
// the same user never see each other's actions.
type Credentials struct {
	UserId      uuid.UUID
	SessionId   string
	ActionGroup uuid.UUID
}

func (c Credentials) HasSession() bool {
	return c.SessionId != ""
}
