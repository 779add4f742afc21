package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Action is one persisted record of a reversible mutation. Everything needed
// to reverse or re-apply the mutation is captured in Params at registration
// time, so undo/redo never has to re-read mutable external state.
//
// An action is immutable once written, except for UndoneAt and Error which
// are only ever touched by the action usecase.
type Action struct {
	Id          uuid.UUID
	Type        string
	Params      json.RawMessage
	UserId      uuid.UUID
	SessionId   string
	ActionGroup uuid.UUID
	Scope       ActionScope
	WorkspaceId *uuid.UUID
	CreatedOn   time.Time
	UndoneAt    *time.Time
	Error       *string
}

type CreateActionInput struct {
	Type        string
	Params      json.RawMessage
	Scope       ActionScope
	WorkspaceId *uuid.UUID
}

// ActionOutcome is the per-action result of one undo or redo call.
type ActionOutcome struct {
	ActionId   uuid.UUID
	ActionType string
	Succeeded  bool
	Error      string
}

const (
	// DEFAULT_MAX_UNDOABLE_ACTIONS_PER_GROUP bounds how many actions of one
	// group a single undo/redo call may touch. The remainder of an oversized
	// group stays for a subsequent call.
	DEFAULT_MAX_UNDOABLE_ACTIONS_PER_GROUP = 10

	// DEFAULT_ACTION_RETENTION is how long actions stay available for
	// undo/redo before the cleanup job deletes them.
	DEFAULT_ACTION_RETENTION = 3 * 24 * time.Hour
)
