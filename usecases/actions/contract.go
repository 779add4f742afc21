package actions

import (
	"context"

	"github.com/gridbase/gridbase-backend/models"
	"github.com/gridbase/gridbase-backend/repositories"
)

// ActionType is one reversible mutation kind. Implementations read everything
// they need from the action's params payload: by the time Undo or Redo runs,
// the original request context is long gone.
//
// Undo and Redo run inside the transaction of the whole undo/redo batch. An
// error from either rolls the full batch back, so implementations never need
// their own compensation logic.
type ActionType interface {
	// Key is the stable string identifier persisted in the actions table.
	// Changing a key orphans every logged action of that type.
	Key() string

	Undo(ctx context.Context, tx repositories.Executor, action models.Action) error
	Redo(ctx context.Context, tx repositories.Executor, action models.Action) error
}

// CleanupHook is implemented by action types that hold external resources
// (blobs, temp files) which must be released before the retention job deletes
// their rows. Each hook call runs in its own transaction, committed together
// with the deletion of the action row.
type CleanupHook interface {
	CleanUp(ctx context.Context, tx repositories.Executor, action models.Action) error
}
