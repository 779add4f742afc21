package models

import (
	"time"

	"github.com/google/uuid"
)

// Workspace is the top-level container of tables. Deletion is soft (the
// Trashed flag) so that undoing a deletion can restore the workspace.
type Workspace struct {
	Id        uuid.UUID
	Name      string
	Trashed   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateWorkspaceInput struct {
	Name string
}

type UpdateWorkspaceInput struct {
	Id   uuid.UUID
	Name string
}
