package models

import (
	"time"

	"github.com/google/uuid"
)

// TableMeta is a table definition inside a workspace. Like workspaces, tables
// are soft-deleted so deletions can be undone.
type TableMeta struct {
	Id          uuid.UUID
	WorkspaceId uuid.UUID
	Name        string
	Trashed     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTableInput struct {
	WorkspaceId uuid.UUID
	Name        string
}

type UpdateTableInput struct {
	Id   uuid.UUID
	Name string
}
