package models

import (
	"time"

	"github.com/google/uuid"
)

// ExportFile references an exported table snapshot stored in blob storage.
// The export_table action type declares a cleanup hook so the blob is
// released before the action row is garbage-collected.
type ExportFile struct {
	Id        uuid.UUID
	TableId   uuid.UUID
	BlobKey   string
	CreatedAt time.Time
}
