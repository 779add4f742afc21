package actions

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gridbase/gridbase-backend/models"
	"github.com/gridbase/gridbase-backend/repositories"
	"github.com/gridbase/gridbase-backend/repositories/clock"
)

const ActionTypeExportTable = "export_table"

type ExportFileActionRepository interface {
	CreateExportFile(ctx context.Context, exec repositories.Executor,
		exportFileId uuid.UUID, tableId uuid.UUID, blobKey string, now time.Time) error
	DeleteExportFile(ctx context.Context, exec repositories.Executor,
		exportFileId uuid.UUID) error
}

type ExportTableParams struct {
	ExportFileId uuid.UUID `json:"export_file_id"`
	TableId      uuid.UUID `json:"table_id"`
	BlobKey      string    `json:"blob_key"`
}

func (p ExportTableParams) ActionScope() models.ActionScope {
	return models.TableActionScope(p.TableId)
}

// ExportTableAction tracks a table export whose file lives in blob storage.
// Undo and redo only flip the export_files row: the blob itself stays put
// until either the cleanup hook or an explicit deletion removes it, so a
// redone export points back at the same file.
type ExportTableAction struct {
	repository     ExportFileActionRepository
	blobRepository repositories.BlobRepository
	bucketUrl      string
	clock          clock.Clock
}

func NewExportTableAction(
	repository ExportFileActionRepository,
	blobRepository repositories.BlobRepository,
	bucketUrl string,
	clock clock.Clock,
) ExportTableAction {
	return ExportTableAction{
		repository:     repository,
		blobRepository: blobRepository,
		bucketUrl:      bucketUrl,
		clock:          clock,
	}
}

func (a ExportTableAction) Key() string {
	return ActionTypeExportTable
}

func (a ExportTableAction) Undo(ctx context.Context, tx repositories.Executor, action models.Action) error {
	params, err := decodeParams[ExportTableParams](action)
	if err != nil {
		return err
	}
	return a.repository.DeleteExportFile(ctx, tx, params.ExportFileId)
}

func (a ExportTableAction) Redo(ctx context.Context, tx repositories.Executor, action models.Action) error {
	params, err := decodeParams[ExportTableParams](action)
	if err != nil {
		return err
	}
	return a.repository.CreateExportFile(ctx, tx, params.ExportFileId, params.TableId,
		params.BlobKey, a.clock.Now())
}

// CleanUp releases the exported blob before the retention job drops the
// action row. The blob deletion happens before the row deletions commit: if
// it fails the transaction rolls back and the action row survives for the
// next retention pass.
func (a ExportTableAction) CleanUp(ctx context.Context, tx repositories.Executor, action models.Action) error {
	params, err := decodeParams[ExportTableParams](action)
	if err != nil {
		return err
	}
	if err := a.blobRepository.DeleteFile(ctx, a.bucketUrl, params.BlobKey); err != nil {
		return err
	}
	return a.repository.DeleteExportFile(ctx, tx, params.ExportFileId)
}
