package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/gridbase/gridbase-backend/models"
	"github.com/gridbase/gridbase-backend/repositories/dbmodels"
)

func (repo *GridbaseDbRepository) CreateExportFile(ctx context.Context, exec Executor,
	exportFileId uuid.UUID, tableId uuid.UUID, blobKey string, now time.Time,
) error {
	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_EXPORT_FILES).
		Columns("id", "table_id", "blob_key", "created_at").
		Values(exportFileId, tableId, blobKey, now)

	return ExecBuilder(ctx, exec, query)
}

func (repo *GridbaseDbRepository) GetExportFileById(ctx context.Context, exec Executor,
	exportFileId uuid.UUID,
) (models.ExportFile, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectExportFileColumn...).
		From(dbmodels.TABLE_EXPORT_FILES).
		Where(squirrel.Eq{"id": exportFileId})

	return SqlToModel(ctx, exec, query, dbmodels.AdaptExportFile)
}

// DeleteExportFile is idempotent: deleting an already removed export is not
// an error, so undo and cleanup can both try.
func (repo *GridbaseDbRepository) DeleteExportFile(ctx context.Context, exec Executor,
	exportFileId uuid.UUID,
) error {
	query := NewQueryBuilder().
		Delete(dbmodels.TABLE_EXPORT_FILES).
		Where(squirrel.Eq{"id": exportFileId})

	return ExecBuilder(ctx, exec, query)
}
