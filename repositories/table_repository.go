package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/gridbase/gridbase-backend/models"
	"github.com/gridbase/gridbase-backend/repositories/dbmodels"
)

func (repo *GridbaseDbRepository) CreateTable(ctx context.Context, exec Executor,
	tableId uuid.UUID, workspaceId uuid.UUID, name string, now time.Time,
) error {
	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_TABLES_META).
		Columns("id", "workspace_id", "name", "trashed", "created_at", "updated_at").
		Values(tableId, workspaceId, name, false, now, now)

	return ExecBuilder(ctx, exec, query)
}

func (repo *GridbaseDbRepository) GetTableById(ctx context.Context, exec Executor,
	tableId uuid.UUID,
) (models.TableMeta, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectTableMetaColumn...).
		From(dbmodels.TABLE_TABLES_META).
		Where(squirrel.Eq{"id": tableId})

	return SqlToModel(ctx, exec, query, dbmodels.AdaptTableMeta)
}

func (repo *GridbaseDbRepository) UpdateTableName(ctx context.Context, exec Executor,
	tableId uuid.UUID, name string, now time.Time,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_TABLES_META).
		Set("name", name).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": tableId})

	return ExecBuilder(ctx, exec, query)
}

func (repo *GridbaseDbRepository) SetTableTrashed(ctx context.Context, exec Executor,
	tableId uuid.UUID, trashed bool, now time.Time,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_TABLES_META).
		Set("trashed", trashed).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": tableId})

	return ExecBuilder(ctx, exec, query)
}
