package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/gridbase/gridbase-backend/models"
	"github.com/gridbase/gridbase-backend/repositories/dbmodels"
)

func (repo *GridbaseDbRepository) CreateWorkspace(ctx context.Context, exec Executor,
	workspaceId uuid.UUID, name string, now time.Time,
) error {
	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_WORKSPACES).
		Columns("id", "name", "trashed", "created_at", "updated_at").
		Values(workspaceId, name, false, now, now)

	return ExecBuilder(ctx, exec, query)
}

func (repo *GridbaseDbRepository) GetWorkspaceById(ctx context.Context, exec Executor,
	workspaceId uuid.UUID,
) (models.Workspace, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectWorkspaceColumn...).
		From(dbmodels.TABLE_WORKSPACES).
		Where(squirrel.Eq{"id": workspaceId})

	return SqlToModel(ctx, exec, query, dbmodels.AdaptWorkspace)
}

func (repo *GridbaseDbRepository) UpdateWorkspaceName(ctx context.Context, exec Executor,
	workspaceId uuid.UUID, name string, now time.Time,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_WORKSPACES).
		Set("name", name).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": workspaceId})

	return ExecBuilder(ctx, exec, query)
}

func (repo *GridbaseDbRepository) SetWorkspaceTrashed(ctx context.Context, exec Executor,
	workspaceId uuid.UUID, trashed bool, now time.Time,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_WORKSPACES).
		Set("trashed", trashed).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": workspaceId})

	return ExecBuilder(ctx, exec, query)
}
