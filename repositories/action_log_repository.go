package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gridbase/gridbase-backend/models"
	"github.com/gridbase/gridbase-backend/pure_utils"
	"github.com/gridbase/gridbase-backend/repositories/dbmodels"
)

// ActionFilters restrict a selection to one undo/redo stack: the exact
// (user, session) pair, the requested scopes, and optionally one action
// group.
type ActionFilters struct {
	UserId      uuid.UUID
	SessionId   string
	Scopes      []models.ActionScope
	ActionGroup *uuid.UUID
	Limit       int
}

func (f ActionFilters) apply(query squirrel.SelectBuilder) squirrel.SelectBuilder {
	query = query.Where(squirrel.Eq{
		"user_id":    f.UserId,
		"session_id": f.SessionId,
	})
	if len(f.Scopes) > 0 {
		scopes := pure_utils.Map(f.Scopes, models.ActionScope.String)
		query = query.Where(squirrel.Eq{"scope": scopes})
	}
	if f.ActionGroup != nil {
		query = query.Where(squirrel.Eq{"action_group": *f.ActionGroup})
	}
	if f.Limit > 0 {
		query = query.Limit(uint64(f.Limit))
	}
	return query
}

func (repo *GridbaseDbRepository) CreateAction(
	ctx context.Context,
	exec Executor,
	actionId uuid.UUID,
	creds models.Credentials,
	input models.CreateActionInput,
	now time.Time,
) error {
	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_ACTIONS).
		Columns(
			"id",
			"type",
			"params",
			"user_id",
			"session_id",
			"action_group",
			"scope",
			"workspace_id",
			"created_on",
		).
		Values(
			actionId,
			input.Type,
			input.Params,
			creds.UserId,
			creds.SessionId,
			creds.ActionGroup,
			input.Scope.String(),
			input.WorkspaceId,
			now,
		)

	return ExecBuilder(ctx, exec, query)
}

// ListAppliedActions returns actions whose effect is currently in place,
// newest first. Id breaks created_on ties since it carries insertion order.
func (repo *GridbaseDbRepository) ListAppliedActions(ctx context.Context, exec Executor,
	filters ActionFilters,
) ([]models.Action, error) {
	query := filters.apply(
		NewQueryBuilder().
			Select(dbmodels.SelectActionColumn...).
			From(dbmodels.TABLE_ACTIONS).
			Where(squirrel.Eq{"undone_at": nil}),
	).OrderBy("created_on DESC", "id DESC")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptAction)
}

// ListUndoneActions returns reversed actions eligible for redo, most recently
// undone first.
func (repo *GridbaseDbRepository) ListUndoneActions(ctx context.Context, exec Executor,
	filters ActionFilters,
) ([]models.Action, error) {
	query := filters.apply(
		NewQueryBuilder().
			Select(dbmodels.SelectActionColumn...).
			From(dbmodels.TABLE_ACTIONS).
			Where(squirrel.NotEq{"undone_at": nil}),
	).OrderBy("undone_at DESC", "id DESC")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptAction)
}

// LockActions takes row locks on the given actions to serialize concurrent
// undo/redo calls touching the same rows. Must run inside a transaction.
func (repo *GridbaseDbRepository) LockActions(ctx context.Context, tx Executor,
	actionIds []uuid.UUID,
) error {
	if err := validateExecutor(tx); err != nil {
		return err
	}
	if len(actionIds) == 0 {
		return nil
	}

	sql, args, err := NewQueryBuilder().
		Select("id").
		From(dbmodels.TABLE_ACTIONS).
		Where(squirrel.Eq{"id": actionIds}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return errors.Wrap(err, "can't build sql query")
	}

	rows, err := tx.Query(ctx, sql, args...)
	if err != nil {
		return errors.Wrap(err, "error executing sql query")
	}
	locked, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return errors.Wrap(err, "error locking action rows")
	}
	if len(locked) != len(actionIds) {
		return errors.Wrap(models.ConflictError, "some actions no longer exist")
	}
	return nil
}

func (repo *GridbaseDbRepository) MarkActionAsUndone(ctx context.Context, exec Executor,
	actionId uuid.UUID, undoneAt time.Time,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_ACTIONS).
		Set("undone_at", undoneAt).
		Set("error", nil).
		Where(squirrel.Eq{"id": actionId})

	return ExecBuilder(ctx, exec, query)
}

func (repo *GridbaseDbRepository) MarkActionAsRedone(ctx context.Context, exec Executor,
	actionId uuid.UUID,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_ACTIONS).
		Set("undone_at", nil).
		Set("error", nil).
		Where(squirrel.Eq{"id": actionId})

	return ExecBuilder(ctx, exec, query)
}

// SaveActionError records the failure message of the last undo/redo attempt
// without touching the action's applied/undone state.
func (repo *GridbaseDbRepository) SaveActionError(ctx context.Context, exec Executor,
	actionId uuid.UUID, message string,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_ACTIONS).
		Set("error", message).
		Where(squirrel.Eq{"id": actionId})

	return ExecBuilder(ctx, exec, query)
}

// DeleteActionsWithoutCleanupHook bulk-deletes all expired actions whose type
// declares no cleanup hook, in a single statement regardless of row count.
// typesWithCleanupHook are excluded so their rows go through the per-action
// hook path instead.
func (repo *GridbaseDbRepository) DeleteActionsWithoutCleanupHook(ctx context.Context, exec Executor,
	olderThan time.Time, typesWithCleanupHook []string,
) (int64, error) {
	query := NewQueryBuilder().
		Delete(dbmodels.TABLE_ACTIONS).
		Where(squirrel.Lt{"created_on": olderThan})
	if len(typesWithCleanupHook) > 0 {
		query = query.Where(squirrel.NotEq{"type": typesWithCleanupHook})
	}

	return ExecBuilderReturningRowsAffected(ctx, exec, query)
}

// ListExpiredActionsWithCleanupHook returns expired actions whose type does
// declare a cleanup hook, oldest first, so the retention pass releases
// resources in age order.
func (repo *GridbaseDbRepository) ListExpiredActionsWithCleanupHook(ctx context.Context, exec Executor,
	olderThan time.Time, typesWithCleanupHook []string,
) ([]models.Action, error) {
	if len(typesWithCleanupHook) == 0 {
		return nil, nil
	}

	query := NewQueryBuilder().
		Select(dbmodels.SelectActionColumn...).
		From(dbmodels.TABLE_ACTIONS).
		Where(squirrel.Lt{"created_on": olderThan}).
		Where(squirrel.Eq{"type": typesWithCleanupHook}).
		OrderBy("created_on ASC", "id ASC")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptAction)
}

func (repo *GridbaseDbRepository) DeleteAction(ctx context.Context, exec Executor,
	actionId uuid.UUID,
) error {
	query := NewQueryBuilder().
		Delete(dbmodels.TABLE_ACTIONS).
		Where(squirrel.Eq{"id": actionId})

	return ExecBuilder(ctx, exec, query)
}
