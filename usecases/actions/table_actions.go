package actions

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/gridbase/gridbase-backend/models"
	"github.com/gridbase/gridbase-backend/repositories"
	"github.com/gridbase/gridbase-backend/repositories/clock"
)

const (
	ActionTypeCreateTable = "create_table"
	ActionTypeUpdateTable = "update_table"
	ActionTypeDeleteTable = "delete_table"
)

type TableActionRepository interface {
	GetTableById(ctx context.Context, exec repositories.Executor,
		tableId uuid.UUID) (models.TableMeta, error)
	UpdateTableName(ctx context.Context, exec repositories.Executor,
		tableId uuid.UUID, name string, now time.Time) error
	SetTableTrashed(ctx context.Context, exec repositories.Executor,
		tableId uuid.UUID, trashed bool, now time.Time) error
}

type CreateTableParams struct {
	TableId     uuid.UUID `json:"table_id"`
	WorkspaceId uuid.UUID `json:"workspace_id"`
	Name        string    `json:"name"`
}

func (p CreateTableParams) ActionScope() models.ActionScope {
	return models.TableActionScope(p.TableId)
}

type UpdateTableParams struct {
	TableId     uuid.UUID `json:"table_id"`
	WorkspaceId uuid.UUID `json:"workspace_id"`
	NameBefore  string    `json:"name_before"`
	NameAfter   string    `json:"name_after"`
}

func (p UpdateTableParams) ActionScope() models.ActionScope {
	return models.TableActionScope(p.TableId)
}

type DeleteTableParams struct {
	TableId     uuid.UUID `json:"table_id"`
	WorkspaceId uuid.UUID `json:"workspace_id"`
}

func (p DeleteTableParams) ActionScope() models.ActionScope {
	return models.TableActionScope(p.TableId)
}

type CreateTableAction struct {
	repository TableActionRepository
	clock      clock.Clock
}

func NewCreateTableAction(repository TableActionRepository, clock clock.Clock) CreateTableAction {
	return CreateTableAction{repository: repository, clock: clock}
}

func (a CreateTableAction) Key() string {
	return ActionTypeCreateTable
}

func (a CreateTableAction) Undo(ctx context.Context, tx repositories.Executor, action models.Action) error {
	params, err := decodeParams[CreateTableParams](action)
	if err != nil {
		return err
	}
	return a.repository.SetTableTrashed(ctx, tx, params.TableId, true, a.clock.Now())
}

func (a CreateTableAction) Redo(ctx context.Context, tx repositories.Executor, action models.Action) error {
	params, err := decodeParams[CreateTableParams](action)
	if err != nil {
		return err
	}
	return a.repository.SetTableTrashed(ctx, tx, params.TableId, false, a.clock.Now())
}

type UpdateTableAction struct {
	repository TableActionRepository
	clock      clock.Clock
}

func NewUpdateTableAction(repository TableActionRepository, clock clock.Clock) UpdateTableAction {
	return UpdateTableAction{repository: repository, clock: clock}
}

func (a UpdateTableAction) Key() string {
	return ActionTypeUpdateTable
}

func (a UpdateTableAction) Undo(ctx context.Context, tx repositories.Executor, action models.Action) error {
	params, err := decodeParams[UpdateTableParams](action)
	if err != nil {
		return err
	}
	return a.rename(ctx, tx, params.TableId, params.NameBefore)
}

func (a UpdateTableAction) Redo(ctx context.Context, tx repositories.Executor, action models.Action) error {
	params, err := decodeParams[UpdateTableParams](action)
	if err != nil {
		return err
	}
	return a.rename(ctx, tx, params.TableId, params.NameAfter)
}

func (a UpdateTableAction) rename(ctx context.Context, tx repositories.Executor,
	tableId uuid.UUID, name string,
) error {
	table, err := a.repository.GetTableById(ctx, tx, tableId)
	if err != nil {
		return err
	}
	if table.Trashed {
		return errors.Wrapf(models.NotFoundError, "table %s is trashed", tableId)
	}
	return a.repository.UpdateTableName(ctx, tx, tableId, name, a.clock.Now())
}

type DeleteTableAction struct {
	repository TableActionRepository
	clock      clock.Clock
}

func NewDeleteTableAction(repository TableActionRepository, clock clock.Clock) DeleteTableAction {
	return DeleteTableAction{repository: repository, clock: clock}
}

func (a DeleteTableAction) Key() string {
	return ActionTypeDeleteTable
}

func (a DeleteTableAction) Undo(ctx context.Context, tx repositories.Executor, action models.Action) error {
	params, err := decodeParams[DeleteTableParams](action)
	if err != nil {
		return err
	}
	return a.repository.SetTableTrashed(ctx, tx, params.TableId, false, a.clock.Now())
}

func (a DeleteTableAction) Redo(ctx context.Context, tx repositories.Executor, action models.Action) error {
	params, err := decodeParams[DeleteTableParams](action)
	if err != nil {
		return err
	}
	return a.repository.SetTableTrashed(ctx, tx, params.TableId, true, a.clock.Now())
}
