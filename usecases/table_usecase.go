package usecases

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/gridbase/gridbase-backend/models"
	"github.com/gridbase/gridbase-backend/repositories"
	"github.com/gridbase/gridbase-backend/repositories/clock"
	"github.com/gridbase/gridbase-backend/usecases/actions"
	"github.com/gridbase/gridbase-backend/usecases/executor_factory"
)

type TableUsecaseRepository interface {
	CreateTable(ctx context.Context, exec repositories.Executor,
		tableId uuid.UUID, workspaceId uuid.UUID, name string, now time.Time) error
	GetTableById(ctx context.Context, exec repositories.Executor,
		tableId uuid.UUID) (models.TableMeta, error)
	UpdateTableName(ctx context.Context, exec repositories.Executor,
		tableId uuid.UUID, name string, now time.Time) error
	SetTableTrashed(ctx context.Context, exec repositories.Executor,
		tableId uuid.UUID, trashed bool, now time.Time) error
	GetWorkspaceById(ctx context.Context, exec repositories.Executor,
		workspaceId uuid.UUID) (models.Workspace, error)
}

type TableUsecase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         TableUsecaseRepository
	actionUsecase      ActionUsecase
	clock              clock.Clock
}

func (usecase TableUsecase) GetTable(ctx context.Context, tableId uuid.UUID) (models.TableMeta, error) {
	return usecase.repository.GetTableById(ctx, usecase.executorFactory.NewExecutor(), tableId)
}

func (usecase TableUsecase) CreateTable(ctx context.Context,
	creds models.Credentials, input models.CreateTableInput,
) (models.TableMeta, error) {
	if input.Name == "" {
		return models.TableMeta{}, errors.Wrap(models.BadParameterError, "table name is required")
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Executor) (models.TableMeta, error) {
			workspace, err := usecase.repository.GetWorkspaceById(ctx, tx, input.WorkspaceId)
			if err != nil {
				return models.TableMeta{}, err
			}
			if workspace.Trashed {
				return models.TableMeta{}, errors.Wrapf(models.NotFoundError,
					"workspace %s is trashed", input.WorkspaceId)
			}

			tableId := uuid.New()
			if err := usecase.repository.CreateTable(ctx, tx, tableId,
				input.WorkspaceId, input.Name, usecase.clock.Now()); err != nil {
				return models.TableMeta{}, err
			}

			params := actions.CreateTableParams{
				TableId:     tableId,
				WorkspaceId: input.WorkspaceId,
				Name:        input.Name,
			}
			if err := usecase.registerTableAction(ctx, tx, creds,
				actions.ActionTypeCreateTable, params, params.ActionScope(), input.WorkspaceId); err != nil {
				return models.TableMeta{}, err
			}

			return usecase.repository.GetTableById(ctx, tx, tableId)
		})
}

func (usecase TableUsecase) UpdateTable(ctx context.Context,
	creds models.Credentials, input models.UpdateTableInput,
) (models.TableMeta, error) {
	if input.Name == "" {
		return models.TableMeta{}, errors.Wrap(models.BadParameterError, "table name is required")
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Executor) (models.TableMeta, error) {
			table, err := usecase.repository.GetTableById(ctx, tx, input.Id)
			if err != nil {
				return models.TableMeta{}, err
			}
			if table.Trashed {
				return models.TableMeta{}, errors.Wrapf(models.NotFoundError,
					"table %s is trashed", input.Id)
			}

			if err := usecase.repository.UpdateTableName(ctx, tx, input.Id,
				input.Name, usecase.clock.Now()); err != nil {
				return models.TableMeta{}, err
			}

			params := actions.UpdateTableParams{
				TableId:     input.Id,
				WorkspaceId: table.WorkspaceId,
				NameBefore:  table.Name,
				NameAfter:   input.Name,
			}
			if err := usecase.registerTableAction(ctx, tx, creds,
				actions.ActionTypeUpdateTable, params, params.ActionScope(), table.WorkspaceId); err != nil {
				return models.TableMeta{}, err
			}

			return usecase.repository.GetTableById(ctx, tx, input.Id)
		})
}

func (usecase TableUsecase) DeleteTable(ctx context.Context,
	creds models.Credentials, tableId uuid.UUID,
) error {
	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Executor) error {
		table, err := usecase.repository.GetTableById(ctx, tx, tableId)
		if err != nil {
			return err
		}
		if table.Trashed {
			return errors.Wrapf(models.NotFoundError, "table %s is trashed", tableId)
		}

		if err := usecase.repository.SetTableTrashed(ctx, tx, tableId,
			true, usecase.clock.Now()); err != nil {
			return err
		}

		params := actions.DeleteTableParams{
			TableId:     tableId,
			WorkspaceId: table.WorkspaceId,
		}
		return usecase.registerTableAction(ctx, tx, creds,
			actions.ActionTypeDeleteTable, params, params.ActionScope(), table.WorkspaceId)
	})
}

func (usecase TableUsecase) registerTableAction(ctx context.Context,
	tx repositories.Executor, creds models.Credentials,
	actionType string, params any, scope models.ActionScope, workspaceId uuid.UUID,
) error {
	serializedParams, err := json.Marshal(params)
	if err != nil {
		return errors.Wrap(err, "could not serialize action params")
	}
	_, err = usecase.actionUsecase.RegisterAction(ctx, tx, creds, models.CreateActionInput{
		Type:        actionType,
		Params:      serializedParams,
		Scope:       scope,
		WorkspaceId: &workspaceId,
	})
	return err
}
