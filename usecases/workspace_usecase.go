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

type WorkspaceUsecaseRepository interface {
	CreateWorkspace(ctx context.Context, exec repositories.Executor,
		workspaceId uuid.UUID, name string, now time.Time) error
	GetWorkspaceById(ctx context.Context, exec repositories.Executor,
		workspaceId uuid.UUID) (models.Workspace, error)
	UpdateWorkspaceName(ctx context.Context, exec repositories.Executor,
		workspaceId uuid.UUID, name string, now time.Time) error
	SetWorkspaceTrashed(ctx context.Context, exec repositories.Executor,
		workspaceId uuid.UUID, trashed bool, now time.Time) error
}

// WorkspaceUsecase performs workspace mutations and registers the matching
// action in the same transaction, so the mutation and its undo record are
// atomic.
type WorkspaceUsecase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         WorkspaceUsecaseRepository
	actionUsecase      ActionUsecase
	clock              clock.Clock
}

func (usecase WorkspaceUsecase) GetWorkspace(ctx context.Context, workspaceId uuid.UUID) (models.Workspace, error) {
	return usecase.repository.GetWorkspaceById(ctx, usecase.executorFactory.NewExecutor(), workspaceId)
}

func (usecase WorkspaceUsecase) CreateWorkspace(ctx context.Context,
	creds models.Credentials, input models.CreateWorkspaceInput,
) (models.Workspace, error) {
	if input.Name == "" {
		return models.Workspace{}, errors.Wrap(models.BadParameterError, "workspace name is required")
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Executor) (models.Workspace, error) {
			workspaceId := uuid.New()
			if err := usecase.repository.CreateWorkspace(ctx, tx, workspaceId,
				input.Name, usecase.clock.Now()); err != nil {
				return models.Workspace{}, err
			}

			params := actions.CreateWorkspaceParams{
				WorkspaceId: workspaceId,
				Name:        input.Name,
			}
			if err := usecase.registerWorkspaceAction(ctx, tx, creds,
				actions.ActionTypeCreateWorkspace, params, params.ActionScope(), workspaceId); err != nil {
				return models.Workspace{}, err
			}

			return usecase.repository.GetWorkspaceById(ctx, tx, workspaceId)
		})
}

func (usecase WorkspaceUsecase) UpdateWorkspace(ctx context.Context,
	creds models.Credentials, input models.UpdateWorkspaceInput,
) (models.Workspace, error) {
	if input.Name == "" {
		return models.Workspace{}, errors.Wrap(models.BadParameterError, "workspace name is required")
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Executor) (models.Workspace, error) {
			workspace, err := usecase.repository.GetWorkspaceById(ctx, tx, input.Id)
			if err != nil {
				return models.Workspace{}, err
			}
			if workspace.Trashed {
				return models.Workspace{}, errors.Wrapf(models.NotFoundError,
					"workspace %s is trashed", input.Id)
			}

			if err := usecase.repository.UpdateWorkspaceName(ctx, tx, input.Id,
				input.Name, usecase.clock.Now()); err != nil {
				return models.Workspace{}, err
			}

			params := actions.UpdateWorkspaceParams{
				WorkspaceId: input.Id,
				NameBefore:  workspace.Name,
				NameAfter:   input.Name,
			}
			if err := usecase.registerWorkspaceAction(ctx, tx, creds,
				actions.ActionTypeUpdateWorkspace, params, params.ActionScope(), input.Id); err != nil {
				return models.Workspace{}, err
			}

			return usecase.repository.GetWorkspaceById(ctx, tx, input.Id)
		})
}

func (usecase WorkspaceUsecase) DeleteWorkspace(ctx context.Context,
	creds models.Credentials, workspaceId uuid.UUID,
) error {
	return usecase.transactionFactory.Transaction(ctx, func(tx repositories.Executor) error {
		workspace, err := usecase.repository.GetWorkspaceById(ctx, tx, workspaceId)
		if err != nil {
			return err
		}
		if workspace.Trashed {
			return errors.Wrapf(models.NotFoundError, "workspace %s is trashed", workspaceId)
		}

		if err := usecase.repository.SetWorkspaceTrashed(ctx, tx, workspaceId,
			true, usecase.clock.Now()); err != nil {
			return err
		}

		params := actions.DeleteWorkspaceParams{WorkspaceId: workspaceId}
		return usecase.registerWorkspaceAction(ctx, tx, creds,
			actions.ActionTypeDeleteWorkspace, params, params.ActionScope(), workspaceId)
	})
}

func (usecase WorkspaceUsecase) registerWorkspaceAction(ctx context.Context,
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
