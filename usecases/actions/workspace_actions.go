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
	ActionTypeCreateWorkspace = "create_workspace"
	ActionTypeUpdateWorkspace = "update_workspace"
	ActionTypeDeleteWorkspace = "delete_workspace"
)

type WorkspaceActionRepository interface {
	GetWorkspaceById(ctx context.Context, exec repositories.Executor,
		workspaceId uuid.UUID) (models.Workspace, error)
	UpdateWorkspaceName(ctx context.Context, exec repositories.Executor,
		workspaceId uuid.UUID, name string, now time.Time) error
	SetWorkspaceTrashed(ctx context.Context, exec repositories.Executor,
		workspaceId uuid.UUID, trashed bool, now time.Time) error
}

type CreateWorkspaceParams struct {
	WorkspaceId uuid.UUID `json:"workspace_id"`
	Name        string    `json:"name"`
}

func (p CreateWorkspaceParams) ActionScope() models.ActionScope {
	return models.WorkspaceActionScope(p.WorkspaceId)
}

type UpdateWorkspaceParams struct {
	WorkspaceId uuid.UUID `json:"workspace_id"`
	NameBefore  string    `json:"name_before"`
	NameAfter   string    `json:"name_after"`
}

func (p UpdateWorkspaceParams) ActionScope() models.ActionScope {
	return models.WorkspaceActionScope(p.WorkspaceId)
}

type DeleteWorkspaceParams struct {
	WorkspaceId uuid.UUID `json:"workspace_id"`
}

func (p DeleteWorkspaceParams) ActionScope() models.ActionScope {
	return models.WorkspaceActionScope(p.WorkspaceId)
}

// CreateWorkspaceAction reverses a workspace creation by trashing the
// workspace rather than hard-deleting it, so the creation can be redone with
// all of the workspace's content intact.
type CreateWorkspaceAction struct {
	repository WorkspaceActionRepository
	clock      clock.Clock
}

func NewCreateWorkspaceAction(repository WorkspaceActionRepository, clock clock.Clock) CreateWorkspaceAction {
	return CreateWorkspaceAction{repository: repository, clock: clock}
}

func (a CreateWorkspaceAction) Key() string {
	return ActionTypeCreateWorkspace
}

func (a CreateWorkspaceAction) Undo(ctx context.Context, tx repositories.Executor, action models.Action) error {
	params, err := decodeParams[CreateWorkspaceParams](action)
	if err != nil {
		return err
	}
	return a.repository.SetWorkspaceTrashed(ctx, tx, params.WorkspaceId, true, a.clock.Now())
}

func (a CreateWorkspaceAction) Redo(ctx context.Context, tx repositories.Executor, action models.Action) error {
	params, err := decodeParams[CreateWorkspaceParams](action)
	if err != nil {
		return err
	}
	return a.repository.SetWorkspaceTrashed(ctx, tx, params.WorkspaceId, false, a.clock.Now())
}

type UpdateWorkspaceAction struct {
	repository WorkspaceActionRepository
	clock      clock.Clock
}

func NewUpdateWorkspaceAction(repository WorkspaceActionRepository, clock clock.Clock) UpdateWorkspaceAction {
	return UpdateWorkspaceAction{repository: repository, clock: clock}
}

func (a UpdateWorkspaceAction) Key() string {
	return ActionTypeUpdateWorkspace
}

func (a UpdateWorkspaceAction) Undo(ctx context.Context, tx repositories.Executor, action models.Action) error {
	params, err := decodeParams[UpdateWorkspaceParams](action)
	if err != nil {
		return err
	}
	return a.rename(ctx, tx, params.WorkspaceId, params.NameBefore)
}

func (a UpdateWorkspaceAction) Redo(ctx context.Context, tx repositories.Executor, action models.Action) error {
	params, err := decodeParams[UpdateWorkspaceParams](action)
	if err != nil {
		return err
	}
	return a.rename(ctx, tx, params.WorkspaceId, params.NameAfter)
}

// rename refuses to touch a trashed workspace: renaming something the user
// can no longer see would silently resurface stale state on restore.
func (a UpdateWorkspaceAction) rename(ctx context.Context, tx repositories.Executor,
	workspaceId uuid.UUID, name string,
) error {
	workspace, err := a.repository.GetWorkspaceById(ctx, tx, workspaceId)
	if err != nil {
		return err
	}
	if workspace.Trashed {
		return errors.Wrapf(models.NotFoundError, "workspace %s is trashed", workspaceId)
	}
	return a.repository.UpdateWorkspaceName(ctx, tx, workspaceId, name, a.clock.Now())
}

type DeleteWorkspaceAction struct {
	repository WorkspaceActionRepository
	clock      clock.Clock
}

func NewDeleteWorkspaceAction(repository WorkspaceActionRepository, clock clock.Clock) DeleteWorkspaceAction {
	return DeleteWorkspaceAction{repository: repository, clock: clock}
}

func (a DeleteWorkspaceAction) Key() string {
	return ActionTypeDeleteWorkspace
}

func (a DeleteWorkspaceAction) Undo(ctx context.Context, tx repositories.Executor, action models.Action) error {
	params, err := decodeParams[DeleteWorkspaceParams](action)
	if err != nil {
		return err
	}
	return a.repository.SetWorkspaceTrashed(ctx, tx, params.WorkspaceId, false, a.clock.Now())
}

func (a DeleteWorkspaceAction) Redo(ctx context.Context, tx repositories.Executor, action models.Action) error {
	params, err := decodeParams[DeleteWorkspaceParams](action)
	if err != nil {
		return err
	}
	return a.repository.SetWorkspaceTrashed(ctx, tx, params.WorkspaceId, true, a.clock.Now())
}
