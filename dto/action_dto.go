package dto

import (
	"time"

	"github.com/gridbase/gridbase-backend/models"
	"github.com/gridbase/gridbase-backend/pure_utils"
)

type Action struct {
	Id          string     `json:"id"`
	Type        string     `json:"type"`
	Scope       string     `json:"scope"`
	ActionGroup string     `json:"action_group"`
	WorkspaceId *string    `json:"workspace_id,omitempty"`
	CreatedOn   time.Time  `json:"created_on"`
	UndoneAt    *time.Time `json:"undone_at,omitempty"`
	Error       *string    `json:"error,omitempty"`
}

func AdaptActionDto(action models.Action) Action {
	dto := Action{
		Id:          action.Id.String(),
		Type:        action.Type,
		Scope:       action.Scope.String(),
		ActionGroup: action.ActionGroup.String(),
		CreatedOn:   action.CreatedOn,
		UndoneAt:    action.UndoneAt,
		Error:       action.Error,
	}
	if action.WorkspaceId != nil {
		dto.WorkspaceId = pure_utils.Ptr(action.WorkspaceId.String())
	}
	return dto
}

type ActionOutcome struct {
	ActionId   string `json:"action_id"`
	ActionType string `json:"action_type"`
	Succeeded  bool   `json:"succeeded"`
	Error      string `json:"error,omitempty"`
}

func AdaptActionOutcomeDto(outcome models.ActionOutcome) ActionOutcome {
	return ActionOutcome{
		ActionId:   outcome.ActionId.String(),
		ActionType: outcome.ActionType,
		Succeeded:  outcome.Succeeded,
		Error:      outcome.Error,
	}
}

type UndoRedoInput struct {
	Scopes []string `json:"scopes" binding:"required,min=1"`
}

func (input UndoRedoInput) ActionScopes() []models.ActionScope {
	return pure_utils.Map(input.Scopes, func(s string) models.ActionScope {
		return models.ActionScope(s)
	})
}
