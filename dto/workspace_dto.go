package dto

import (
	"time"

	"github.com/gridbase/gridbase-backend/models"
)

type Workspace struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Trashed   bool      `json:"trashed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func AdaptWorkspaceDto(workspace models.Workspace) Workspace {
	return Workspace{
		Id:        workspace.Id.String(),
		Name:      workspace.Name,
		Trashed:   workspace.Trashed,
		CreatedAt: workspace.CreatedAt,
		UpdatedAt: workspace.UpdatedAt,
	}
}

type CreateWorkspaceBody struct {
	Name string `json:"name" binding:"required"`
}

type UpdateWorkspaceBody struct {
	Name string `json:"name" binding:"required"`
}
