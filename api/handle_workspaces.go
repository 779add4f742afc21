package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gridbase/gridbase-backend/dto"
	"github.com/gridbase/gridbase-backend/models"
	"github.com/gridbase/gridbase-backend/usecases"
	"github.com/gridbase/gridbase-backend/utils"
)

func handleCreateWorkspace(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds := utils.CredentialsFromCtx(ctx)

		var body dto.CreateWorkspaceBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		workspace, err := uc.NewWorkspaceUsecase().CreateWorkspace(ctx, creds,
			models.CreateWorkspaceInput{Name: body.Name})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"workspace": dto.AdaptWorkspaceDto(workspace)})
	}
}

func handleGetWorkspace(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		workspaceId, err := uuid.Parse(c.Param("workspace_id"))
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		workspace, err := uc.NewWorkspaceUsecase().GetWorkspace(ctx, workspaceId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"workspace": dto.AdaptWorkspaceDto(workspace)})
	}
}

func handleUpdateWorkspace(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds := utils.CredentialsFromCtx(ctx)

		workspaceId, err := uuid.Parse(c.Param("workspace_id"))
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var body dto.UpdateWorkspaceBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		workspace, err := uc.NewWorkspaceUsecase().UpdateWorkspace(ctx, creds,
			models.UpdateWorkspaceInput{Id: workspaceId, Name: body.Name})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"workspace": dto.AdaptWorkspaceDto(workspace)})
	}
}

func handleDeleteWorkspace(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds := utils.CredentialsFromCtx(ctx)

		workspaceId, err := uuid.Parse(c.Param("workspace_id"))
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		err = uc.NewWorkspaceUsecase().DeleteWorkspace(ctx, creds, workspaceId)
		if presentError(ctx, c, err) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}
