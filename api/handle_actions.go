package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gridbase/gridbase-backend/dto"
	"github.com/gridbase/gridbase-backend/models"
	"github.com/gridbase/gridbase-backend/pure_utils"
	"github.com/gridbase/gridbase-backend/usecases"
	"github.com/gridbase/gridbase-backend/utils"
)

const defaultActionListLimit = 50

func handleListActions(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds := utils.CredentialsFromCtx(ctx)

		scopes := pure_utils.Map(c.QueryArray("scope"), func(s string) models.ActionScope {
			return models.ActionScope(s)
		})
		limit := defaultActionListLimit
		if rawLimit := c.Query("limit"); rawLimit != "" {
			parsed, err := strconv.Atoi(rawLimit)
			if err != nil || parsed <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"message": "limit must be a positive integer"})
				return
			}
			limit = parsed
		}

		usecase := uc.NewActionUsecase()
		var actions []models.Action
		var err error
		switch stack := c.DefaultQuery("stack", "undo"); stack {
		case "undo":
			actions, err = usecase.ListAppliedActions(ctx, creds, scopes, limit)
		case "redo":
			actions, err = usecase.ListUndoneActions(ctx, creds, scopes, limit)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"message": "stack must be undo or redo"})
			return
		}
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"actions": pure_utils.Map(actions, dto.AdaptActionDto),
		})
	}
}

func handleUndoActions(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds := utils.CredentialsFromCtx(ctx)

		var input dto.UndoRedoInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		outcomes, err := uc.NewActionUsecase().Undo(ctx, creds, input.ActionScopes())
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"results": pure_utils.Map(outcomes, dto.AdaptActionOutcomeDto),
		})
	}
}

func handleRedoActions(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds := utils.CredentialsFromCtx(ctx)

		var input dto.UndoRedoInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		outcomes, err := uc.NewActionUsecase().Redo(ctx, creds, input.ActionScopes())
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"results": pure_utils.Map(outcomes, dto.AdaptActionOutcomeDto),
		})
	}
}
