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

func handleCreateTable(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds := utils.CredentialsFromCtx(ctx)

		var body dto.CreateTableBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		workspaceId, err := uuid.Parse(body.WorkspaceId)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		table, err := uc.NewTableUsecase().CreateTable(ctx, creds, models.CreateTableInput{
			WorkspaceId: workspaceId,
			Name:        body.Name,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"table": dto.AdaptTableDto(table)})
	}
}

func handleGetTable(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		tableId, err := uuid.Parse(c.Param("table_id"))
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		table, err := uc.NewTableUsecase().GetTable(ctx, tableId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"table": dto.AdaptTableDto(table)})
	}
}

func handleUpdateTable(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds := utils.CredentialsFromCtx(ctx)

		tableId, err := uuid.Parse(c.Param("table_id"))
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var body dto.UpdateTableBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		table, err := uc.NewTableUsecase().UpdateTable(ctx, creds, models.UpdateTableInput{
			Id:   tableId,
			Name: body.Name,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"table": dto.AdaptTableDto(table)})
	}
}

func handleDeleteTable(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds := utils.CredentialsFromCtx(ctx)

		tableId, err := uuid.Parse(c.Param("table_id"))
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		err = uc.NewTableUsecase().DeleteTable(ctx, creds, tableId)
		if presentError(ctx, c, err) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}

func handleExportTable(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds := utils.CredentialsFromCtx(ctx)

		tableId, err := uuid.Parse(c.Param("table_id"))
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		exportFile, err := uc.NewExportUsecase().ExportTable(ctx, creds, tableId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"export_file": dto.AdaptExportFileDto(exportFile)})
	}
}

func handleGetExportFile(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		exportFileId, err := uuid.Parse(c.Param("export_file_id"))
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		exportFile, err := uc.NewExportUsecase().GetExportFile(ctx, exportFileId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"export_file": dto.AdaptExportFileDto(exportFile)})
	}
}
