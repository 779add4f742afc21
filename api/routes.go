package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gridbase/gridbase-backend/usecases"
)

func addRoutes(r *gin.Engine, conf Configuration, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe)
	r.GET("/version", handleVersion(uc))

	router := r.Use(credentialsMiddleware())

	router.GET("/actions", handleListActions(uc))
	router.POST("/actions/undo", handleUndoActions(uc))
	router.POST("/actions/redo", handleRedoActions(uc))

	router.POST("/workspaces", handleCreateWorkspace(uc))
	router.GET("/workspaces/:workspace_id", handleGetWorkspace(uc))
	router.PATCH("/workspaces/:workspace_id", handleUpdateWorkspace(uc))
	router.DELETE("/workspaces/:workspace_id", handleDeleteWorkspace(uc))

	router.POST("/tables", handleCreateTable(uc))
	router.GET("/tables/:table_id", handleGetTable(uc))
	router.PATCH("/tables/:table_id", handleUpdateTable(uc))
	router.DELETE("/tables/:table_id", handleDeleteTable(uc))
	router.POST("/tables/:table_id/export", handleExportTable(uc))
	router.GET("/export-files/:export_file_id", handleGetExportFile(uc))
}

func handleLivenessProbe(c *gin.Context) {
	c.Status(http.StatusOK)
}

func handleVersion(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": uc.ApiVersion()})
	}
}
