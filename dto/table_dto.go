package dto

import (
	"time"

	"github.com/gridbase/gridbase-backend/models"
)

type Table struct {
	Id          string    `json:"id"`
	WorkspaceId string    `json:"workspace_id"`
	Name        string    `json:"name"`
	Trashed     bool      `json:"trashed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func AdaptTableDto(table models.TableMeta) Table {
	return Table{
		Id:          table.Id.String(),
		WorkspaceId: table.WorkspaceId.String(),
		Name:        table.Name,
		Trashed:     table.Trashed,
		CreatedAt:   table.CreatedAt,
		UpdatedAt:   table.UpdatedAt,
	}
}

type CreateTableBody struct {
	WorkspaceId string `json:"workspace_id" binding:"required,uuid"`
	Name        string `json:"name" binding:"required"`
}

type UpdateTableBody struct {
	Name string `json:"name" binding:"required"`
}

type ExportFile struct {
	Id        string    `json:"id"`
	TableId   string    `json:"table_id"`
	BlobKey   string    `json:"blob_key"`
	CreatedAt time.Time `json:"created_at"`
}

func AdaptExportFileDto(exportFile models.ExportFile) ExportFile {
	return ExportFile{
		Id:        exportFile.Id.String(),
		TableId:   exportFile.TableId.String(),
		BlobKey:   exportFile.BlobKey,
		CreatedAt: exportFile.CreatedAt,
	}
}
