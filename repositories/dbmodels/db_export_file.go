package dbmodels

import (
	"time"

	"github.com/google/uuid"

	"github.com/gridbase/gridbase-backend/models"
	"github.com/gridbase/gridbase-backend/utils"
)

type DBExportFile struct {
	Id        uuid.UUID `db:"id"`
	TableId   uuid.UUID `db:"table_id"`
	BlobKey   string    `db:"blob_key"`
	CreatedAt time.Time `db:"created_at"`
}

const TABLE_EXPORT_FILES = "export_files"

var SelectExportFileColumn = utils.ColumnList[DBExportFile]()

func AdaptExportFile(db DBExportFile) (models.ExportFile, error) {
	return models.ExportFile{
		Id:        db.Id,
		TableId:   db.TableId,
		BlobKey:   db.BlobKey,
		CreatedAt: db.CreatedAt,
	}, nil
}
