package dbmodels

import (
	"time"

	"github.com/google/uuid"

	"github.com/gridbase/gridbase-backend/models"
	"github.com/gridbase/gridbase-backend/utils"
)

type DBTableMeta struct {
	Id          uuid.UUID `db:"id"`
	WorkspaceId uuid.UUID `db:"workspace_id"`
	Name        string    `db:"name"`
	Trashed     bool      `db:"trashed"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

const TABLE_TABLES_META = "tables_meta"

var SelectTableMetaColumn = utils.ColumnList[DBTableMeta]()

func AdaptTableMeta(db DBTableMeta) (models.TableMeta, error) {
	return models.TableMeta{
		Id:          db.Id,
		WorkspaceId: db.WorkspaceId,
		Name:        db.Name,
		Trashed:     db.Trashed,
		CreatedAt:   db.CreatedAt,
		UpdatedAt:   db.UpdatedAt,
	}, nil
}
