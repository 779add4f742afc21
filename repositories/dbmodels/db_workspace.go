package dbmodels

import (
	"time"

	"github.com/google/uuid"

	"github.com/gridbase/gridbase-backend/models"
	"github.com/gridbase/gridbase-backend/utils"
)

type DBWorkspace struct {
	Id        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Trashed   bool      `db:"trashed"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

const TABLE_WORKSPACES = "workspaces"

var SelectWorkspaceColumn = utils.ColumnList[DBWorkspace]()

func AdaptWorkspace(db DBWorkspace) (models.Workspace, error) {
	return models.Workspace{
		Id:        db.Id,
		Name:      db.Name,
		Trashed:   db.Trashed,
		CreatedAt: db.CreatedAt,
		UpdatedAt: db.UpdatedAt,
	}, nil
}
