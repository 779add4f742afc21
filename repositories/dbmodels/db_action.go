package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/guregu/null/v5"

	"github.com/gridbase/gridbase-backend/models"
	"github.com/gridbase/gridbase-backend/utils"
)

type DBAction struct {
	Id          uuid.UUID       `db:"id"`
	Type        string          `db:"type"`
	Params      json.RawMessage `db:"params"`
	UserId      uuid.UUID       `db:"user_id"`
	SessionId   string          `db:"session_id"`
	ActionGroup uuid.UUID       `db:"action_group"`
	Scope       string          `db:"scope"`
	WorkspaceId *uuid.UUID      `db:"workspace_id"`
	CreatedOn   time.Time       `db:"created_on"`
	UndoneAt    null.Time       `db:"undone_at"`
	Error       null.String     `db:"error"`
}

const TABLE_ACTIONS = "actions"

var SelectActionColumn = utils.ColumnList[DBAction]()

func AdaptAction(db DBAction) (models.Action, error) {
	return models.Action{
		Id:          db.Id,
		Type:        db.Type,
		Params:      db.Params,
		UserId:      db.UserId,
		SessionId:   db.SessionId,
		ActionGroup: db.ActionGroup,
		Scope:       models.ActionScope(db.Scope),
		WorkspaceId: db.WorkspaceId,
		CreatedOn:   db.CreatedOn,
		UndoneAt:    db.UndoneAt.Ptr(),
		Error:       db.Error.Ptr(),
	}, nil
}
