package actions

import (
	"encoding/json"

	"github.com/cockroachdb/errors"

	"github.com/gridbase/gridbase-backend/models"
)

func decodeParams[T any](action models.Action) (T, error) {
	var params T
	if err := json.Unmarshal(action.Params, &params); err != nil {
		return params, errors.Wrapf(err, "invalid params payload on action %s", action.Id)
	}
	return params, nil
}
