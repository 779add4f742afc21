package actions

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/gridbase/gridbase-backend/models"
)

// Registry maps action type keys to their implementations. It is populated
// once at startup and read-only afterwards, so lookups need no locking.
type Registry struct {
	types map[string]ActionType
}

func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]ActionType),
	}
}

func (r *Registry) Register(actionType ActionType) error {
	key := actionType.Key()
	if _, ok := r.types[key]; ok {
		return errors.Newf("action type %s is already registered", key)
	}
	r.types[key] = actionType
	return nil
}

// MustRegister is for startup wiring, where a duplicate key is a programming
// error.
func (r *Registry) MustRegister(actionType ActionType) {
	if err := r.Register(actionType); err != nil {
		panic(err)
	}
}

func (r *Registry) Get(key string) (ActionType, error) {
	actionType, ok := r.types[key]
	if !ok {
		return nil, errors.Wrapf(models.ErrUnknownActionType, "no implementation for action type %s", key)
	}
	return actionType, nil
}

func (r *Registry) HasCleanupHook(key string) bool {
	actionType, ok := r.types[key]
	if !ok {
		return false
	}
	_, ok = actionType.(CleanupHook)
	return ok
}

// KeysWithCleanupHook returns the type keys whose rows must go through the
// per-action cleanup path instead of the bulk delete. Sorted for stable SQL.
func (r *Registry) KeysWithCleanupHook() []string {
	var keys []string
	for key, actionType := range r.types {
		if _, ok := actionType.(CleanupHook); ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
