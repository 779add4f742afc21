package models

import (
	"fmt"

	"github.com/google/uuid"
)

// ActionScope bounds which actions an undo or redo call may touch. Scopes are
// flat strings with a hierarchical encoding ("root", "workspace_<id>",
// "table_<id>"). Matching is exact string equality, never prefix traversal: a
// caller wanting table-level actions under a workspace must request every
// table scope it cares about. This keeps filtering O(1) per action and avoids
// ambiguity about partial containment.
type ActionScope string

const RootActionScope ActionScope = "root"

func WorkspaceActionScope(workspaceId uuid.UUID) ActionScope {
	return ActionScope(fmt.Sprintf("workspace_%s", workspaceId))
}

func TableActionScope(tableId uuid.UUID) ActionScope {
	return ActionScope(fmt.Sprintf("table_%s", tableId))
}

func (s ActionScope) String() string {
	return string(s)
}

func (s ActionScope) MatchesAny(scopes []ActionScope) bool {
	for _, scope := range scopes {
		if s == scope {
			return true
		}
	}
	return false
}
