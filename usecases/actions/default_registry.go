package actions

import (
	"github.com/gridbase/gridbase-backend/repositories"
	"github.com/gridbase/gridbase-backend/repositories/clock"
)

// DefaultRegistry wires every built-in action type. Plugin-style extensions
// register additional types on the returned registry before the server
// starts serving.
func DefaultRegistry(
	repository *repositories.GridbaseDbRepository,
	blobRepository repositories.BlobRepository,
	exportBucketUrl string,
	clock clock.Clock,
) *Registry {
	registry := NewRegistry()
	registry.MustRegister(NewCreateWorkspaceAction(repository, clock))
	registry.MustRegister(NewUpdateWorkspaceAction(repository, clock))
	registry.MustRegister(NewDeleteWorkspaceAction(repository, clock))
	registry.MustRegister(NewCreateTableAction(repository, clock))
	registry.MustRegister(NewUpdateTableAction(repository, clock))
	registry.MustRegister(NewDeleteTableAction(repository, clock))
	registry.MustRegister(NewExportTableAction(repository, blobRepository, exportBucketUrl, clock))
	return registry
}
