package usecases

import (
	"time"

	"github.com/gridbase/gridbase-backend/models"
	"github.com/gridbase/gridbase-backend/repositories"
	"github.com/gridbase/gridbase-backend/repositories/clock"
	"github.com/gridbase/gridbase-backend/usecases/actions"
	"github.com/gridbase/gridbase-backend/usecases/executor_factory"
)

type Usecases struct {
	Repositories               repositories.Repositories
	apiVersion                 string
	exportBucketUrl            string
	maxUndoableActionsPerGroup int
	actionRetention            time.Duration
	clock                      clock.Clock
	actionRegistry             *actions.Registry
}

type Option func(*options)

type options struct {
	apiVersion                 string
	exportBucketUrl            string
	maxUndoableActionsPerGroup int
	actionRetention            time.Duration
	clock                      clock.Clock
}

func WithApiVersion(apiVersion string) Option {
	return func(o *options) {
		o.apiVersion = apiVersion
	}
}

func WithExportBucketUrl(bucket string) Option {
	return func(o *options) {
		o.exportBucketUrl = bucket
	}
}

func WithMaxUndoableActionsPerGroup(max int) Option {
	return func(o *options) {
		o.maxUndoableActionsPerGroup = max
	}
}

func WithActionRetention(retention time.Duration) Option {
	return func(o *options) {
		o.actionRetention = retention
	}
}

func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

func NewUsecases(repositories repositories.Repositories, opts ...Option) Usecases {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.maxUndoableActionsPerGroup == 0 {
		o.maxUndoableActionsPerGroup = models.DEFAULT_MAX_UNDOABLE_ACTIONS_PER_GROUP
	}
	if o.actionRetention == 0 {
		o.actionRetention = models.DEFAULT_ACTION_RETENTION
	}
	if o.clock == nil {
		o.clock = clock.New()
	}

	return Usecases{
		Repositories:               repositories,
		apiVersion:                 o.apiVersion,
		exportBucketUrl:            o.exportBucketUrl,
		maxUndoableActionsPerGroup: o.maxUndoableActionsPerGroup,
		actionRetention:            o.actionRetention,
		clock:                      o.clock,
		actionRegistry: actions.DefaultRegistry(
			repositories.GridbaseDbRepository,
			repositories.BlobRepository,
			o.exportBucketUrl,
			o.clock,
		),
	}
}

func (usecases *Usecases) ApiVersion() string {
	return usecases.apiVersion
}

// ActionRegistry exposes the registry so extensions can add their own action
// types before the server or the worker starts.
func (usecases *Usecases) ActionRegistry() *actions.Registry {
	return usecases.actionRegistry
}

func (usecases *Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewTransactionFactory() executor_factory.TransactionFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewActionUsecase() ActionUsecase {
	return ActionUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.GridbaseDbRepository,
		registry:           usecases.actionRegistry,
		clock:              usecases.clock,
		maxActionsPerGroup: usecases.maxUndoableActionsPerGroup,
		retention:          usecases.actionRetention,
	}
}

func (usecases *Usecases) NewWorkspaceUsecase() WorkspaceUsecase {
	return WorkspaceUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.GridbaseDbRepository,
		actionUsecase:      usecases.NewActionUsecase(),
		clock:              usecases.clock,
	}
}

func (usecases *Usecases) NewTableUsecase() TableUsecase {
	return TableUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.GridbaseDbRepository,
		actionUsecase:      usecases.NewActionUsecase(),
		clock:              usecases.clock,
	}
}

func (usecases *Usecases) NewExportUsecase() ExportUsecase {
	return ExportUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		transactionFactory: usecases.NewTransactionFactory(),
		repository:         usecases.Repositories.GridbaseDbRepository,
		blobRepository:     usecases.Repositories.BlobRepository,
		bucketUrl:          usecases.exportBucketUrl,
		actionUsecase:      usecases.NewActionUsecase(),
		clock:              usecases.clock,
	}
}
