package executor_factory

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/gridbase/gridbase-backend/models"
	"github.com/gridbase/gridbase-backend/repositories"
)

type ExecutorFactoryStub struct {
	Mock pgxmock.PgxPoolIface
}

func NewExecutorFactoryStub() ExecutorFactoryStub {
	pool, _ := pgxmock.NewPool()

	return ExecutorFactoryStub{
		Mock: pool,
	}
}

type PgExecutorStub struct {
	pgxmock.PgxPoolIface
}

func (stub ExecutorFactoryStub) NewExecutor() repositories.Executor {
	return PgExecutorStub{
		stub.Mock,
	}
}

// TransactionFactoryStub runs transaction callbacks directly against the
// pgxmock pool, without begin/commit. Rollback semantics are not simulated:
// tests assert on the statements that would have run.
type TransactionFactoryStub struct {
	executorFactory ExecutorFactoryStub
}

func NewTransactionFactoryStub(executorFactory ExecutorFactoryStub) TransactionFactoryStub {
	return TransactionFactoryStub{
		executorFactory: executorFactory,
	}
}

func (stub TransactionFactoryStub) Transaction(ctx context.Context,
	fn func(tx repositories.Executor) error,
) error {
	err := fn(stub.executorFactory.NewExecutor())
	if errors.Is(err, models.ErrIgnoreRollBackError) {
		return nil
	}
	return err
}
