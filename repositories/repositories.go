package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	ExecutorGetter       ExecutorGetter
	GridbaseDbRepository *GridbaseDbRepository
	BlobRepository       BlobRepository
}

func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		ExecutorGetter:       NewExecutorGetter(pool),
		GridbaseDbRepository: NewGridbaseDbRepository(),
		BlobRepository:       NewBlobRepository(),
	}
}
