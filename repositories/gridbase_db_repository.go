package repositories

// GridbaseDbRepository groups all queries against the gridbase database.
type GridbaseDbRepository struct{}

func NewGridbaseDbRepository() *GridbaseDbRepository {
	return &GridbaseDbRepository{}
}
