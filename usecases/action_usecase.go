package usecases

import (
	"context"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/gridbase/gridbase-backend/models"
	"github.com/gridbase/gridbase-backend/pure_utils"
	"github.com/gridbase/gridbase-backend/repositories"
	"github.com/gridbase/gridbase-backend/repositories/clock"
	"github.com/gridbase/gridbase-backend/usecases/actions"
	"github.com/gridbase/gridbase-backend/usecases/executor_factory"
	"github.com/gridbase/gridbase-backend/utils"
)

type ActionUsecaseRepository interface {
	CreateAction(ctx context.Context, exec repositories.Executor, actionId uuid.UUID,
		creds models.Credentials, input models.CreateActionInput, now time.Time) error
	ListAppliedActions(ctx context.Context, exec repositories.Executor,
		filters repositories.ActionFilters) ([]models.Action, error)
	ListUndoneActions(ctx context.Context, exec repositories.Executor,
		filters repositories.ActionFilters) ([]models.Action, error)
	LockActions(ctx context.Context, tx repositories.Executor, actionIds []uuid.UUID) error
	MarkActionAsUndone(ctx context.Context, exec repositories.Executor,
		actionId uuid.UUID, undoneAt time.Time) error
	MarkActionAsRedone(ctx context.Context, exec repositories.Executor,
		actionId uuid.UUID) error
	SaveActionError(ctx context.Context, exec repositories.Executor,
		actionId uuid.UUID, message string) error
	DeleteActionsWithoutCleanupHook(ctx context.Context, exec repositories.Executor,
		olderThan time.Time, typesWithCleanupHook []string) (int64, error)
	ListExpiredActionsWithCleanupHook(ctx context.Context, exec repositories.Executor,
		olderThan time.Time, typesWithCleanupHook []string) ([]models.Action, error)
	DeleteAction(ctx context.Context, exec repositories.Executor, actionId uuid.UUID) error
}

// ActionUsecase owns the undo/redo log: registering actions as they happen,
// reversing or re-applying the most recent group of a (user, session) stack,
// and garbage-collecting expired actions.
type ActionUsecase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         ActionUsecaseRepository
	registry           *actions.Registry
	clock              clock.Clock
	maxActionsPerGroup int
	retention          time.Duration
}

// RegisterAction logs one performed mutation in the caller's transaction, so
// the action record commits or rolls back together with the mutation itself.
// Requests without a client session id are not undoable and register nothing.
func (usecase ActionUsecase) RegisterAction(
	ctx context.Context,
	tx repositories.Executor,
	creds models.Credentials,
	input models.CreateActionInput,
) (uuid.UUID, error) {
	if !creds.HasSession() {
		return uuid.Nil, nil
	}
	if _, err := usecase.registry.Get(input.Type); err != nil {
		return uuid.Nil, errors.Wrap(models.BadParameterError, err.Error())
	}

	actionId := uuid.New()
	err := usecase.repository.CreateAction(ctx, tx, actionId, creds, input, usecase.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	return actionId, nil
}

func (usecase ActionUsecase) ListAppliedActions(ctx context.Context,
	creds models.Credentials, scopes []models.ActionScope, limit int,
) ([]models.Action, error) {
	if !creds.HasSession() {
		return nil, errors.Wrap(models.BadParameterError, "a client session id is required")
	}
	return usecase.repository.ListAppliedActions(ctx, usecase.executorFactory.NewExecutor(),
		repositories.ActionFilters{
			UserId:    creds.UserId,
			SessionId: creds.SessionId,
			Scopes:    scopes,
			Limit:     limit,
		})
}

func (usecase ActionUsecase) ListUndoneActions(ctx context.Context,
	creds models.Credentials, scopes []models.ActionScope, limit int,
) ([]models.Action, error) {
	if !creds.HasSession() {
		return nil, errors.Wrap(models.BadParameterError, "a client session id is required")
	}
	return usecase.repository.ListUndoneActions(ctx, usecase.executorFactory.NewExecutor(),
		repositories.ActionFilters{
			UserId:    creds.UserId,
			SessionId: creds.SessionId,
			Scopes:    scopes,
			Limit:     limit,
		})
}

// Undo reverses the most recent applied action group of the caller's stack,
// restricted to the given scopes. All actions of the group (up to the group
// cap) are reversed in one transaction, newest first. If any of them fails
// the whole transaction rolls back and the per-action outcomes report what
// went wrong; nothing is left half-reversed.
func (usecase ActionUsecase) Undo(ctx context.Context, creds models.Credentials,
	scopes []models.ActionScope,
) ([]models.ActionOutcome, error) {
	return usecase.processLatestGroup(ctx, creds, scopes, batchOps{
		listCandidates: usecase.repository.ListAppliedActions,
		run: func(ctx context.Context, tx repositories.Executor,
			actionType actions.ActionType, action models.Action,
		) error {
			return actionType.Undo(ctx, tx, action)
		},
		markProcessed: func(ctx context.Context, tx repositories.Executor, actionId uuid.UUID) error {
			return usecase.repository.MarkActionAsUndone(ctx, tx, actionId, usecase.clock.Now())
		},
		errSentinel: models.ErrActionUndoFailed,
	})
}

// Redo mirrors Undo on the redo stack: it re-applies the most recently undone
// action group, most recently undone first.
func (usecase ActionUsecase) Redo(ctx context.Context, creds models.Credentials,
	scopes []models.ActionScope,
) ([]models.ActionOutcome, error) {
	return usecase.processLatestGroup(ctx, creds, scopes, batchOps{
		listCandidates: usecase.repository.ListUndoneActions,
		run: func(ctx context.Context, tx repositories.Executor,
			actionType actions.ActionType, action models.Action,
		) error {
			return actionType.Redo(ctx, tx, action)
		},
		markProcessed: usecase.repository.MarkActionAsRedone,
		errSentinel:   models.ErrActionRedoFailed,
	})
}

type batchOps struct {
	listCandidates func(ctx context.Context, exec repositories.Executor,
		filters repositories.ActionFilters) ([]models.Action, error)
	run func(ctx context.Context, tx repositories.Executor,
		actionType actions.ActionType, action models.Action) error
	markProcessed func(ctx context.Context, tx repositories.Executor, actionId uuid.UUID) error
	errSentinel   error
}

func (usecase ActionUsecase) processLatestGroup(ctx context.Context,
	creds models.Credentials, scopes []models.ActionScope, ops batchOps,
) ([]models.ActionOutcome, error) {
	logger := utils.LoggerFromContext(ctx)
	if !creds.HasSession() {
		return nil, errors.Wrap(models.BadParameterError, "a client session id is required")
	}

	filters := repositories.ActionFilters{
		UserId:    creds.UserId,
		SessionId: creds.SessionId,
		Scopes:    scopes,
	}

	var outcomes []models.ActionOutcome
	err := usecase.transactionFactory.Transaction(ctx, func(tx repositories.Executor) error {
		latestFilters := filters
		latestFilters.Limit = 1
		latest, err := ops.listCandidates(ctx, tx, latestFilters)
		if err != nil {
			return err
		}
		if len(latest) == 0 {
			return nil
		}

		// All members of the latest group, bounded by the group cap. An
		// oversized group is processed over several calls.
		groupFilters := filters
		groupFilters.ActionGroup = &latest[0].ActionGroup
		groupFilters.Limit = usecase.maxActionsPerGroup
		batch, err := ops.listCandidates(ctx, tx, groupFilters)
		if err != nil {
			return err
		}

		err = usecase.repository.LockActions(ctx, tx,
			pure_utils.Map(batch, func(a models.Action) uuid.UUID { return a.Id }))
		if err != nil {
			return err
		}

		anyFailed := false
		for _, action := range batch {
			outcome := models.ActionOutcome{
				ActionId:   action.Id,
				ActionType: action.Type,
				Succeeded:  true,
			}
			actionType, err := usecase.registry.Get(action.Type)
			if err != nil {
				// an unregistered type fails its own outcome without touching
				// the transaction, so the rest of the group can still proceed
				logger.WarnContext(ctx, "action could not be processed",
					slog.String("action_id", action.Id.String()),
					slog.String("action_type", action.Type),
					slog.String("error", err.Error()))
				outcome.Succeeded = false
				outcome.Error = err.Error()
				anyFailed = true
				outcomes = append(outcomes, outcome)
				continue
			}
			err = ops.run(ctx, tx, actionType, action)
			if err != nil {
				err = errors.Wrap(ops.errSentinel, err.Error())
			} else {
				err = ops.markProcessed(ctx, tx, action.Id)
			}
			if err != nil {
				logger.WarnContext(ctx, "action could not be processed",
					slog.String("action_id", action.Id.String()),
					slog.String("action_type", action.Type),
					slog.String("error", err.Error()))
				outcome.Succeeded = false
				outcome.Error = err.Error()
				// the transaction is aborted past this point, stop the batch
				outcomes = append(outcomes, outcome)
				anyFailed = true
				break
			}
			outcomes = append(outcomes, outcome)
		}

		if anyFailed {
			// roll the whole batch back but keep the outcomes
			return models.ErrIgnoreRollBackError
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Failure messages are written after the batch transaction rolled back,
	// otherwise they would be rolled back with it. Best effort: a stale or
	// missing message never fails the call.
	exec := usecase.executorFactory.NewExecutor()
	for _, outcome := range outcomes {
		if outcome.Succeeded {
			continue
		}
		if err := usecase.repository.SaveActionError(ctx, exec, outcome.ActionId, outcome.Error); err != nil {
			logger.WarnContext(ctx, "failed to record action error",
				slog.String("action_id", outcome.ActionId.String()),
				slog.String("error", err.Error()))
		}
	}

	return outcomes, nil
}

// CleanUpOldActions deletes actions past the retention window and returns how
// many rows it removed. Types without a cleanup hook go in one bulk delete
// whatever the row count; types with a hook are processed one by one, oldest
// first, each hook and row deletion committing in its own transaction. A hook
// failure stops the pass there: the failing row survives for the next run and
// the error propagates to the scheduler.
func (usecase ActionUsecase) CleanUpOldActions(ctx context.Context) (int64, error) {
	logger := utils.LoggerFromContext(ctx)
	olderThan := usecase.clock.Now().Add(-usecase.retention)
	typesWithCleanupHook := usecase.registry.KeysWithCleanupHook()
	exec := usecase.executorFactory.NewExecutor()

	deleted, err := usecase.repository.DeleteActionsWithoutCleanupHook(ctx, exec,
		olderThan, typesWithCleanupHook)
	if err != nil {
		return 0, err
	}

	expired, err := usecase.repository.ListExpiredActionsWithCleanupHook(ctx, exec,
		olderThan, typesWithCleanupHook)
	if err != nil {
		return deleted, err
	}

	for _, action := range expired {
		err := usecase.transactionFactory.Transaction(ctx, func(tx repositories.Executor) error {
			actionType, err := usecase.registry.Get(action.Type)
			if err != nil {
				return err
			}
			if hook, ok := actionType.(actions.CleanupHook); ok {
				if err := hook.CleanUp(ctx, tx, action); err != nil {
					return err
				}
			}
			return usecase.repository.DeleteAction(ctx, tx, action.Id)
		})
		if err != nil {
			return deleted, errors.Wrapf(models.ErrCleanupHookFailed,
				"cleanup of action %s of type %s: %v", action.Id, action.Type, err)
		}
		deleted++
	}

	logger.InfoContext(ctx, "cleaned up old actions", slog.Int64("deleted", deleted))
	return deleted, nil
}
