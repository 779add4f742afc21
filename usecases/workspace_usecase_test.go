package usecases

import (
	"context"
	"encoding/json"
	"testing"

	ops "github.com/go-faker/faker/v4/pkg/options"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/gridbase/gridbase-backend/models"
	"github.com/gridbase/gridbase-backend/repositories"
	"github.com/gridbase/gridbase-backend/repositories/clock"
	"github.com/gridbase/gridbase-backend/repositories/dbmodels"
	"github.com/gridbase/gridbase-backend/usecases/actions"
	"github.com/gridbase/gridbase-backend/usecases/executor_factory"
	"github.com/gridbase/gridbase-backend/utils"
)

func buildWorkspaceUsecase() (WorkspaceUsecase, executor_factory.ExecutorFactoryStub) {
	exec := executor_factory.NewExecutorFactoryStub()
	txFac := executor_factory.NewTransactionFactoryStub(exec)
	repo := repositories.NewGridbaseDbRepository()
	mockClock := clock.NewMock(testTime)

	registry := actions.NewRegistry()
	registry.MustRegister(actions.NewCreateWorkspaceAction(repo, mockClock))
	registry.MustRegister(actions.NewUpdateWorkspaceAction(repo, mockClock))
	registry.MustRegister(actions.NewDeleteWorkspaceAction(repo, mockClock))

	actionUsecase := ActionUsecase{
		executorFactory:    exec,
		transactionFactory: txFac,
		repository:         repo,
		registry:           registry,
		clock:              mockClock,
		maxActionsPerGroup: models.DEFAULT_MAX_UNDOABLE_ACTIONS_PER_GROUP,
		retention:          models.DEFAULT_ACTION_RETENTION,
	}

	return WorkspaceUsecase{
		executorFactory:    exec,
		transactionFactory: txFac,
		repository:         repo,
		actionUsecase:      actionUsecase,
		clock:              mockClock,
	}, exec
}

const insertActionSql = `INSERT INTO actions (id,type,params,user_id,session_id,action_group,scope,workspace_id,created_on) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`

func fakeWorkspaceRow(workspaceId uuid.UUID, name string, trashed bool) (dbmodels.DBWorkspace, []any) {
	return utils.FakeStruct[dbmodels.DBWorkspace](
		ops.WithCustomFieldProvider("Id", func() (interface{}, error) {
			return workspaceId, nil
		}),
		ops.WithCustomFieldProvider("Name", func() (interface{}, error) {
			return name, nil
		}),
		ops.WithCustomFieldProvider("Trashed", func() (interface{}, error) {
			return trashed, nil
		}),
	)
}

func TestCreateWorkspaceRegistersAnActionAtomically(t *testing.T) {
	uc, exec := buildWorkspaceUsecase()
	creds := testCreds(uuid.New())

	_, row := fakeWorkspaceRow(uuid.New(), "Ops", false)

	exec.Mock.ExpectExec(escapeSql(`INSERT INTO workspaces (id,name,trashed,created_at,updated_at) VALUES ($1,$2,$3,$4,$5)`)).
		WithArgs(pgxmock.AnyArg(), "Ops", false, testTime, testTime).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	exec.Mock.ExpectExec(escapeSql(insertActionSql)).
		WithArgs(pgxmock.AnyArg(), actions.ActionTypeCreateWorkspace, pgxmock.AnyArg(),
			creds.UserId, testSessionId, creds.ActionGroup, pgxmock.AnyArg(),
			pgxmock.AnyArg(), testTime).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	exec.Mock.ExpectQuery(escapeSql(`SELECT id, name, trashed, created_at, updated_at FROM workspaces WHERE id = $1`)).
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectWorkspaceColumn).AddRow(row...))

	workspace, err := uc.CreateWorkspace(context.TODO(), creds,
		models.CreateWorkspaceInput{Name: "Ops"})

	assert.NoError(t, exec.Mock.ExpectationsWereMet())
	assert.NoError(t, err)
	assert.Equal(t, "Ops", workspace.Name)
}

func TestCreateWorkspaceWithoutSessionRegistersNothing(t *testing.T) {
	uc, exec := buildWorkspaceUsecase()
	// no client session: the mutation happens but is not undoable
	creds := models.Credentials{UserId: uuid.New()}

	_, row := fakeWorkspaceRow(uuid.New(), "Ops", false)

	exec.Mock.ExpectExec(escapeSql(`INSERT INTO workspaces`)).
		WithArgs(pgxmock.AnyArg(), "Ops", false, testTime, testTime).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	exec.Mock.ExpectQuery(escapeSql(`SELECT id, name, trashed, created_at, updated_at FROM workspaces WHERE id = $1`)).
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectWorkspaceColumn).AddRow(row...))

	_, err := uc.CreateWorkspace(context.TODO(), creds,
		models.CreateWorkspaceInput{Name: "Ops"})

	assert.NoError(t, exec.Mock.ExpectationsWereMet())
	assert.NoError(t, err)
}

func TestUpdateWorkspaceRecordsTheNameBeforeAndAfter(t *testing.T) {
	uc, exec := buildWorkspaceUsecase()
	creds := testCreds(uuid.New())
	workspaceId := uuid.New()

	_, before := fakeWorkspaceRow(workspaceId, "Ops", false)
	_, after := fakeWorkspaceRow(workspaceId, "Ops v2", false)

	exec.Mock.ExpectQuery(escapeSql(`SELECT id, name, trashed, created_at, updated_at FROM workspaces WHERE id = $1`)).
		WithArgs(workspaceId.String()).
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectWorkspaceColumn).AddRow(before...))
	exec.Mock.ExpectExec(escapeSql(`UPDATE workspaces SET name = $1, updated_at = $2 WHERE id = $3`)).
		WithArgs("Ops v2", testTime, workspaceId.String()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	exec.Mock.ExpectExec(escapeSql(insertActionSql)).
		WithArgs(pgxmock.AnyArg(), actions.ActionTypeUpdateWorkspace,
			json.RawMessage(`{"workspace_id":"`+workspaceId.String()+`","name_before":"Ops","name_after":"Ops v2"}`),
			creds.UserId, testSessionId, creds.ActionGroup,
			models.WorkspaceActionScope(workspaceId).String(), &workspaceId, testTime).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	exec.Mock.ExpectQuery(escapeSql(`SELECT id, name, trashed, created_at, updated_at FROM workspaces WHERE id = $1`)).
		WithArgs(workspaceId.String()).
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectWorkspaceColumn).AddRow(after...))

	workspace, err := uc.UpdateWorkspace(context.TODO(), creds, models.UpdateWorkspaceInput{
		Id:   workspaceId,
		Name: "Ops v2",
	})

	assert.NoError(t, exec.Mock.ExpectationsWereMet())
	assert.NoError(t, err)
	assert.Equal(t, "Ops v2", workspace.Name)
}

func TestUpdateTrashedWorkspaceIsNotFound(t *testing.T) {
	uc, exec := buildWorkspaceUsecase()
	creds := testCreds(uuid.New())
	workspaceId := uuid.New()

	_, trashed := fakeWorkspaceRow(workspaceId, "Ops", true)

	exec.Mock.ExpectQuery(escapeSql(`SELECT id, name, trashed, created_at, updated_at FROM workspaces WHERE id = $1`)).
		WithArgs(workspaceId.String()).
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectWorkspaceColumn).AddRow(trashed...))

	_, err := uc.UpdateWorkspace(context.TODO(), creds, models.UpdateWorkspaceInput{
		Id:   workspaceId,
		Name: "Ops v2",
	})

	assert.NoError(t, exec.Mock.ExpectationsWereMet())
	assert.ErrorIs(t, err, models.NotFoundError)
}

func TestDeleteWorkspaceTrashesInsteadOfDeleting(t *testing.T) {
	uc, exec := buildWorkspaceUsecase()
	creds := testCreds(uuid.New())
	workspaceId := uuid.New()

	_, row := fakeWorkspaceRow(workspaceId, "Ops", false)

	exec.Mock.ExpectQuery(escapeSql(`SELECT id, name, trashed, created_at, updated_at FROM workspaces WHERE id = $1`)).
		WithArgs(workspaceId.String()).
		WillReturnRows(pgxmock.NewRows(dbmodels.SelectWorkspaceColumn).AddRow(row...))
	exec.Mock.ExpectExec(escapeSql(`UPDATE workspaces SET trashed = $1, updated_at = $2 WHERE id = $3`)).
		WithArgs(true, testTime, workspaceId.String()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	exec.Mock.ExpectExec(escapeSql(insertActionSql)).
		WithArgs(pgxmock.AnyArg(), actions.ActionTypeDeleteWorkspace, pgxmock.AnyArg(),
			creds.UserId, testSessionId, creds.ActionGroup,
			models.WorkspaceActionScope(workspaceId).String(), &workspaceId, testTime).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := uc.DeleteWorkspace(context.TODO(), creds, workspaceId)

	assert.NoError(t, exec.Mock.ExpectationsWereMet())
	assert.NoError(t, err)
}
