package actions

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/gridbase/gridbase-backend/mocks"
	"github.com/gridbase/gridbase-backend/models"
	"github.com/gridbase/gridbase-backend/repositories"
	"github.com/gridbase/gridbase-backend/repositories/clock"
)

type exportFileRepositoryRecorder struct {
	created   []uuid.UUID
	deleted   []uuid.UUID
	deleteErr error
}

func (r *exportFileRepositoryRecorder) CreateExportFile(ctx context.Context,
	exec repositories.Executor, exportFileId uuid.UUID, tableId uuid.UUID,
	blobKey string, now time.Time,
) error {
	r.created = append(r.created, exportFileId)
	return nil
}

func (r *exportFileRepositoryRecorder) DeleteExportFile(ctx context.Context,
	exec repositories.Executor, exportFileId uuid.UUID,
) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deleted = append(r.deleted, exportFileId)
	return nil
}

func exportAction(t *testing.T, params ExportTableParams) models.Action {
	t.Helper()
	payload, err := json.Marshal(params)
	assert.NoError(t, err)
	return models.Action{
		Id:     uuid.New(),
		Type:   ActionTypeExportTable,
		Params: payload,
		Scope:  params.ActionScope(),
	}
}

func TestExportTableUndoDropsTheExportFileRow(t *testing.T) {
	repo := &exportFileRepositoryRecorder{}
	blobRepo := new(mocks.BlobRepository)
	action := NewExportTableAction(repo, blobRepo, "mem://exports", clock.NewMock(time.Now()))

	params := ExportTableParams{ExportFileId: uuid.New(), TableId: uuid.New(), BlobKey: "exports/a/b.csv"}
	err := action.Undo(context.TODO(), nil, exportAction(t, params))

	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{params.ExportFileId}, repo.deleted)
	blobRepo.AssertNotCalled(t, "DeleteFile")
}

func TestExportTableRedoRecreatesTheExportFileRow(t *testing.T) {
	repo := &exportFileRepositoryRecorder{}
	blobRepo := new(mocks.BlobRepository)
	action := NewExportTableAction(repo, blobRepo, "mem://exports", clock.NewMock(time.Now()))

	params := ExportTableParams{ExportFileId: uuid.New(), TableId: uuid.New(), BlobKey: "exports/a/b.csv"}
	err := action.Redo(context.TODO(), nil, exportAction(t, params))

	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{params.ExportFileId}, repo.created)
}

func TestExportTableCleanUpDeletesBlobThenRow(t *testing.T) {
	repo := &exportFileRepositoryRecorder{}
	blobRepo := new(mocks.BlobRepository)
	action := NewExportTableAction(repo, blobRepo, "mem://exports", clock.NewMock(time.Now()))

	params := ExportTableParams{ExportFileId: uuid.New(), TableId: uuid.New(), BlobKey: "exports/a/b.csv"}
	blobRepo.On("DeleteFile", "mem://exports", params.BlobKey).Return(nil)

	err := action.CleanUp(context.TODO(), nil, exportAction(t, params))

	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{params.ExportFileId}, repo.deleted)
	blobRepo.AssertExpectations(t)
}

func TestExportTableCleanUpKeepsTheRowWhenBlobDeletionFails(t *testing.T) {
	repo := &exportFileRepositoryRecorder{}
	blobRepo := new(mocks.BlobRepository)
	action := NewExportTableAction(repo, blobRepo, "mem://exports", clock.NewMock(time.Now()))

	params := ExportTableParams{ExportFileId: uuid.New(), TableId: uuid.New(), BlobKey: "exports/a/b.csv"}
	blobRepo.On("DeleteFile", "mem://exports", params.BlobKey).
		Return(errors.New("bucket unavailable"))

	err := action.CleanUp(context.TODO(), nil, exportAction(t, params))

	assert.ErrorContains(t, err, "bucket unavailable")
	assert.Empty(t, repo.deleted)
}

func TestExportTableUndoRejectsMalformedParams(t *testing.T) {
	action := NewExportTableAction(&exportFileRepositoryRecorder{}, new(mocks.BlobRepository),
		"mem://exports", clock.NewMock(time.Now()))

	err := action.Undo(context.TODO(), nil, models.Action{
		Id:     uuid.New(),
		Type:   ActionTypeExportTable,
		Params: json.RawMessage(`{"export_file_id":"not-a-uuid"}`),
	})

	assert.ErrorContains(t, err, "invalid params payload")
}
