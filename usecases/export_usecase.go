package usecases

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/gridbase/gridbase-backend/models"
	"github.com/gridbase/gridbase-backend/repositories"
	"github.com/gridbase/gridbase-backend/repositories/clock"
	"github.com/gridbase/gridbase-backend/usecases/actions"
	"github.com/gridbase/gridbase-backend/usecases/executor_factory"
)

type ExportUsecaseRepository interface {
	GetTableById(ctx context.Context, exec repositories.Executor,
		tableId uuid.UUID) (models.TableMeta, error)
	CreateExportFile(ctx context.Context, exec repositories.Executor,
		exportFileId uuid.UUID, tableId uuid.UUID, blobKey string, now time.Time) error
	GetExportFileById(ctx context.Context, exec repositories.Executor,
		exportFileId uuid.UUID) (models.ExportFile, error)
}

// ExportUsecase snapshots a table to blob storage and registers an
// export_table action. The blob is written before the database transaction
// opens: if the transaction then fails, the orphaned blob is harmless and no
// action references it.
type ExportUsecase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         ExportUsecaseRepository
	blobRepository     repositories.BlobRepository
	bucketUrl          string
	actionUsecase      ActionUsecase
	clock              clock.Clock
}

func (usecase ExportUsecase) GetExportFile(ctx context.Context, exportFileId uuid.UUID) (models.ExportFile, error) {
	return usecase.repository.GetExportFileById(ctx, usecase.executorFactory.NewExecutor(), exportFileId)
}

func (usecase ExportUsecase) ExportTable(ctx context.Context,
	creds models.Credentials, tableId uuid.UUID,
) (models.ExportFile, error) {
	table, err := usecase.repository.GetTableById(ctx, usecase.executorFactory.NewExecutor(), tableId)
	if err != nil {
		return models.ExportFile{}, err
	}
	if table.Trashed {
		return models.ExportFile{}, errors.Wrapf(models.NotFoundError, "table %s is trashed", tableId)
	}

	exportFileId := uuid.New()
	blobKey := fmt.Sprintf("exports/%s/%s.csv", tableId, exportFileId)
	if err := usecase.writeExport(ctx, blobKey, table); err != nil {
		return models.ExportFile{}, err
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.transactionFactory,
		func(tx repositories.Executor) (models.ExportFile, error) {
			if err := usecase.repository.CreateExportFile(ctx, tx, exportFileId,
				tableId, blobKey, usecase.clock.Now()); err != nil {
				return models.ExportFile{}, err
			}

			params := actions.ExportTableParams{
				ExportFileId: exportFileId,
				TableId:      tableId,
				BlobKey:      blobKey,
			}
			serializedParams, err := json.Marshal(params)
			if err != nil {
				return models.ExportFile{}, errors.Wrap(err, "could not serialize action params")
			}
			_, err = usecase.actionUsecase.RegisterAction(ctx, tx, creds, models.CreateActionInput{
				Type:        actions.ActionTypeExportTable,
				Params:      serializedParams,
				Scope:       params.ActionScope(),
				WorkspaceId: &table.WorkspaceId,
			})
			if err != nil {
				return models.ExportFile{}, err
			}

			return usecase.repository.GetExportFileById(ctx, tx, exportFileId)
		})
}

func (usecase ExportUsecase) writeExport(ctx context.Context, blobKey string, table models.TableMeta) error {
	stream, err := usecase.blobRepository.OpenStream(ctx, usecase.bucketUrl, blobKey)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(stream)
	records := [][]string{
		{"id", "workspace_id", "name", "created_at"},
		{
			table.Id.String(),
			table.WorkspaceId.String(),
			table.Name,
			table.CreatedAt.Format(time.RFC3339),
		},
	}
	if err := writer.WriteAll(records); err != nil {
		stream.Close()
		return errors.Wrapf(err, "failed to write export %s", blobKey)
	}
	return errors.Wrapf(stream.Close(), "failed to finalize export %s", blobKey)
}
