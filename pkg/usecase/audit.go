package usecase

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/faasr/faasr-gateway/pkg/domain/interfaces"
	"github.com/faasr/faasr-gateway/pkg/domain/model"
	"github.com/faasr/faasr-gateway/pkg/utils/errutil"
	"github.com/faasr/faasr-gateway/pkg/utils/logging"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
)

// recordEvent writes one audit row. The sink is optional and strictly
// best-effort: a failure is reported but never fails the operation that
// produced the event.
func (x *UseCase) recordEvent(ctx context.Context, event *model.RegistrationEvent) {
	if x.clients.BigQuery() == nil {
		return
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = logging.CtxTime(ctx).UTC()
	}

	if err := x.insertEvent(ctx, event); err != nil {
		errutil.HandleError(ctx, "failed to record registration event", err)
	}
}

func (x *UseCase) insertEvent(ctx context.Context, event *model.RegistrationEvent) error {
	schema, err := ensureAuditTable(ctx, x.clients.BigQuery(), event)
	if err != nil {
		return err
	}

	rawRecord := &model.RegistrationEventRawRecord{
		RegistrationEvent: *event,
		Timestamp:         event.Timestamp.UnixMicro(),
	}

	if err := x.clients.BigQuery().Insert(ctx, schema, rawRecord); err != nil {
		return goerr.Wrap(err, "failed to insert registration event")
	}

	return nil
}

func ensureAuditTable(ctx context.Context, bq interfaces.BigQuery, event *model.RegistrationEvent) (bigquery.Schema, error) {
	schema, err := bqs.Infer(&model.RegistrationEventRawRecord{
		RegistrationEvent: *event,
		Timestamp:         event.Timestamp.UnixMicro(),
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer audit schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get audit table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create audit table")
		}

		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge audit table schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update audit table schema")
	}

	return mergedSchema, nil
}
