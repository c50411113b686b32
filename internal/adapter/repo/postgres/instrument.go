package postgres

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/fairyhunter13/brainstore/internal/adapter/observability"
)

// startOp opens a span for one repository operation and returns the func
// that closes it, records the error on the span and observes the query metrics.
func startOp(ctx context.Context, tracer, op, operation, table string) (context.Context, func(error)) {
	ctx, span := otel.Tracer(tracer).Start(ctx, op)
	span.SetAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation", operation),
		attribute.String("db.sql.table", table),
	)
	start := time.Now()
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		observability.ObserveQuery(op, start, err)
		span.End()
	}
}
