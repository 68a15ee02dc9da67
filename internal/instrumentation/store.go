package instrumentation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"todo-list/internal/logging"
	"todo-list/internal/repository"
)

// Span and metric attribute keys.
const (
	AttrBackend   = "rowstore.backend"
	AttrOperation = "rowstore.operation"
	AttrStatus    = "rowstore.status"
	AttrRowIndex  = "rowstore.row_index"
	AttrColumn    = "rowstore.column"
	AttrRowCount  = "rowstore.row_count"
)

// Operation names recorded for each RowStore method.
const (
	OpGetAllRows   = "get_all_rows"
	OpAppendRow    = "append_row"
	OpFindRowByKey = "find_row_by_key"
	OpUpdateCell   = "update_cell"
)

// Metric names.
const (
	MetricCalls    = "todo.rowstore.calls"
	MetricDuration = "todo.rowstore.duration"
)

// InstrumentedStore decorates a RowStore with a span, metrics and a debug
// log line per call.
type InstrumentedStore struct {
	next     repository.RowStore
	backend  string
	tracer   trace.Tracer
	calls    metric.Int64Counter
	duration metric.Float64Histogram
	logger   *slog.Logger
}

var _ repository.RowStore = (*InstrumentedStore)(nil)

// NewInstrumentedStore wraps next. backend names the wrapped implementation
// in telemetry.
func NewInstrumentedStore(next repository.RowStore, backend string, provider *Provider, logger *slog.Logger) (*InstrumentedStore, error) {
	meter := provider.Meter()

	calls, err := meter.Int64Counter(
		MetricCalls,
		metric.WithDescription("Number of row store calls"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s counter: %w", MetricCalls, err)
	}

	duration, err := meter.Float64Histogram(
		MetricDuration,
		metric.WithDescription("Row store call duration in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(5, 25, 100, 250, 500, 1000, 2500, 5000, 10000),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s histogram: %w", MetricDuration, err)
	}

	if logger == nil {
		logger = logging.Nop()
	}

	return &InstrumentedStore{
		next:     next,
		backend:  backend,
		tracer:   provider.Tracer(),
		calls:    calls,
		duration: duration,
		logger:   logging.WithBackend(logger, backend),
	}, nil
}

// GetAllRows implements repository.RowStore.
func (s *InstrumentedStore) GetAllRows(ctx context.Context) ([]repository.Row, error) {
	var rows []repository.Row
	err := s.observe(ctx, OpGetAllRows, nil, func(ctx context.Context, span trace.Span) error {
		var err error
		rows, err = s.next.GetAllRows(ctx)
		span.SetAttributes(attribute.Int(AttrRowCount, len(rows)))
		return err
	})
	return rows, err
}

// AppendRow implements repository.RowStore.
func (s *InstrumentedStore) AppendRow(ctx context.Context, values []string) error {
	return s.observe(ctx, OpAppendRow, nil, func(ctx context.Context, _ trace.Span) error {
		return s.next.AppendRow(ctx, values)
	})
}

// FindRowByKey implements repository.RowStore.
func (s *InstrumentedStore) FindRowByKey(ctx context.Context, key string) (repository.RowHandle, error) {
	var handle repository.RowHandle
	err := s.observe(ctx, OpFindRowByKey, nil, func(ctx context.Context, span trace.Span) error {
		var err error
		handle, err = s.next.FindRowByKey(ctx, key)
		if err == nil {
			span.SetAttributes(attribute.Int(AttrRowIndex, handle.Index))
		}
		return err
	})
	return handle, err
}

// UpdateCell implements repository.RowStore.
func (s *InstrumentedStore) UpdateCell(ctx context.Context, handle repository.RowHandle, column int, value string) error {
	attrs := []attribute.KeyValue{
		attribute.Int(AttrRowIndex, handle.Index),
		attribute.Int(AttrColumn, column),
	}
	return s.observe(ctx, OpUpdateCell, attrs, func(ctx context.Context, _ trace.Span) error {
		return s.next.UpdateCell(ctx, handle, column, value)
	})
}

// Close closes the wrapped store.
func (s *InstrumentedStore) Close() error {
	return s.next.Close()
}

func (s *InstrumentedStore) observe(ctx context.Context, operation string, attrs []attribute.KeyValue, call func(context.Context, trace.Span) error) error {
	base := []attribute.KeyValue{
		attribute.String(AttrBackend, s.backend),
		attribute.String(AttrOperation, operation),
	}

	ctx, span := s.tracer.Start(ctx, "rowstore."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(append(base, attrs...)...),
	)
	defer span.End()

	start := time.Now()
	err := call(ctx, span)
	elapsed := time.Since(start)

	status := logging.StatusSuccess
	if err != nil {
		status = logging.StatusError
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}

	labels := metric.WithAttributes(append(base, attribute.String(AttrStatus, status))...)
	s.calls.Add(ctx, 1, labels)
	s.duration.Record(ctx, float64(elapsed.Microseconds())/1000, labels)

	s.logger.LogAttrs(ctx, slog.LevelDebug, "row store call",
		logging.Operation(operation),
		logging.Status(status),
		logging.Duration(elapsed),
		logging.Err(err),
	)
	return err
}
