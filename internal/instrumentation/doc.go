// Package instrumentation provides OpenTelemetry tracing and metrics for the
// row store gateway.
//
// Telemetry is off by default. When enabled, NewProvider builds SDK tracer
// and meter providers that export either to a local file (stdout exporter)
// or to an OTLP/HTTP collector. NewInstrumentedStore decorates any
// repository.RowStore so that every gateway call produces:
//   - a client span named rowstore.<operation>
//   - a todo.rowstore.calls counter increment labelled by operation and status
//   - a todo.rowstore.duration histogram sample in milliseconds
//   - a debug log line with the elapsed time
package instrumentation
