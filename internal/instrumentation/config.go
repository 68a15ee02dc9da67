package instrumentation

// Exporter names accepted by Config.Exporter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Config holds the configuration for OpenTelemetry instrumentation.
type Config struct {
	// ServiceName is the name reported in the telemetry resource (default: todo)
	ServiceName string

	// ServiceVersion is the version of the binary
	ServiceVersion string

	// Enabled determines if instrumentation is active (default: false)
	Enabled bool

	// Exporter selects where spans and metrics go: "stdout" or "otlp"
	Exporter string

	// File receives stdout exporter output; empty means stderr
	File string

	// OTLPEndpoint is the OTLP/HTTP collector endpoint, e.g. "localhost:4318"
	OTLPEndpoint string

	// OTLPInsecure uses plain HTTP for the OTLP exporters
	OTLPInsecure bool
}

// DefaultConfig returns a disabled configuration.
func DefaultConfig() Config {
	return Config{
		ServiceName: "todo",
		Enabled:     false,
		Exporter:    ExporterStdout,
	}
}
