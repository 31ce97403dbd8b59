package calamp

import (
	"runtime"

	"github.com/rcrowley/go-metrics"
)

// MobileIDMode selects how the mobile id type sub-record is consumed.
type MobileIDMode int

const (
	// MobileIDCompat consumes bytes exactly like deployed LMU decoders: the type
	// sub-record is read only behind a non-empty mobile id, a single type byte
	// is consumed regardless of its declared length and only ESN ids are
	// reported.
	MobileIDCompat MobileIDMode = iota
	// MobileIDExtended reads the type sub-record whenever its flag is set,
	// skips any bytes its length declares beyond the type byte and reports
	// every mobile id variant.
	MobileIDExtended
)

func (m MobileIDMode) String() string {
	switch m {
	case MobileIDCompat:
		return "compat"
	case MobileIDExtended:
		return "extended"
	}
	return "unknown"
}

// Config is used to pass multiple configuration options to calamp's decoders.
type Config struct {
	// Options header decoding.
	Options struct {
		// How the mobile id type sub-record is consumed (default
		// MobileIDCompat). Both modes consume the same bytes when the type
		// sub-record is one byte long and follows a non-empty mobile id.
		MobileID MobileIDMode
	}

	// The number of goroutines DecodeConcurrent uses (default
	// runtime.NumCPU()).
	Concurrency int

	// MetricRegistry is the registry the Decoder records its metrics to.
	// Defaults to a local registry. If you want to disable metrics gathering,
	// set "metrics.UseNilMetrics" to "true" prior to creating the Decoder.
	MetricRegistry metrics.Registry
}

// defaultConfig backs the package level parse functions, which record no
// metrics.
var defaultConfig = NewConfig()

// NewConfig returns a new configuration instance with sane defaults.
func NewConfig() *Config {
	c := &Config{}

	c.Options.MobileID = MobileIDCompat
	c.Concurrency = runtime.NumCPU()
	c.MetricRegistry = metrics.NewRegistry()

	return c
}

// Validate checks a Config instance. It will return a
// ConfigurationError if the specified values don't make sense.
func (c *Config) Validate() error {
	switch c.Options.MobileID {
	case MobileIDCompat, MobileIDExtended:
	default:
		return ConfigurationError("Options.MobileID must be MobileIDCompat or MobileIDExtended")
	}

	switch {
	case c.Concurrency <= 0:
		return ConfigurationError("Concurrency must be > 0")
	case c.MetricRegistry == nil:
		return ConfigurationError("MetricRegistry must not be nil")
	}

	return nil
}
