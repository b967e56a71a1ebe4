package sampling

import "log/slog"

// progressEvery is the number of grid points between debug progress lines.
const progressEvery = 100

// EngineConfig defines how an Engine schedules work.
type EngineConfig struct {
	// Workers bounds the number of grid points evaluated at once. Values
	// below 2 select the sequential scan.
	Workers int
	// Logger receives debug progress. It is never nil after ApplyOptions.
	Logger *slog.Logger
}

// Option mutates an EngineConfig.
type Option func(*EngineConfig)

// DefaultEngineConfig returns a sequential, silent configuration.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Workers: 1,
		Logger:  slog.New(slog.DiscardHandler),
	}
}

// WithWorkers sets the number of concurrent grid evaluations.
func WithWorkers(n int) Option {
	return func(cfg *EngineConfig) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

// WithLogger sets the progress logger.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *EngineConfig) {
		if logger != nil {
			cfg.Logger = logger
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) EngineConfig {
	cfg := DefaultEngineConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
