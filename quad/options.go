package quad

// Config defines the convergence settings of an Integrator.
type Config struct {
	// AbsTol is the absolute error target. Zero means relative only.
	AbsTol float64
	// RelTol is the error target relative to |Value|.
	RelTol float64
	// MaxSubdivisions bounds the number of subintervals kept by the
	// adaptive loop. It is the only safeguard against non-termination.
	MaxSubdivisions int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the tolerances used when no option is given.
func DefaultConfig() Config {
	return Config{
		AbsTol:          0,
		RelTol:          1.49e-8,
		MaxSubdivisions: 50,
	}
}

// WithAbsTol sets the absolute error target.
func WithAbsTol(tol float64) Option {
	return func(cfg *Config) {
		if tol >= 0 {
			cfg.AbsTol = tol
		}
	}
}

// WithRelTol sets the relative error target.
func WithRelTol(tol float64) Option {
	return func(cfg *Config) {
		if tol >= 0 {
			cfg.RelTol = tol
		}
	}
}

// WithMaxSubdivisions sets the subdivision budget.
func WithMaxSubdivisions(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MaxSubdivisions = n
		}
	}
}

// WithConfig replaces every setting with cfg. Later options still apply.
func WithConfig(cfg Config) Option {
	return func(dst *Config) {
		*dst = cfg
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
