package numeric

// Config controls how an operation chooses its kernels. The zero value lets
// the dispatcher pick the widest supported tier.
type Config struct {
	// ScalarOnly disables every vector tier for the call.
	ScalarOnly bool

	// MaxWidth caps the tier width in bytes. Zero means no cap.
	MaxWidth int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{}
}

// WithScalarOnly forces the scalar kernel for the whole buffer.
func WithScalarOnly() Option {
	return func(cfg *Config) {
		cfg.ScalarOnly = true
	}
}

// WithMaxWidth restricts tier selection to registers of at most bytes bytes.
// Non-positive values are ignored.
func WithMaxWidth(bytes int) Option {
	return func(cfg *Config) {
		if bytes > 0 {
			cfg.MaxWidth = bytes
		}
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

// Allows reports whether a tier of the given width may be used under cfg.
func (cfg Config) Allows(width int) bool {
	if cfg.ScalarOnly {
		return false
	}
	return cfg.MaxWidth == 0 || width <= cfg.MaxWidth
}
