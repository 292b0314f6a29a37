package compiler

// Option customizes a CompileSafe call. Later options override earlier ones.
type Option func(cfg *config)

type config struct {
	maxDepth int
}

func newConfig(opts ...Option) config {
	cfg := config{maxDepth: 0}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMaxDepth bounds the input Layout's nesting depth to n, rejecting
// deeper input with a StackOverflow before any pass runs. n <= 0 disables
// the bound (the default), relying on Go's growable goroutine stacks.
func WithMaxDepth(n int) Option {
	return func(cfg *config) {
		cfg.maxDepth = n
	}
}
