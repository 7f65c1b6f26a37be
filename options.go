package lumen

// Option configures a Renderer during creation.
//
// Example:
//
//	// Silent renderer
//	r, err := lumen.NewRenderer(lumen.DefaultConfig())
//
//	// Renderer that logs span timings
//	r, err := lumen.NewRenderer(cfg, lumen.WithHook(lumen.LogHook{}))
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	hook Hook
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		hook: nopHook{},
	}
}

// WithHook sets the instrumentation hook. A nil hook restores the no-op
// default.
func WithHook(h Hook) Option {
	return func(o *options) {
		if h == nil {
			h = nopHook{}
		}
		o.hook = h
	}
}
