package lumen

import "log/slog"

// Renderer binds the render geometry and instrumentation to the drawing,
// consolidation and display operations.
//
// A Renderer holds no buffers: scratch, final and frame are owned by the
// caller and passed to every call. It performs no synchronization; the
// caller must serialize Draw, Consolidate and Display on shared buffers.
type Renderer struct {
	cfg  Config
	hook Hook
}

// NewRenderer validates cfg and creates a Renderer.
func NewRenderer(cfg Config, opts ...Option) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	Logger().Info("lumen: renderer created",
		slog.Int("width", cfg.Width),
		slog.Int("height", cfg.Height),
		slog.Int("pixels", cfg.Pixels()),
		slog.Int("rays_per_sample", cfg.RaysPerSample))

	return &Renderer{cfg: cfg, hook: o.hook}, nil
}

// Config returns the renderer configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}

// NewBuffer allocates a zero-filled scratch or final buffer of the
// configured size.
func (r *Renderer) NewBuffer() *Buffer {
	return NewBuffer(r.cfg.Width, r.cfg.Height)
}

// NewFrame allocates a display frame of the configured size.
func (r *Renderer) NewFrame() *Frame {
	return NewFrame(r.cfg.Width, r.cfg.Height)
}

// Draw rasterizes instructions into scratch in order, like the package
// level Draw, with a span around the batch and one around each segment.
func (r *Renderer) Draw(scratch *Buffer, instructions []DrawInstruction) {
	span := r.hook.Begin(SpanDraw)
	defer span.End()

	for _, in := range instructions {
		s := r.hook.Begin(SpanDrawLine)
		DrawLine(scratch, in.P1, in.P2, in.Color)
		s.End()
	}
}

// Consolidate merges scratch into final as sample number samples+1 and
// clears scratch. See the package level Consolidate.
func (r *Renderer) Consolidate(final, scratch *Buffer, samples int) {
	Consolidate(final, scratch, samples)
	Logger().Debug("lumen: sample consolidated", slog.Int("samples", samples+1))
}

// Display writes a provisional preview of the render into frame, blending
// the in-progress scratch buffer over final according to p.
func (r *Renderer) Display(p Progress, final, scratch *Buffer, frame *Frame) {
	Composite(frame, final, scratch, DisplayOpacity(p, r.cfg.RaysPerSample))
}
