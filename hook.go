package lumen

import (
	"log/slog"
	"time"
)

// Span names opened by Renderer.
const (
	SpanDraw     = "draw"
	SpanDrawLine = "draw_line"
)

// Hook instruments rendering calls. Begin is called before an operation
// and the returned Span is ended when it completes. Hooks observe only;
// they must not touch the buffers being rendered.
type Hook interface {
	Begin(name string) Span
}

// Span is an in-flight instrumented operation.
type Span interface {
	End()
}

// nopHook is the default Hook. It allocates nothing.
type nopHook struct{}

func (nopHook) Begin(string) Span { return nopSpan{} }

type nopSpan struct{}

func (nopSpan) End() {}

// LogHook is a Hook that logs the duration of every span at debug level
// through Logger.
type LogHook struct{}

// Begin starts timing the named span.
func (LogHook) Begin(name string) Span {
	return &logSpan{name: name, start: time.Now()}
}

type logSpan struct {
	name  string
	start time.Time
}

func (s *logSpan) End() {
	Logger().Debug("span done", slog.String("span", s.name), slog.Duration("elapsed", time.Since(s.start)))
}
