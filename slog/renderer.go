package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/htmlconv"
)

// Ensure LoggingRenderer implements htmlconv.Renderer.
var _ htmlconv.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with debug logging for whole programs.
// Single statements are not logged.
type LoggingRenderer struct {
	next   htmlconv.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next htmlconv.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// RenderStatement delegates to the wrapped renderer.
func (r *LoggingRenderer) RenderStatement(stmt htmlconv.Statement) (string, error) {
	return r.next.RenderStatement(stmt)
}

// RenderBasic delegates to the wrapped renderer and logs the operation.
func (r *LoggingRenderer) RenderBasic(prog *htmlconv.BasicProgram) (src string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("render basic program",
			"source", prog.Source,
			"statements", len(prog.Statements),
			"bytes", len(src),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.RenderBasic(prog)
}

// RenderSmart delegates to the wrapped renderer and logs the operation.
func (r *LoggingRenderer) RenderSmart(prog *htmlconv.SmartProgram) (src string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("render smart program",
			"source", prog.Source,
			"handlers", len(prog.Handlers),
			"bytes", len(src),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.RenderSmart(prog)
}
