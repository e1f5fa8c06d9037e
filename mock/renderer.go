package mock

import "github.com/fwojciec/htmlconv"

var _ htmlconv.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of htmlconv.Renderer.
type Renderer struct {
	RenderStatementFn func(stmt htmlconv.Statement) (string, error)
	RenderBasicFn     func(prog *htmlconv.BasicProgram) (string, error)
	RenderSmartFn     func(prog *htmlconv.SmartProgram) (string, error)
}

func (r *Renderer) RenderStatement(stmt htmlconv.Statement) (string, error) {
	return r.RenderStatementFn(stmt)
}

func (r *Renderer) RenderBasic(prog *htmlconv.BasicProgram) (string, error) {
	return r.RenderBasicFn(prog)
}

func (r *Renderer) RenderSmart(prog *htmlconv.SmartProgram) (string, error) {
	return r.RenderSmartFn(prog)
}
