// Package sprig renders htmlconv program models to Go source using
// text/template with the sprig function library.
package sprig

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/fwojciec/htmlconv"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Ensure Renderer implements htmlconv.Renderer at compile time.
var _ htmlconv.Renderer = (*Renderer)(nil)

// Renderer renders basic and smart programs. Complete programs are passed
// through gofmt, so a successful render is always parseable Go.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer creates a new Renderer from the embedded templates.
func NewRenderer() *Renderer {
	funcs := sprig.TxtFuncMap()
	funcs["header"] = htmlconv.GeneratedHeader
	funcs["comment"] = htmlconv.CommentText

	tmpl := template.Must(template.New("htmlconv").Funcs(funcs).ParseFS(templatesFS, "templates/*.tmpl"))
	return &Renderer{tmpl: tmpl}
}

// RenderStatement renders one statement of a basic program as a single line.
func (r *Renderer) RenderStatement(stmt htmlconv.Statement) (string, error) {
	out, err := r.execute("statement", stmt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// RenderBasic renders a complete basic program.
func (r *Renderer) RenderBasic(prog *htmlconv.BasicProgram) (string, error) {
	out, err := r.execute("basic.tmpl", prog)
	if err != nil {
		return "", err
	}
	return gofmt(out)
}

// RenderSmart renders a complete smart program.
func (r *Renderer) RenderSmart(prog *htmlconv.SmartProgram) (string, error) {
	out, err := r.execute("smart.tmpl", prog)
	if err != nil {
		return "", err
	}
	return gofmt(out)
}

func (r *Renderer) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}

func gofmt(src string) (string, error) {
	out, err := format.Source([]byte(src))
	if err != nil {
		return "", htmlconv.Errorf(htmlconv.EINTERNAL, "generated program is not valid Go: %v", err)
	}
	return string(out), nil
}
