// Package template renders text/template sources with the layout
// engine wired in as template functions, so a report template can emit
// aligned rows and whole tables without doing any width math itself.
package template

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/arthur-debert/outstanding/pkg/errors"
	"github.com/arthur-debert/outstanding/pkg/logging"
	"github.com/arthur-debert/outstanding/pkg/tabular"
	"github.com/arthur-debert/outstanding/pkg/values"
)

// Engine executes templates against a set of named column specs and a
// fixed output width. Register specs once, then render any number of
// templates against them.
type Engine struct {
	width  int
	border tabular.BorderStyle
	specs  map[string]*tabular.Spec
}

// Option adjusts engine construction.
type Option func(*Engine)

// WithBorder sets the border style used by the table function.
func WithBorder(b tabular.BorderStyle) Option {
	return func(e *Engine) { e.border = b }
}

// New builds an engine rendering at the given total width.
func New(width int, opts ...Option) *Engine {
	e := &Engine{
		width: width,
		specs: make(map[string]*tabular.Spec),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RegisterSpec makes a column spec addressable from templates by name.
func (e *Engine) RegisterSpec(name string, spec *tabular.Spec) {
	e.specs[name] = spec
}

func (e *Engine) spec(name string) (*tabular.Spec, error) {
	spec, ok := e.specs[name]
	if !ok {
		return nil, errors.Newf(errors.ErrNotFound, "no column spec registered as %q", name)
	}
	return spec, nil
}

// Funcs returns the engine's template function map.
func (e *Engine) Funcs() template.FuncMap {
	return template.FuncMap{
		"row":   e.funcRow,
		"table": e.funcTable,
		"get":   funcGet,
		"nl":    funcNL,
		"style": funcStyleRemoved,
	}
}

// Render parses and executes one template source.
func (e *Engine) Render(name, src string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Funcs(e.Funcs()).Parse(src)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrTemplateParse, "failed to parse template %s", name)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		logger := logging.GetLogger("template")
		logger.Debug().Err(err).Str("template", name).Msg("render failed")
		return "", errors.Wrapf(err, errors.ErrTemplateRender, "failed to render template %s", name)
	}
	return b.String(), nil
}

// funcRow renders one single-line row of a registered spec.
func (e *Engine) funcRow(specName string, vals ...interface{}) (string, error) {
	spec, err := e.spec(specName)
	if err != nil {
		return "", err
	}
	row := make([]string, len(vals))
	for i, v := range vals {
		row[i] = stringify(v)
	}
	return tabular.NewFormatter(spec, e.width).Row(row)
}

// funcTable renders a full table, header included, from a record list.
func (e *Engine) funcTable(specName string, records []values.Value) (string, error) {
	spec, err := e.spec(specName)
	if err != nil {
		return "", err
	}
	f := tabular.NewFormatter(spec, e.width)
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = f.ExtractRow(rec)
	}
	table := &tabular.Table{Spec: spec, Width: e.width, Border: e.border}
	return table.Render(rows)
}

// funcGet extracts a dot path from a record and renders it, empty when
// the path is absent.
func funcGet(record values.Value, path string) string {
	v, _ := values.Extract(record, path)
	return v.Render()
}

// funcNL emits newlines, one by default.
func funcNL(counts ...int) string {
	n := 1
	if len(counts) > 0 && counts[0] > 0 {
		n = counts[0]
	}
	return strings.Repeat("\n", n)
}

// funcStyleRemoved keeps old templates from failing silently: styling
// moved out of the function namespace and into inline tags.
func funcStyleRemoved(args ...interface{}) (string, error) {
	return "", errors.New(errors.ErrTemplateRender,
		"the style function was removed; write [name]text[/name] tags directly in template text")
}

func stringify(v interface{}) string {
	switch x := v.(type) {
	case values.Value:
		return x.Render()
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
