// Package render builds named views from registered templates. It is the
// second factory demo: callers ask for a view by name and receive either a
// renderable view or a NotFound failure, mirroring how repositories report
// absent identifiers.
package render

import (
	"strings"
	"text/template"

	"patternbook/internal/pkg/errs"
)

// View couples a parsed template with the data it renders.
type View struct {
	tmpl *template.Template
	data any
}

// Render executes the view's template against its data.
func (v View) Render() (string, error) {
	var out strings.Builder
	if err := v.tmpl.Execute(&out, v.data); err != nil {
		return "", err
	}

	return out.String(), nil
}

// ViewFactory creates views by name from a fixed template registry.
// Asking for an unregistered name fails with errs.ObjectNotFoundError.
type ViewFactory struct {
	templates map[string]*template.Template
}

// NewViewFactory creates a factory with the given named templates.
// Each template body is parsed eagerly so registration errors surface at
// construction time, not at render time.
func NewViewFactory(sources map[string]string) (*ViewFactory, error) {
	templates := make(map[string]*template.Template, len(sources))
	for name, body := range sources {
		tmpl, err := template.New(name).Parse(body)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
		}

		templates[name] = tmpl
	}

	return &ViewFactory{templates: templates}, nil
}

// Make creates a view for the given template name bound to data.
// Returns errs.ObjectNotFoundError when no template with that name exists.
func (f *ViewFactory) Make(name string, data any) (View, error) {
	tmpl, ok := f.templates[name]
	if !ok {
		return View{}, errs.NewObjectNotFoundError("view", name)
	}

	return View{tmpl: tmpl, data: data}, nil
}

// Names returns the registered template names.
func (f *ViewFactory) Names() []string {
	names := make([]string, 0, len(f.templates))
	for name := range f.templates {
		names = append(names, name)
	}

	return names
}
