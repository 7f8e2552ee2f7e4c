package prompt

import (
	"fmt"
	"strings"
)

// Template is a named prompt body with a declared variable set. Placeholders
// use the {name} form. Construction fails when a declared variable has no
// placeholder in the body, so broken templates surface at boot instead of at
// request time.
type Template struct {
	ID   string
	body string
	vars []string
}

func New(id, body string, vars ...string) (Template, error) {
	for _, v := range vars {
		if !strings.Contains(body, placeholder(v)) {
			return Template{}, fmt.Errorf("template %s: missing placeholder for variable %q", id, v)
		}
	}
	return Template{ID: id, body: body, vars: vars}, nil
}

// MustNew is New for package-level template declarations
func MustNew(id, body string, vars ...string) Template {
	t, err := New(id, body, vars...)
	if err != nil {
		panic(err)
	}
	return t
}

// Render substitutes every declared variable. All declared variables must be
// present in values; empty strings are allowed.
func (t Template) Render(values map[string]string) (string, error) {
	out := t.body
	for _, v := range t.vars {
		val, ok := values[v]
		if !ok {
			return "", fmt.Errorf("template %s: no value for variable %q", t.ID, v)
		}
		out = strings.ReplaceAll(out, placeholder(v), val)
	}
	return out, nil
}

// Vars returns the declared variable names
func (t Template) Vars() []string {
	out := make([]string, len(t.vars))
	copy(out, t.vars)
	return out
}

func placeholder(name string) string {
	return "{" + name + "}"
}
