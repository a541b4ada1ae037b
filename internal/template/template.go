package template

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"github.com/eldridge/starman-dpkg/internal/errors"
)

// kinds lists the control-file kinds in render order.
var kinds = []string{
	"conffiles",
	"control",
	"default",
	"init",
	"install",
	"postinst",
	"postrm",
	"rules",
}

// Kinds returns the control-file kinds in render order.
func Kinds() []string {
	return append([]string(nil), kinds...)
}

// IsValidKind checks if the given kind names a bundled template.
func IsValidKind(kind string) bool {
	for _, k := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}

// Default returns the bundled default body for the given kind.
// A missing asset is a fatal build error (broken installation).
func Default(kind string) (string, error) {
	data, err := defaults.ReadFile(fmt.Sprintf("defaults/%s.tmpl", kind))
	if err != nil {
		return "", errors.Resource(kind, err)
	}
	return string(data), nil
}

// Render renders the bundled default body for kind with the given
// variable map.
func Render(kind string, vars map[string]string) (string, error) {
	body, err := Default(kind)
	if err != nil {
		return "", err
	}
	return renderBody(kind, body, vars)
}

// RenderFile renders a template override file with the given variable
// map.
func RenderFile(path string, vars map[string]string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeResource, fmt.Sprintf("failed to read template override %s", path), err)
	}
	return renderBody(path, string(data), vars)
}

// renderBody parses and executes a single template body.
// Missing variables render as empty strings; callers pre-seed the keys
// they care about.
func renderBody(name, body string, vars map[string]string) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=zero").Parse(body)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.String(), nil
}
