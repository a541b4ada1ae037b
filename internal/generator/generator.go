// Package generator assembles the debian/ control-file set: it seeds
// the base variable map, resolves the web-server dependent variables,
// renders each template kind, and writes the results to disk.
//
// Resolution runs once per template kind, against a fresh copy of the
// seed map, immediately before that kind is rendered. The seed defines
// the append contract for the additive keys: package_binary_depends
// starts from the substvar base, webserver_config_link and
// webserver_restart start empty, and uid starts empty so an absent uid
// renders as nothing.
package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/eldridge/starman-dpkg/internal/config"
	"github.com/eldridge/starman-dpkg/internal/logger"
	"github.com/eldridge/starman-dpkg/internal/resolver"
	"github.com/eldridge/starman-dpkg/internal/template"
)

// dependsSeed is the base of package_binary_depends before the resolver
// appends the web server packages.
const dependsSeed = "${misc:Depends}, adduser"

// executable marks the kinds installed as scripts.
var executable = map[string]bool{
	"init":     true,
	"postinst": true,
	"postrm":   true,
	"rules":    true,
}

// File is one rendered control file.
type File struct {
	Kind    string      // template kind (control, init, ...)
	Path    string      // output path, set after writing
	Content string      // rendered body
	Mode    os.FileMode // file mode used when writing
}

// Generator renders the control-file set for one package configuration.
type Generator struct {
	cfg *config.Config
}

// New creates a Generator for the given configuration.
func New(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// Seed returns the base variable map handed to the resolver before each
// render. Callers get a fresh map per call; mutating it does not affect
// the generator.
func (g *Generator) Seed() resolver.Vars {
	return resolver.Vars{
		"package":                g.cfg.Package,
		"maintainer":             g.cfg.Maintainer,
		"psgi_script":            g.cfg.PsgiScript,
		"uid":                    "",
		"package_binary_depends": dependsSeed,
		"webserver_config_link":  "",
		"webserver_restart":      "",
	}
}

// RenderAll resolves and renders every template kind in order without
// touching the filesystem. Template overrides from the configuration
// replace the bundled default body for their kind.
func (g *Generator) RenderAll() ([]File, error) {
	seed := g.Seed()
	files := make([]File, 0, len(template.Kinds()))

	for _, kind := range template.Kinds() {
		vars := resolver.Resolve(g.cfg, seed)

		var content string
		var err error
		if override := g.cfg.Templates[kind]; override != "" {
			logger.Debug("Rendering %s from override %s", kind, override)
			content, err = template.RenderFile(override, vars)
		} else {
			logger.Debug("Rendering %s from bundled default", kind)
			content, err = template.Render(kind, vars)
		}
		if err != nil {
			return nil, err
		}

		mode := os.FileMode(0644)
		if executable[kind] {
			mode = 0755
		}
		files = append(files, File{Kind: kind, Content: content, Mode: mode})
	}

	return files, nil
}

// Generate renders the full control-file set and writes it under
// outDir, one file per kind. Nothing is written if any render fails.
func (g *Generator) Generate(outDir string) ([]File, error) {
	files, err := g.RenderAll()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	for i := range files {
		path := filepath.Join(outDir, files[i].Kind)
		if err := os.WriteFile(path, []byte(files[i].Content), files[i].Mode); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		files[i].Path = path
		logger.Debug("Wrote %s (%d bytes)", path, len(files[i].Content))
	}

	return files, nil
}
