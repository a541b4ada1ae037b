package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eldridge/starman-dpkg/internal/errors"
	"github.com/eldridge/starman-dpkg/internal/template"
)

// DefaultFile is the default configuration file name
const DefaultFile = "starman-dpkg.yaml"

// Config is the validated, immutable package configuration.
// Construct it through Load or Parse; never mutate it afterwards.
type Config struct {
	Package        string            // Debian package name
	Maintainer     string            // control-file Maintainer entry
	WebServer      string            // apache, nginx, or all
	StarmanPort    string            // port Starman listens on
	StarmanWorkers string            // Starman worker count
	PsgiScript     string            // path to the PSGI entry point
	StartupTime    int               // seconds to wait for startup in the init script
	UID            *int              // fixed uid for the service account, nil when unset
	ApacheModules  []string          // extra apache modules to enable, in input order
	Templates      map[string]string // per-kind template override paths
}

// raw mirrors the YAML document before validation.
type raw struct {
	Package        string            `yaml:"package"`
	Maintainer     string            `yaml:"maintainer"`
	WebServer      string            `yaml:"web_server"`
	StarmanPort    *token            `yaml:"starman_port"`
	StarmanWorkers *token            `yaml:"starman_workers"`
	PsgiScript     string            `yaml:"psgi_script"`
	StartupTime    *int              `yaml:"startup_time"`
	UID            *int              `yaml:"uid"`
	ApacheModules  StringList        `yaml:"apache_modules"`
	Templates      map[string]string `yaml:"templates"`
}

// token accepts either a quoted string or a bare numeric scalar.
type token string

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *token) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("expected a scalar value, got %s", kindName(value.Kind))
	}
	*t = token(value.Value)
	return nil
}

// StringList accepts either a YAML sequence of strings or a single
// whitespace-separated string, split on runs of whitespace.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var joined string
		if err := value.Decode(&joined); err != nil {
			return err
		}
		*s = strings.Fields(joined)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*s = items
		return nil
	default:
		return fmt.Errorf("expected a string or a list of strings, got %s", kindName(value.Kind))
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	default:
		return "node"
	}
}

// moduleToken matches valid apache module names.
var moduleToken = regexp.MustCompile(`^[a-z_]+$`)

// Load reads and validates the configuration file at path.
// When pkg is non-empty it overrides the file's package key.
func Load(path, pkg string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfig, fmt.Sprintf("failed to read config %s", path), err)
	}
	return Parse(data, pkg)
}

// Parse validates raw YAML configuration and returns the immutable Config.
// When pkg is non-empty it overrides the document's package key.
func Parse(data []byte, pkg string) (*Config, error) {
	var r raw
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfig, "failed to parse config", err)
	}
	if pkg != "" {
		r.Package = pkg
	}
	return fromRaw(&r)
}

// fromRaw applies defaults and validation. This is the single place
// where raw input becomes a Config; nothing coerces after this point.
func fromRaw(r *raw) (*Config, error) {
	if r.Package == "" {
		return nil, errors.MissingField("package")
	}
	if r.WebServer == "" {
		return nil, errors.MissingField("web_server")
	}
	if !IsValidWebServer(r.WebServer) {
		return nil, errors.InvalidValue("web_server",
			fmt.Sprintf("%q is not a supported web server (expected one of: %s)",
				r.WebServer, strings.Join(ValidWebServers(), ", ")))
	}
	if r.StarmanPort == nil || *r.StarmanPort == "" {
		return nil, errors.MissingField("starman_port")
	}

	for kind := range r.Templates {
		if !template.IsValidKind(kind) {
			return nil, errors.InvalidValue("templates",
				fmt.Sprintf("%q is not a template kind (expected one of: %s)",
					kind, strings.Join(template.Kinds(), ", ")))
		}
	}

	for _, m := range r.ApacheModules {
		if !moduleToken.MatchString(m) {
			return nil, errors.InvalidToken("apache_modules",
				fmt.Sprintf("%q does not look like a list of whitespace-separated Apache modules (names must match [a-z_]+)", m))
		}
	}

	cfg := &Config{
		Package:        r.Package,
		Maintainer:     r.Maintainer,
		WebServer:      r.WebServer,
		StarmanPort:    string(*r.StarmanPort),
		StarmanWorkers: "5",
		PsgiScript:     fmt.Sprintf("script/%s.psgi", r.Package),
		StartupTime:    30,
		UID:            r.UID,
		ApacheModules:  append([]string(nil), r.ApacheModules...),
		Templates:      r.Templates,
	}
	if r.StarmanWorkers != nil {
		cfg.StarmanWorkers = string(*r.StarmanWorkers)
	}
	if r.PsgiScript != "" {
		cfg.PsgiScript = r.PsgiScript
	}
	if r.StartupTime != nil {
		cfg.StartupTime = *r.StartupTime
	}
	if cfg.Maintainer == "" {
		cfg.Maintainer = fmt.Sprintf("%s packagers <packages@%s.invalid>", r.Package, r.Package)
	}
	if cfg.Templates == nil {
		cfg.Templates = make(map[string]string)
	}
	return cfg, nil
}
