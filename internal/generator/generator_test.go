package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eldridge/starman-dpkg/internal/config"
	"github.com/eldridge/starman-dpkg/internal/template"
)

func testConfig(webServer string) *config.Config {
	return &config.Config{
		Package:        "foo",
		Maintainer:     "Mike Eldridge <diz@example.com>",
		WebServer:      webServer,
		StarmanPort:    "5000",
		StarmanWorkers: "5",
		PsgiScript:     "script/foo.psgi",
		StartupTime:    30,
		Templates:      map[string]string{},
	}
}

func TestSeed(t *testing.T) {
	seed := New(testConfig(config.WebServerNginx)).Seed()

	if seed["package"] != "foo" {
		t.Errorf("expected package foo, got %q", seed["package"])
	}
	if seed["package_binary_depends"] != "${misc:Depends}, adduser" {
		t.Errorf("unexpected depends seed: %q", seed["package_binary_depends"])
	}
	for _, key := range []string{"uid", "webserver_config_link", "webserver_restart"} {
		if v, ok := seed[key]; !ok || v != "" {
			t.Errorf("expected %s seeded empty, got %q (present=%v)", key, v, ok)
		}
	}

	// Each call hands out a fresh map.
	seed["package"] = "mutated"
	if New(testConfig(config.WebServerNginx)).Seed()["package"] != "foo" {
		t.Error("Seed must return a fresh map per call")
	}
}

func TestRenderAll(t *testing.T) {
	files, err := New(testConfig(config.WebServerAll)).RenderAll()
	if err != nil {
		t.Fatalf("RenderAll failed: %v", err)
	}

	kinds := template.Kinds()
	if len(files) != len(kinds) {
		t.Fatalf("expected %d files, got %d", len(kinds), len(files))
	}
	for i, f := range files {
		if f.Kind != kinds[i] {
			t.Errorf("file %d: expected kind %s, got %s", i, kinds[i], f.Kind)
		}
		if f.Path != "" {
			t.Errorf("RenderAll must not set paths, got %q", f.Path)
		}
	}

	byKind := make(map[string]File, len(files))
	for _, f := range files {
		byKind[f.Kind] = f
	}

	control := byKind["control"].Content
	if !strings.Contains(control, "Depends: ${misc:Depends}, adduser, apache2, nginx") {
		t.Errorf("control should depend on both servers in apache-then-nginx order:\n%s", control)
	}

	postinst := byKind["postinst"].Content
	if !strings.Contains(postinst, "ln -s /etc/$PACKAGE/apache.conf") {
		t.Errorf("postinst missing apache config link:\n%s", postinst)
	}
	if !strings.Contains(postinst, "ln -s /etc/$PACKAGE/nginx.conf") {
		t.Errorf("postinst missing nginx config link:\n%s", postinst)
	}
	if !strings.Contains(postinst, "a2enmod proxy proxy_http rewrite") {
		t.Errorf("postinst missing a2enmod line:\n%s", postinst)
	}
}

func TestRenderAllModes(t *testing.T) {
	files, err := New(testConfig(config.WebServerNginx)).RenderAll()
	if err != nil {
		t.Fatalf("RenderAll failed: %v", err)
	}

	wantExec := map[string]bool{"init": true, "postinst": true, "postrm": true, "rules": true}
	for _, f := range files {
		want := os.FileMode(0644)
		if wantExec[f.Kind] {
			want = 0755
		}
		if f.Mode != want {
			t.Errorf("%s: expected mode %04o, got %04o", f.Kind, want, f.Mode)
		}
	}
}

func TestRenderAllOverride(t *testing.T) {
	dir := t.TempDir()
	override := filepath.Join(dir, "control.tmpl")
	if err := os.WriteFile(override, []byte("Package: {{.package}} (custom)\n"), 0644); err != nil {
		t.Fatalf("failed to write override: %v", err)
	}

	cfg := testConfig(config.WebServerNginx)
	cfg.Templates["control"] = override

	files, err := New(cfg).RenderAll()
	if err != nil {
		t.Fatalf("RenderAll failed: %v", err)
	}
	for _, f := range files {
		if f.Kind == "control" {
			if f.Content != "Package: foo (custom)\n" {
				t.Errorf("override not used: %q", f.Content)
			}
			return
		}
	}
	t.Fatal("control file not rendered")
}

func TestGenerate(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "debian")

	files, err := New(testConfig(config.WebServerApache)).Generate(outDir)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, f := range files {
		info, err := os.Stat(f.Path)
		if err != nil {
			t.Fatalf("missing output file %s: %v", f.Path, err)
		}
		if info.Mode().Perm() != f.Mode {
			t.Errorf("%s: expected mode %04o, got %04o", f.Kind, f.Mode, info.Mode().Perm())
		}

		data, err := os.ReadFile(f.Path)
		if err != nil {
			t.Fatalf("failed to read %s: %v", f.Path, err)
		}
		if string(data) != f.Content {
			t.Errorf("%s: written content differs from rendered content", f.Kind)
		}
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("failed to read output dir: %v", err)
	}
	if len(entries) != len(template.Kinds()) {
		t.Errorf("expected %d output files, got %d", len(template.Kinds()), len(entries))
	}
}

func TestGenerateFailsBeforeWriting(t *testing.T) {
	cfg := testConfig(config.WebServerNginx)
	cfg.Templates["control"] = filepath.Join(t.TempDir(), "missing.tmpl")

	outDir := filepath.Join(t.TempDir(), "debian")
	if _, err := New(cfg).Generate(outDir); err == nil {
		t.Fatal("expected error for missing override")
	}

	// Nothing may be written when any render fails.
	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Error("output directory should not exist after a failed render")
	}
}
