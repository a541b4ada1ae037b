package output

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	// Disable color for tests
	color.NoColor = true
}

// captureStdout captures stdout during function execution
func captureStdout(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Also set color output to the same writer
	color.Output = w

	f()

	w.Close()
	os.Stdout = old
	color.Output = os.Stdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestJSON(t *testing.T) {
	data := map[string]interface{}{
		"package": "foo",
		"valid":   true,
	}

	out := captureStdout(func() {
		_ = JSON(data)
	})

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if result["package"] != "foo" {
		t.Errorf("expected package foo, got %v", result["package"])
	}
	if result["valid"] != true {
		t.Errorf("expected valid true, got %v", result["valid"])
	}
}

func TestTable(t *testing.T) {
	out := captureStdout(func() {
		Table(
			[]string{"VARIABLE", "VALUE"},
			[][]string{
				{"starman_port", "5000"},
				{"starman_workers", "5"},
			},
		)
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, separator, and 2 rows, got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "VARIABLE") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[2], "starman_port") || !strings.Contains(lines[2], "5000") {
		t.Errorf("unexpected row: %q", lines[2])
	}
}

func TestTableEmptyHeaders(t *testing.T) {
	out := captureStdout(func() {
		Table(nil, [][]string{{"ignored"}})
	})
	if out != "" {
		t.Errorf("expected no output for empty headers, got %q", out)
	}
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name   string
		fn     func(string, ...interface{})
		prefix string
	}{
		{"success", Success, "✓"},
		{"error", Error, "✗"},
		{"warn", Warn, "!"},
		{"info", Info, "→"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureStdout(func() {
				tt.fn("rendered %s", "control")
			})
			if !strings.HasPrefix(out, tt.prefix) {
				t.Errorf("expected prefix %q, got %q", tt.prefix, out)
			}
			if !strings.Contains(out, "rendered control") {
				t.Errorf("message missing: %q", out)
			}
		})
	}
}
