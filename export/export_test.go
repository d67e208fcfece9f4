package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"veneer/config"
	"veneer/state"
)

const themeContainer = `{
  "styles": {
    "base": {
      "background_color": "#102030",
      "padding": "4px"
    },
    "accent": {
      "color": "red"
    }
  },
  "templates": {
    "main": {
      "content": "<panel id=\"root\" styleset=\"#styles/base\"><label>Hello</label></panel>"
    },
    "toolbar": {
      "content": "<row gap=\"2px\"/>"
    }
  }
}`

// setupTestEnv creates a test environment with proper context and logger
func setupTestEnv(t *testing.T) (context.Context, *state.LocalEnv) {
	t.Helper()
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.Assets.Root = t.TempDir()
	cfg.Export.OutputDir = t.TempDir()
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = logger
	env.Cfg = cfg
	return ctx, env
}

func writeContainer(t *testing.T, root, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0644); err != nil {
		t.Fatalf("write container: %v", err)
	}
}

func TestExportTemplates(t *testing.T) {
	ctx, env := setupTestEnv(t)
	writeContainer(t, env.Cfg.Assets.Root, "theme.veneer.json", themeContainer)

	docs, srv, err := loadAll(ctx, env, []string{"theme.veneer.json"})
	if err != nil {
		t.Fatalf("loadAll() error = %v", err)
	}
	defer srv.Close()

	n, err := exportTemplates(env, docs)
	if err != nil {
		t.Fatalf("exportTemplates() error = %v", err)
	}
	if n != 2 {
		t.Errorf("exported %d templates, want 2", n)
	}

	data, err := os.ReadFile(filepath.Join(env.Cfg.Export.OutputDir, "theme-main.xml"))
	if err != nil {
		t.Fatalf("exported file missing: %v", err)
	}
	markup := string(data)
	if !strings.Contains(markup, "<panel") || !strings.Contains(markup, "Hello") {
		t.Errorf("unexpected markup:\n%s", markup)
	}
	if !strings.Contains(markup, `styleset="#styles/base"`) {
		t.Errorf("styleset reference not preserved:\n%s", markup)
	}

	// second run must refuse to clobber existing output
	if _, err := exportTemplates(env, docs); err == nil {
		t.Fatal("expected error when destination exists and overwrite is off")
	}
	env.Overwrite = true
	if _, err := exportTemplates(env, docs); err != nil {
		t.Errorf("exportTemplates() with overwrite error = %v", err)
	}
}

func TestDumpDocuments(t *testing.T) {
	ctx, env := setupTestEnv(t)
	writeContainer(t, env.Cfg.Assets.Root, "theme.veneer.json", themeContainer)

	docs, srv, err := loadAll(ctx, env, []string{"theme.veneer.json"})
	if err != nil {
		t.Fatalf("loadAll() error = %v", err)
	}
	defer srv.Close()

	var buf bytes.Buffer
	dumpDocuments(&buf, docs)
	out := buf.String()

	for _, want := range []string{
		"document theme.veneer.json",
		`style "accent"`,
		`style "base"`,
		"background-color:",
		`template "main"`,
		"<panel> id=root",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
	// styles are listed in natural name order
	if strings.Index(out, `"accent"`) > strings.Index(out, `"base"`) {
		t.Errorf("styles not sorted by name:\n%s", out)
	}
}

func TestLoadAllMissingDocument(t *testing.T) {
	ctx, env := setupTestEnv(t)

	_, srv, err := loadAll(ctx, env, []string{"absent.veneer.json"})
	defer srv.Close()
	if err == nil {
		t.Fatal("expected error for missing container")
	}
}

func TestExportFileName(t *testing.T) {
	tests := []struct {
		doc, tmpl string
		translit  bool
		want      string
	}{
		{"theme.veneer.json", "main", true, "theme-main.xml"},
		{"ui/widgets.veneer.json", "button", true, "widgets-button.xml"},
		{"Тема.veneer.json", "main", true, "tema-main.xml"},
		{"Тема.veneer.json", "main", false, "Тема-main.xml"},
		{"theme.veneer.json", "nav/bar", false, "theme-nav-bar.xml"},
	}
	for _, tt := range tests {
		if got := exportFileName(tt.doc, tt.tmpl, tt.translit); got != tt.want {
			t.Errorf("exportFileName(%q, %q, %v) = %q, want %q", tt.doc, tt.tmpl, tt.translit, got, tt.want)
		}
	}
}
