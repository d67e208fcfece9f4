package template_test

import (
	"testing"
	"testing/fstest"

	"veneer/asset"
	"veneer/template"
)

func newTestStore(t *testing.T, files map[string][]byte) *asset.Server {
	t.Helper()
	fsys := fstest.MapFS{}
	for name, data := range files {
		fsys[name] = &fstest.MapFile{Data: data}
	}
	srv := asset.NewServer(fsys, nil)
	t.Cleanup(func() { _ = srv.Close() })
	return srv
}

func TestResolve(t *testing.T) {
	markup := `
<panel styleset="#styles/base theme.veneer.json#styles/panel" background-image="images/bg.png">
  <label>Hello</label>
  <call template="#templates/button" label="OK"/>
</panel>`

	srv := newTestStore(t, map[string][]byte{
		"ui/theme.veneer.json": []byte("{}"),
		"ui/panel.veneer.json": []byte("{}"),
		"ui/images/bg.png":     {0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a},
	})
	lc := asset.NewLoadContext(srv, asset.ParsePath("ui/panel.veneer.json"))

	n, err := template.ParseXML([]byte(markup), nil)
	if err != nil {
		t.Fatalf("ParseXML: %v", err)
	}
	resolved, err := template.Resolve(n, lc)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	orig := n.(*template.Element)
	root := resolved.(*template.Element)
	if root == orig {
		t.Fatal("resolution must not return the input element")
	}
	if len(orig.StyleSetRefs) != 0 {
		t.Error("input tree must stay unresolved")
	}

	if len(root.StyleSetRefs) != 2 {
		t.Fatalf("styleset refs = %d", len(root.StyleSetRefs))
	}
	if got := root.StyleSetRefs[0].Path().String(); got != "ui/panel.veneer.json#styles/base" {
		t.Errorf("self reference resolved to %q", got)
	}
	if got := root.StyleSetRefs[1].Path().String(); got != "ui/theme.veneer.json#styles/panel" {
		t.Errorf("sibling reference resolved to %q", got)
	}

	// Text leaves are shared between the trees.
	origText := orig.Children[0].(*template.Element).Children[0].(*template.Text)
	newText := root.Children[0].(*template.Element).Children[0].(*template.Text)
	if origText != newText {
		t.Error("text leaves must be shared, not copied")
	}

	call := root.Children[1].(*template.Call)
	if call.TemplateRef == nil || !call.TemplateRef.Resolved() {
		t.Fatal("call template reference unresolved")
	}
	if got := call.TemplateRef.Path().String(); got != "ui/panel.veneer.json#templates/button" {
		t.Errorf("call resolved to %q", got)
	}
}

func TestResolveMissingAssetStillBinds(t *testing.T) {
	srv := newTestStore(t, nil)
	lc := asset.NewLoadContext(srv, asset.ParsePath("ui/panel.veneer.json"))

	n, err := template.ParseXML([]byte(`<panel background-image="missing.png"/>`), nil)
	if err != nil {
		t.Fatalf("ParseXML: %v", err)
	}

	// Loading is lazy: a handle is created even for a file that turns out
	// not to exist, and the failure surfaces on the handle itself.
	resolved, err := template.Resolve(n, lc)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	root := resolved.(*template.Element)
	if root.InlineStyle == nil {
		t.Fatal("inline style missing")
	}
}
