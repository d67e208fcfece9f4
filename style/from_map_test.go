package style_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"veneer/asset"
	"veneer/style"
)

func TestStyleFromMembers(t *testing.T) {
	members := []style.Member{
		{Key: "display", Value: style.IdentExpr("grid")},
		{Key: "width", Value: style.NumberExpr(120)},
		{Key: "margin", Value: style.ListExpr(style.NumberExpr(1), style.NumberExpr(2))},
		{Key: "background_color", Value: style.ColorExpr(style.RGBA(0, 0, 1, 1))},
		{Key: "z_index", Value: style.NumberExpr(7)},
		{Key: "grid_row", Value: style.StringExpr("1/span 2")},
	}
	s, err := style.StyleFromMembers(members, nil)
	if err != nil {
		t.Fatalf("StyleFromMembers: %v", err)
	}
	if s.Len() != len(members) {
		t.Fatalf("len = %d, want %d", s.Len(), len(members))
	}

	c := style.Cascade(style.EvalContext{}, s)
	if c.Layout.Display != style.DisplayGrid {
		t.Errorf("display = %v", c.Layout.Display)
	}
	if c.Layout.Width != style.Px(120) {
		t.Errorf("width = %v, bare numbers must mean pixels", c.Layout.Width)
	}
	want := style.Rect{Top: style.Px(1), Right: style.Px(2), Bottom: style.Px(1), Left: style.Px(2)}
	if c.Layout.Margin != want {
		t.Errorf("margin = %v, want %v", c.Layout.Margin, want)
	}
	if c.ZIndex == nil || *c.ZIndex != 7 {
		t.Errorf("z-index = %v", c.ZIndex)
	}
	if c.Layout.GridRow.Start != 1 || c.Layout.GridRow.Span != 2 {
		t.Errorf("grid row = %+v", c.Layout.GridRow)
	}
}

func TestStyleFromMembersUnknownKey(t *testing.T) {
	_, err := style.StyleFromMembers([]style.Member{
		{Key: "widht", Value: style.NumberExpr(10)},
	}, nil)
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "widht") {
		t.Errorf("error %q should name the offending key", err)
	}
}

func TestStyleFromMembersMistypedValueDefers(t *testing.T) {
	// A value that cannot serve its property still loads; it is skipped
	// when the style is applied, and the rest of the style stays usable.
	s, err := style.StyleFromMembers([]style.Member{
		{Key: "color", Value: style.IdentExpr("red")},
		{Key: "width", Value: style.NumberExpr(40)},
	}, nil)
	if err != nil {
		t.Fatalf("StyleFromMembers: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("len = %d, want both members stored", s.Len())
	}

	c := style.Cascade(style.EvalContext{}, s)
	if c.Color != nil {
		t.Errorf("color = %v, an unusable value must skip at cascade time", *c.Color)
	}
	if c.Layout.Width != style.Px(40) {
		t.Errorf("width = %v, later members must still apply", c.Layout.Width)
	}
}

func TestStyleFromMembersImage(t *testing.T) {
	fsys := fstest.MapFS{
		"ui/icons/check.png": &fstest.MapFile{Data: []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}},
	}
	srv := asset.NewServer(fsys, nil)
	defer srv.Close()

	lc := asset.NewLoadContext(srv, asset.ParsePath("ui/panel.veneer.json"))
	s, err := style.StyleFromMembers([]style.Member{
		{Key: "background_image", Value: style.StringExpr("icons/check.png")},
	}, lc)
	if err != nil {
		t.Fatalf("StyleFromMembers: %v", err)
	}

	a, ok := s.Get(style.PropBackgroundImage)
	if !ok {
		t.Fatal("background image attribute missing")
	}
	if a.Image == nil || !a.Image.Resolved() {
		t.Fatal("image must be resolved eagerly during structured load")
	}
	if got := a.Image.Path().Name; got != "ui/icons/check.png" {
		t.Errorf("image path = %q", got)
	}

	c := style.Cascade(style.EvalContext{}, s)
	if c.BackgroundImage == nil {
		t.Fatal("computed background image missing")
	}
}

func TestStyleFromMembersImageNone(t *testing.T) {
	for _, v := range []style.Expr{style.NullExpr(), style.IdentExpr("none")} {
		s, err := style.StyleFromMembers([]style.Member{
			{Key: "background_image", Value: v},
		}, nil)
		if err != nil {
			t.Fatalf("StyleFromMembers(%s): %v", v, err)
		}
		a, _ := s.Get(style.PropBackgroundImage)
		if a.Image != nil {
			t.Errorf("image for %s should be absent", v)
		}
	}
}
