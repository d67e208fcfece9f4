package style_test

import (
	"errors"
	"testing"

	"veneer/style"
)

func mustParseAttr(t *testing.T, name, value string) style.StyleAttr {
	t.Helper()
	a, err := style.ParseAttr(name, value)
	if err != nil {
		t.Fatalf("ParseAttr(%q, %q): %v", name, value, err)
	}
	if a == nil {
		t.Fatalf("ParseAttr(%q, %q): attribute not recognized", name, value)
	}
	return *a
}

func TestParseAttrUnknownName(t *testing.T) {
	a, err := style.ParseAttr("onclick", "doit()")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != nil {
		t.Fatalf("expected nil attribute for foreign name, got %v", a.Prop)
	}
}

func TestParseAttrValues(t *testing.T) {
	tests := []struct {
		name  string
		value string
		prop  style.Prop
	}{
		{"width", "50%", style.PropWidth},
		{"margin", "1px 2px", style.PropMargin},
		{"background-color", "#ff0000", style.PropBackgroundColor},
		{"z-index", "-3", style.PropZIndex},
		{"display", "grid", style.PropDisplay},
		{"flex", "1 0 auto", style.PropFlex},
		{"flex-grow", "2.5", style.PropFlexGrow},
		{"gap", "4px 8px", style.PropGap},
		{"grid-row", "1/3", style.PropGridRow},
		{"grid-column", "2/span 4", style.PropGridColumn},
		{"grid-row-start", "-1", style.PropGridRowStart},
		{"grid-column-span", "3", style.PropGridColumnSpan},
		{"background-image", "icons.png", style.PropBackgroundImage},
		{"line-break", "word", style.PropLineBreak},
	}
	for _, tc := range tests {
		a := mustParseAttr(t, tc.name, tc.value)
		if a.Prop != tc.prop {
			t.Errorf("ParseAttr(%q) prop = %v, want %v", tc.name, a.Prop, tc.prop)
		}
	}
}

func TestParseAttrBadValues(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		unknown bool
	}{
		{"width", "fifty", false},
		{"z-index", "1.5", false},
		{"display", "inline", true},
		{"align-items", "middle", true},
		{"flex", "1 2 3 4", false},
		{"grid-row", "span", false},
		{"grid-column-span", "-2", false},
		{"background-color", "red", false},
	}
	for _, tc := range tests {
		_, err := style.ParseAttr(tc.name, tc.value)
		if err == nil {
			t.Errorf("ParseAttr(%q, %q): expected error", tc.name, tc.value)
			continue
		}
		var perr *style.ParseError
		if !errors.As(err, &perr) {
			t.Errorf("ParseAttr(%q, %q): error %T is not a *ParseError", tc.name, tc.value, err)
			continue
		}
		if perr.Unknown != tc.unknown {
			t.Errorf("ParseAttr(%q, %q): Unknown = %v, want %v", tc.name, tc.value, perr.Unknown, tc.unknown)
		}
	}
}

func TestParseGridPlacement(t *testing.T) {
	g, err := style.ParseGridPlacement("2/4")
	if err != nil {
		t.Fatalf("2/4: %v", err)
	}
	if g.Start != 2 || g.End != 4 || g.Span != 0 {
		t.Errorf("2/4 = %+v", g)
	}

	g, err = style.ParseGridPlacement("-1/span 3")
	if err != nil {
		t.Fatalf("-1/span 3: %v", err)
	}
	if g.Start != -1 || g.Span != 3 || g.End != 0 {
		t.Errorf("-1/span 3 = %+v", g)
	}

	for _, in := range []string{"", "1", "a/b", "1/span", "1/span -2", "1 / 2 / 3"} {
		if _, err := style.ParseGridPlacement(in); err == nil {
			t.Errorf("ParseGridPlacement(%q): expected error", in)
		}
	}
}
