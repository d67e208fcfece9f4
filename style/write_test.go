package style_test

import (
	"errors"
	"testing"

	"github.com/beevik/etree"
	"go.uber.org/multierr"

	"veneer/style"
)

func TestWriteXML(t *testing.T) {
	s := styleOf(t,
		[2]string{"width", "50%"},
		[2]string{"margin", "1px 2px 3px 4px"},
		[2]string{"background-color", "#ff0000"},
		[2]string{"display", "grid"},
		[2]string{"flex", "1 0 auto"},
		[2]string{"grid-row", "1/span 2"},
		[2]string{"z-index", "-1"},
	)
	el := etree.NewElement("node")
	if err := s.WriteXML(el); err != nil {
		t.Fatalf("WriteXML: %v", err)
	}

	tests := []struct{ attr, want string }{
		{"width", "50%"},
		{"margin", "1px 2px 3px 4px"},
		{"background-color", "rgba(1, 0, 0, 1)"},
		{"display", "grid"},
		{"flex", "1 0 auto"},
		{"grid-row", "1/span 2"},
		{"z-index", "-1"},
	}
	for _, tc := range tests {
		a := el.SelectAttr(tc.attr)
		if a == nil {
			t.Errorf("attribute %q missing", tc.attr)
			continue
		}
		if a.Value != tc.want {
			t.Errorf("attribute %q = %q, want %q", tc.attr, a.Value, tc.want)
		}
	}
}

func TestWriteXMLRoundTrip(t *testing.T) {
	s := styleOf(t,
		[2]string{"width", "50%"},
		[2]string{"padding", "1px 2px 3px 4px"},
		[2]string{"justify-content", "space-between"},
	)
	el := etree.NewElement("node")
	if err := s.WriteXML(el); err != nil {
		t.Fatalf("WriteXML: %v", err)
	}

	back := style.NewElementStyle()
	for _, a := range el.Attr {
		parsed, err := style.ParseAttr(a.Key, a.Value)
		if err != nil {
			t.Fatalf("ParseAttr(%q, %q): %v", a.Key, a.Value, err)
		}
		if parsed == nil {
			t.Fatalf("attribute %q did not parse back", a.Key)
		}
		back.Set(*parsed)
	}

	want := style.Cascade(style.EvalContext{}, s)
	got := style.Cascade(style.EvalContext{}, back)
	if got.Layout != want.Layout {
		t.Errorf("layout after round trip = %+v, want %+v", got.Layout, want.Layout)
	}
}

func TestWriteXMLUnsupported(t *testing.T) {
	nested := style.NewElementStyle(mustParseAttr(t, "width", "10px"))
	s := style.NewElementStyle(
		mustParseAttr(t, "height", "20px"),
		style.StyleAttr{Prop: style.PropWidth, Value: style.StyleExpr(nested)},
		style.StyleAttr{Prop: style.PropColor, Value: style.IdentExpr("bogus")},
	)

	el := etree.NewElement("node")
	err := s.WriteXML(el)
	if err == nil {
		t.Fatal("expected unsupported attribute errors")
	}
	if !errors.Is(err, style.ErrUnsupportedAttr) {
		t.Fatalf("error %v should unwrap to ErrUnsupportedAttr", err)
	}
	if n := len(multierr.Errors(err)); n != 2 {
		t.Errorf("got %d errors, want one per unsupported attribute", n)
	}

	// Supported attributes must still be written.
	if a := el.SelectAttr("height"); a == nil || a.Value != "20px" {
		t.Error("supported attribute lost when another fails")
	}
	if el.SelectAttr("width") != nil {
		t.Error("unsupported attribute must not be written")
	}
}
