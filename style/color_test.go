package style_test

import (
	"math"
	"testing"

	"veneer/style"
)

func colorNear(a, b style.Color) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps &&
		math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps &&
		math.Abs(a.A-b.A) < eps
}

func TestParseColorHex(t *testing.T) {
	tests := []struct {
		in   string
		want style.Color
	}{
		{"#fff", style.RGBA(1, 1, 1, 1)},
		{"#000", style.RGBA(0, 0, 0, 1)},
		{"#f00f", style.RGBA(1, 0, 0, 1)},
		{"#0f08", style.RGBA(0, 1, 0, 8.0/15)},
		{"#ff0000", style.RGBA(1, 0, 0, 1)},
		{"#00ff0080", style.RGBA(0, 1, 0, 128.0/255)},
	}
	for _, tc := range tests {
		got, err := style.ParseColor(tc.in)
		if err != nil {
			t.Errorf("ParseColor(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if !colorNear(got, tc.want) {
			t.Errorf("ParseColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseColorFunctional(t *testing.T) {
	got, err := style.ParseColor("rgba(0.1, 0.2, 0.3, 0.4)")
	if err != nil {
		t.Fatalf("rgba: %v", err)
	}
	if !colorNear(got, style.RGBA(0.1, 0.2, 0.3, 0.4)) {
		t.Errorf("rgba = %v", got)
	}

	got, err = style.ParseColor("hsla(0, 1, 0.5, 1)")
	if err != nil {
		t.Fatalf("hsla: %v", err)
	}
	if !colorNear(got, style.RGBA(1, 0, 0, 1)) {
		t.Errorf("hsla(0,1,0.5,1) = %v, want pure red", got)
	}

	got, err = style.ParseColor("hsla(120, 1, 0.5, 1)")
	if err != nil {
		t.Fatalf("hsla: %v", err)
	}
	if !colorNear(got, style.RGBA(0, 1, 0, 1)) {
		t.Errorf("hsla(120,1,0.5,1) = %v, want pure green", got)
	}
}

func TestParseColorErrors(t *testing.T) {
	inputs := []string{
		"",
		"red",
		"#ff",
		"#fffff",
		"#gggggg",
		"rgb(1, 1, 1)",
		"rgba(1, 1, 1)",
		"rgba(1, 1, 1, 1, 1)",
		"rgba(1, 1, 1, 1) extra",
		"#fff extra",
	}
	for _, in := range inputs {
		if _, err := style.ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q): expected error", in)
		}
	}
}
