package style

import (
	"fmt"
	"math"
	"strconv"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Color is an RGBA color with components in the 0..1 range.
type Color struct {
	R, G, B, A float64
}

// RGBA builds a color from components in the 0..1 range.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// HSLA builds a color from hue (degrees), saturation, lightness and alpha
// (0..1 each except hue).
func HSLA(h, s, l, a float64) Color {
	h = math.Mod(math.Mod(h, 360)+360, 360)
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return Color{R: r + m, G: g + m, B: b + m, A: a}
}

// String renders the color in rgba() functional form.
func (c Color) String() string {
	return fmt.Sprintf("rgba(%s, %s, %s, %s)",
		formatNum(c.R), formatNum(c.G), formatNum(c.B), formatNum(c.A))
}

func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParseColor converts an attribute-string color into a Color. Supported
// forms: #rgb, #rgba, #rrggbb, #rrggbbaa hex literals, and the rgba() and
// hsla() functional forms with four numeric components.
func ParseColor(s string) (Color, error) {
	lex := css.NewLexer(parse.NewInputString(s))
	tt, data := lex.Next()
	switch tt {
	case css.HashToken:
		c, ok := parseHexColor(string(data[1:]))
		if !ok {
			return Color{}, invalidValue("color", s)
		}
		// Nothing may follow the hex literal.
		if nt, _ := lex.Next(); nt != css.ErrorToken {
			return Color{}, invalidValue("color", s)
		}
		return c, nil
	case css.FunctionToken:
		name := string(data[:len(data)-1]) // strip trailing "("
		args, ok := lexColorArgs(lex)
		if !ok || len(args) != 4 {
			return Color{}, invalidValue("color", s)
		}
		switch name {
		case "rgba":
			return RGBA(args[0], args[1], args[2], args[3]), nil
		case "hsla":
			return HSLA(args[0], args[1], args[2], args[3]), nil
		}
		return Color{}, invalidValue("color", s)
	default:
		return Color{}, invalidValue("color", s)
	}
}

// lexColorArgs collects the numeric arguments of a color function up to the
// closing parenthesis.
func lexColorArgs(lex *css.Lexer) ([]float64, bool) {
	var args []float64
	for {
		tt, data := lex.Next()
		switch tt {
		case css.NumberToken:
			f, err := strconv.ParseFloat(string(data), 64)
			if err != nil {
				return nil, false
			}
			args = append(args, f)
		case css.CommaToken, css.WhitespaceToken:
			// separators
		case css.RightParenthesisToken:
			// Only trailing garbage after ")" invalidates the value.
			if nt, _ := lex.Next(); nt != css.ErrorToken {
				return nil, false
			}
			return args, true
		default:
			return nil, false
		}
	}
}

func parseHexColor(hex string) (Color, bool) {
	conv := func(s string) (float64, bool) {
		n, err := strconv.ParseUint(s, 16, 16)
		if err != nil {
			return 0, false
		}
		if len(s) == 1 {
			return float64(n) / 15, true
		}
		return float64(n) / 255, true
	}
	var parts []string
	switch len(hex) {
	case 3:
		parts = []string{hex[0:1], hex[1:2], hex[2:3], "f"}
	case 4:
		parts = []string{hex[0:1], hex[1:2], hex[2:3], hex[3:4]}
	case 6:
		parts = []string{hex[0:2], hex[2:4], hex[4:6], "ff"}
	case 8:
		parts = []string{hex[0:2], hex[2:4], hex[4:6], hex[6:8]}
	default:
		return Color{}, false
	}
	var out [4]float64
	for i, p := range parts {
		f, ok := conv(p)
		if !ok {
			return Color{}, false
		}
		out[i] = f
	}
	return Color{R: out[0], G: out[1], B: out[2], A: out[3]}, true
}
