package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"

	"veneer/asset"
	"veneer/style"
	"veneer/template"
)

// identPattern matches a bare identifier literal, such as an enum value or
// the "auto" and "none" keywords.
var identPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ParseLiteral maps a JSON string onto the narrowest expression it can
// serve as: an identifier, a color, a length, or a plain string. Strings
// that name assets stay plain; the consuming property decides whether to
// treat them as paths.
func ParseLiteral(s string) style.Expr {
	if identPattern.MatchString(s) {
		return style.IdentExpr(s)
	}
	if c, err := style.ParseColor(s); err == nil {
		return style.ColorExpr(c)
	}
	if v, err := style.ParseVal(s); err == nil {
		return style.LengthExpr(v)
	}
	return style.StringExpr(s)
}

// decoded is a container after decoding and resolution, before publication.
type decoded struct {
	styles    []namedStyle
	templates []namedTemplate
}

type namedStyle struct {
	name  string
	style *style.ElementStyle
}

type namedTemplate struct {
	name string
	tmpl *template.Template
}

// decode reads a container, keeping definitions in document order so that
// publication and dumps stay deterministic.
func decode(data []byte, lc *asset.LoadContext) (*decoded, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("container: %w", err)
	}

	out := &decoded{}
	for dec.More() {
		key, err := stringToken(dec)
		if err != nil {
			return nil, err
		}
		switch key {
		case "styles":
			if err := decodeStyles(dec, lc, out); err != nil {
				return nil, err
			}
		case "templates":
			if err := decodeTemplates(dec, lc, out); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unknown container section %q", key)
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, fmt.Errorf("container: %w", err)
	}
	return out, nil
}

func decodeStyles(dec *json.Decoder, lc *asset.LoadContext, out *decoded) error {
	if err := expectDelim(dec, '{'); err != nil {
		return fmt.Errorf("styles: %w", err)
	}
	for dec.More() {
		name, err := stringToken(dec)
		if err != nil {
			return err
		}
		s, err := decodeStyle(dec, lc)
		if err != nil {
			return fmt.Errorf("style %q: %w", name, err)
		}
		out.styles = append(out.styles, namedStyle{name: name, style: s})
	}
	return expectDelim(dec, '}')
}

// decodeStyle reads one style definition object and builds the attribute
// set, resolving image references through lc as it goes.
func decodeStyle(dec *json.Decoder, lc *asset.LoadContext) (*style.ElementStyle, error) {
	members, err := decodeMembers(dec, lc)
	if err != nil {
		return nil, err
	}
	return style.StyleFromMembers(members, lc)
}

func decodeMembers(dec *json.Decoder, lc *asset.LoadContext) ([]style.Member, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	var members []style.Member
	for dec.More() {
		key, err := stringToken(dec)
		if err != nil {
			return nil, err
		}
		v, err := decodeExpr(dec, lc)
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", key, err)
		}
		members = append(members, style.Member{Key: key, Value: v})
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return members, nil
}

func decodeExpr(dec *json.Decoder, lc *asset.LoadContext) (style.Expr, error) {
	tok, err := dec.Token()
	if err != nil {
		return style.Expr{}, err
	}
	switch t := tok.(type) {
	case nil:
		return style.NullExpr(), nil
	case bool:
		if t {
			return style.IdentExpr("true"), nil
		}
		return style.IdentExpr("false"), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return style.Expr{}, fmt.Errorf("number %q: %w", t.String(), err)
		}
		return style.NumberExpr(f), nil
	case string:
		return ParseLiteral(t), nil
	case json.Delim:
		switch t {
		case '[':
			var items []style.Expr
			for dec.More() {
				item, err := decodeExpr(dec, lc)
				if err != nil {
					return style.Expr{}, err
				}
				items = append(items, item)
			}
			if err := expectDelim(dec, ']'); err != nil {
				return style.Expr{}, err
			}
			return style.ListExpr(items...), nil
		case '{':
			// A nested object is a nested style definition. The
			// opening brace was already consumed, so re-enter the
			// member loop directly.
			var members []style.Member
			for dec.More() {
				key, err := stringToken(dec)
				if err != nil {
					return style.Expr{}, err
				}
				v, err := decodeExpr(dec, lc)
				if err != nil {
					return style.Expr{}, fmt.Errorf("member %q: %w", key, err)
				}
				members = append(members, style.Member{Key: key, Value: v})
			}
			if err := expectDelim(dec, '}'); err != nil {
				return style.Expr{}, err
			}
			s, err := style.StyleFromMembers(members, lc)
			if err != nil {
				return style.Expr{}, err
			}
			return style.StyleExpr(s), nil
		}
	}
	return style.Expr{}, fmt.Errorf("unexpected token %v", tok)
}

func decodeTemplates(dec *json.Decoder, lc *asset.LoadContext, out *decoded) error {
	if err := expectDelim(dec, '{'); err != nil {
		return fmt.Errorf("templates: %w", err)
	}
	for dec.More() {
		name, err := stringToken(dec)
		if err != nil {
			return err
		}
		tmpl, err := decodeTemplate(dec)
		if err != nil {
			return fmt.Errorf("template %q: %w", name, err)
		}
		out.templates = append(out.templates, namedTemplate{name: name, tmpl: tmpl})
	}
	return expectDelim(dec, '}')
}

// decodeTemplate reads one template definition: an object with optional
// "params" (name to type) and "content" (markup text). The content is
// parsed here but resolved later, once the whole container is decoded.
func decodeTemplate(dec *json.Decoder) (*template.Template, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	tmpl := &template.Template{}
	for dec.More() {
		key, err := stringToken(dec)
		if err != nil {
			return nil, err
		}
		switch key {
		case "params":
			if err := expectDelim(dec, '{'); err != nil {
				return nil, fmt.Errorf("params: %w", err)
			}
			for dec.More() {
				name, err := stringToken(dec)
				if err != nil {
					return nil, err
				}
				typ, err := stringToken(dec)
				if err != nil {
					return nil, fmt.Errorf("param %q: %w", name, err)
				}
				tmpl.Params = append(tmpl.Params, template.ParamDecl{Name: name, Type: typ})
			}
			if err := expectDelim(dec, '}'); err != nil {
				return nil, err
			}
		case "content":
			markup, err := stringToken(dec)
			if err != nil {
				return nil, fmt.Errorf("content: %w", err)
			}
			content, err := template.ParseXML([]byte(markup), nil)
			if err != nil {
				return nil, fmt.Errorf("content: %w", err)
			}
			tmpl.Content = content
		default:
			return nil, fmt.Errorf("unknown template section %q", key)
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return tmpl, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func stringToken(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %v", tok)
	}
	return s, nil
}
