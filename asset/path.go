package asset

import (
	"path"
	"strings"
)

// Path identifies an asset: a slash separated file name plus an optional
// label naming a sub-asset published by the file's loader.
type Path struct {
	Name  string
	Label string
}

// ParsePath splits "name#label" into its parts. A missing '#' yields an
// empty label.
func ParsePath(s string) Path {
	name, label, _ := strings.Cut(s, "#")
	return Path{Name: name, Label: label}
}

func (p Path) String() string {
	if p.Label == "" {
		return p.Name
	}
	return p.Name + "#" + p.Label
}

// WithLabel returns the same file with a different label.
func (p Path) WithLabel(label string) Path {
	return Path{Name: p.Name, Label: label}
}

// Resolve anchors a relative reference to this path. Three forms are
// accepted: "#label" addresses a sub-asset of the same file, a leading '/'
// addresses a file from the asset root, anything else is joined to this
// file's directory.
func (p Path) Resolve(rel string) Path {
	if strings.HasPrefix(rel, "#") {
		return Path{Name: p.Name, Label: rel[1:]}
	}
	name, label, _ := strings.Cut(rel, "#")
	if strings.HasPrefix(name, "/") {
		return Path{Name: path.Clean(name[1:]), Label: label}
	}
	return Path{Name: path.Join(path.Dir(p.Name), name), Label: label}
}
