// Package style implements the attribute model for declarative UI styling:
// sparse style attribute sets, the dynamic expression values they carry, and
// the cascading merge that resolves an ordered list of attribute sets into a
// single computed style.
//
// Two parse surfaces produce the same internal representation: the
// attribute-string surface (hyphenated markup attributes such as
// "flex-direction") and the structured-document surface (snake_case keys
// mapped to expression values). Both populate ElementStyle, which is merged
// field-by-field into Computed in attribute order, later writes winning.
package style
