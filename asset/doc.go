// Package asset loads and tracks files referenced from style and template
// documents. A Server owns the backing filesystem and hands out shared
// handles; references inside documents stay relative until a load context
// anchors them to the document's own path.
package asset
