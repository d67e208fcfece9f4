// Package template models the node trees a user interface is instantiated
// from. Trees are written as XML fragments inside a document; the loader
// turns markup attributes into style attributes and the resolver anchors
// every asset reference the tree mentions.
package template
