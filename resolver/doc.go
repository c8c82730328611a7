// Package resolver parses and validates resolver documents, the
// companion document shape that names token sets and the order in which
// they compose.
//
// A resolver document maps set names to ordered source lists, carries an
// optional modifiers section, and lists the resolution order. Sources
// are file names, inline token objects, or pointer references to other
// named sets. Validation catches duplicate names in the resolution order
// and cycles in the set-reference graph; it never rewrites the document.
package resolver
