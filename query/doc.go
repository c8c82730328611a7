// Package query filters the tokens of a document with compiled
// expressions.
//
// A document is flattened to one entry per token, and an expression runs
// against each entry with the variables path, type, value, description
// and deprecated in scope. Expressions must produce a boolean.
//
//	entries, err := query.Select(doc, `type == "color" && !deprecated`)
//
// Queries see the document as given. Run them after [dtcg.Resolve] and
// [dtcg.PropagateTypes] to filter on effective values and types.
package query
