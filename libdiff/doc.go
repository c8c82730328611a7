// Package libdiff provides diff computation for token documents.
//
// # Usage
//
//	// Swap the direction of a diff
//	back, err := libdiff.Reverse(diff)
//
//	// Apply a diff
//	patched, err := libdiff.Apply(original, diff)
//
// Diffs are themselves IR documents. A change is an object carrying a
// "$op" field with value "insert", "delete" or "replace" and, as
// applicable, "$from" and "$to" fields holding the old and new values.
// Keys beginning with "$" never name tokens or groups, so change records
// cannot collide with document content.
//
// # Related Packages
//
//   - github.com/dtcg-format/go-dtcg/ir - IR representation
package libdiff
