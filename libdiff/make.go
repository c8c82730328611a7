package libdiff

import "github.com/dtcg-format/go-dtcg/ir"

const (
	OpKey   = "$op"
	FromKey = "$from"
	ToKey   = "$to"

	OpInsert  = "insert"
	OpDelete  = "delete"
	OpReplace = "replace"
)

// MakeDiff builds the change record for a value present only in from,
// only in to, or different between the two.
func MakeDiff(from, to *ir.Node) *ir.Node {
	switch {
	case from == nil:
		return ir.FromMap(map[string]*ir.Node{
			OpKey: ir.FromString(OpInsert),
			ToKey: to.Clone(),
		})
	case to == nil:
		return ir.FromMap(map[string]*ir.Node{
			OpKey:   ir.FromString(OpDelete),
			FromKey: from.Clone(),
		})
	default:
		return ir.FromMap(map[string]*ir.Node{
			OpKey:   ir.FromString(OpReplace),
			FromKey: from.Clone(),
			ToKey:   to.Clone(),
		})
	}
}

// IsChange reports whether node is a change record produced by MakeDiff.
func IsChange(node *ir.Node) bool {
	return node != nil && node.Type == ir.ObjectType && ir.Get(node, OpKey) != nil
}
