package token

import "github.com/dtcg-format/go-dtcg/ir"

// InheritedType walks the proper ancestors of the node at segs, nearest
// first, and returns the first declared $type found, or "". The node at
// segs itself is not consulted; the document root is.
func InheritedType(root *ir.Node, segs []string) string {
	for i := len(segs) - 1; i >= 0; i-- {
		n := ir.Descend(root, segs[:i])
		if n == nil || n.Type != ir.ObjectType {
			continue
		}
		if t := Type(n); t != "" {
			return t
		}
	}
	return ""
}
