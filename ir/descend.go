package ir

import "strconv"

// Descend walks segs in order from root and returns the node it lands on,
// or nil as soon as a segment is missing or the current node cannot contain
// children. Array nodes are indexable by decimal segments. Absence is not
// an error; callers decide whether nil is fatal.
func Descend(root *Node, segs []string) *Node {
	n := root
	for _, seg := range segs {
		if n == nil {
			return nil
		}
		switch n.Type {
		case ObjectType:
			n = Get(n, seg)
		case ArrayType:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(n.Values) {
				return nil
			}
			n = n.Values[i]
		default:
			return nil
		}
	}
	return n
}
