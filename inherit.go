package dtcg

import (
	"fmt"

	"github.com/dtcg-format/go-dtcg/debug"
	"github.com/dtcg-format/go-dtcg/ir"
	"github.com/dtcg-format/go-dtcg/token"
)

// PropagateTypes returns a copy of doc in which every token carries an
// explicit $type. Tokens without one adopt the type of the nearest
// ancestor group that declares one. A token with no declared and no
// inherited type is an error. doc is not modified.
func PropagateTypes(doc *ir.Node) (*ir.Node, error) {
	if doc == nil || doc.Type != ir.ObjectType {
		return nil, fmt.Errorf("document root must be an object")
	}
	if debug.Inherit() {
		debug.Logf("propagate types %s\n", debug.Doc{Node: doc})
	}
	return propagate(doc, nil, "")
}

func propagate(n *ir.Node, path []string, inherited string) (*ir.Node, error) {
	switch token.Classify(n) {
	case token.Token:
		res := make(map[string]*ir.Node, len(n.Fields)+1)
		for i, f := range n.Fields {
			res[f.String] = n.Values[i].Clone()
		}
		if res[token.KeyType] == nil {
			if inherited == "" {
				return nil, fmt.Errorf("token %s %w", pathString(path), ErrMissingType)
			}
			res[token.KeyType] = ir.FromString(inherited)
		}
		return ir.FromMap(res), nil
	case token.Group:
		if own := token.Type(n); own != "" {
			inherited = own
		}
		res := make(map[string]*ir.Node, len(n.Fields))
		for i, f := range n.Fields {
			key, v := f.String, n.Values[i]
			if token.IsReserved(key) {
				res[key] = v.Clone()
				continue
			}
			child, err := propagate(v, append(path, key), inherited)
			if err != nil {
				return nil, err
			}
			res[key] = child
		}
		return ir.FromMap(res), nil
	default:
		return n.Clone(), nil
	}
}
