package dtcg

import (
	"github.com/dtcg-format/go-dtcg/ir"
)

// Tool bundles the preprocessing steps into one pipeline: patches are
// applied first, then references resolve, then types propagate. The zero
// value resolves references and nothing else.
type Tool struct {
	// Types controls whether type inheritance runs after resolution.
	Types bool
	// Patches holds RFC 6902 patch documents applied before resolution,
	// in order.
	Patches [][]byte
}

func DefaultTool() *Tool {
	return &Tool{Types: true}
}

func (t *Tool) Run(doc *ir.Node) (*ir.Node, error) {
	cur := doc
	for _, p := range t.Patches {
		var err error
		cur, err = ApplyPatch(cur, p)
		if err != nil {
			return nil, err
		}
	}
	res, err := Resolve(cur)
	if err != nil {
		return nil, err
	}
	if !t.Types {
		return res, nil
	}
	return PropagateTypes(res)
}
