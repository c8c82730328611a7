package query

import (
	"strings"

	"github.com/dtcg-format/go-dtcg/ir"
	"github.com/dtcg-format/go-dtcg/token"
)

// Entry is one token of a flattened document.
type Entry struct {
	// Path is the dotted group path of the token.
	Path string
	// Type is the declared $type, empty when the token has none.
	Type string
	// Value is the token's $value converted to plain Go values, nil for
	// tokens that carry an unresolved $ref instead.
	Value any
	// Description is the token's $description.
	Description string
	// Deprecated reports whether $deprecated is present and truthy. A
	// non-empty reason string counts as deprecated.
	Deprecated bool
	// Node is the token object itself.
	Node *ir.Node
}

// Flatten lists the tokens of doc in document order.
func Flatten(doc *ir.Node) []Entry {
	var res []Entry
	flatten(doc, nil, &res)
	return res
}

func flatten(n *ir.Node, path []string, res *[]Entry) {
	switch token.Classify(n) {
	case token.Token:
		e := Entry{
			Path: strings.Join(path, "."),
			Type: token.Type(n),
			Node: n,
		}
		if v := ir.Get(n, token.KeyValue); v != nil {
			e.Value = ir.ToAny(v)
		}
		if d := ir.Get(n, token.KeyDescription); d != nil && d.Type == ir.StringType {
			e.Description = d.String
		}
		if dep := ir.Get(n, token.KeyDeprecated); dep != nil {
			e.Deprecated = ir.Truth(dep)
		}
		*res = append(*res, e)
	case token.Group:
		for i, f := range n.Fields {
			if token.IsReserved(f.String) {
				continue
			}
			flatten(n.Values[i], append(path, f.String), res)
		}
	}
}
