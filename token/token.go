// Package token classifies nodes of a design token document and owns the
// reserved metadata keys.
//
// A document is a tree of groups and tokens. The two are distinguished by
// shape alone: an object carrying a $value or $ref key is a token, any
// other object is a group. Arrays and scalars are neither; they occur only
// inside composite token values.
package token

import (
	"strings"

	"github.com/dtcg-format/go-dtcg/ir"
)

// Reserved metadata keys. Any "$"-prefixed key is reserved; these are the
// ones this module gives meaning to.
const (
	KeyValue       = "$value"
	KeyType        = "$type"
	KeyRef         = "$ref"
	KeyDescription = "$description"
	KeyExtensions  = "$extensions"
	KeyDeprecated  = "$deprecated"
	KeyExtends     = "$extends"
)

// IsReserved reports whether key is a reserved metadata key rather than a
// group child name.
func IsReserved(key string) bool {
	return strings.HasPrefix(key, "$")
}

type Kind int

const (
	Other Kind = iota
	Group
	Token
)

func (k Kind) String() string {
	switch k {
	case Token:
		return "token"
	case Group:
		return "group"
	case Other:
		return "other"
	default:
		return "<unknown kind>"
	}
}

// Classify decides what n is. An object with a $value or $ref key is a
// Token, even when that value is empty or null. Any other object is a
// Group. Everything else, nil included, is Other.
func Classify(n *ir.Node) Kind {
	if n == nil || n.Type != ir.ObjectType {
		return Other
	}
	for _, f := range n.Fields {
		if f.String == KeyValue || f.String == KeyRef {
			return Token
		}
	}
	return Group
}

// Type returns n's own declared type, or "" when n carries none.
func Type(n *ir.Node) string {
	t := ir.Get(n, KeyType)
	if t == nil || t.Type != ir.StringType {
		return ""
	}
	return t.String
}
