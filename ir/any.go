package ir

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
)

// FromAny converts a decoded JSON or YAML value into a node tree. Object
// keys are ordered lexically so that conversion is deterministic regardless
// of map iteration order.
func FromAny(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case int:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case uint64:
		if t > uint64(1)<<63-1 {
			n := &Node{Type: NumberType, Number: strconv.FormatUint(t, 10)}
			return n, nil
		}
		return FromInt(int64(t)), nil
	case float64:
		return FromFloat(t), nil
	case json.Number:
		return fromNumber(t), nil
	case []any:
		vals := make([]*Node, len(t))
		for i, elt := range t {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return FromSlice(vals), nil
	case map[string]any:
		res := make(map[string]*Node, len(t))
		for k, elt := range t {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			res[k] = n
		}
		return FromMap(res), nil
	case map[any]any:
		res := make(map[string]*Node, len(t))
		for k, elt := range t {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			res[fmt.Sprint(k)] = n
		}
		return FromMap(res), nil
	case *Node:
		return t.Clone(), nil
	default:
		return nil, fmt.Errorf("cannot represent %T", v)
	}
}

func fromNumber(num json.Number) *Node {
	res := &Node{Type: NumberType, Number: num.String()}
	if i, err := num.Int64(); err == nil {
		res.Int64 = &i
		return res
	}
	if f, err := num.Float64(); err == nil {
		res.Float64 = &f
	}
	return res
}

// ToAny converts a node tree to plain Go values, the inverse of FromAny.
// Objects become map[string]any with no defined order; callers that need
// deterministic order should walk Fields directly.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return json.Number(node.Number)
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// MarshalJSON renders node as compact JSON with lexically ordered keys.
func MarshalJSON(node *Node) ([]byte, error) {
	return json.Marshal(toOrderedJSON(node))
}

// toOrderedJSON wraps objects so that json.Marshal emits keys in Fields
// order rather than map order.
func toOrderedJSON(node *Node) any {
	switch node.Type {
	case ObjectType:
		return orderedObject{node}
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = toOrderedJSON(elt)
		}
		return res
	default:
		return ToAny(node)
	}
}

type orderedObject struct {
	node *Node
}

func (o orderedObject) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i := range o.node.Fields {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(o.node.Fields[i].String)
		if err != nil {
			return nil, err
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		val, err := json.Marshal(toOrderedJSON(o.node.Values[i]))
		if err != nil {
			return nil, err
		}
		buf = append(buf, val...)
	}
	return append(buf, '}'), nil
}

// Keys returns the field names of an object node in field order.
func Keys(node *Node) []string {
	if node == nil || node.Type != ObjectType {
		return nil
	}
	res := make([]string, len(node.Fields))
	for i, f := range node.Fields {
		res[i] = f.String
	}
	return res
}

// SortedKeys returns the field names of an object node in lexical order.
func SortedKeys(node *Node) []string {
	res := Keys(node)
	slices.Sort(res)
	return res
}
