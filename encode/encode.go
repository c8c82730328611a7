package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/dtcg-format/go-dtcg/format"
	"github.com/dtcg-format/go-dtcg/ir"
)

type EncState struct {
	depth, indent int

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.Color == nil {
		es.Color = plainColor
	}
	if es.format.IsYAML() {
		return encodeYAML(node, w)
	}
	if err := encodeJSON(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func plainColor(_ ir.Type, _ ColorAttr, s string) string { return s }

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return writeString(w, es.Color(ir.NullType, ValueColor, "null"))
	case ir.BoolType:
		return writeString(w, es.Color(ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)))
	case ir.NumberType:
		return writeString(w, es.Color(ir.NumberType, ValueColor, lexicalNumber(node)))
	case ir.StringType:
		d, err := json.Marshal(node.String)
		if err != nil {
			return err
		}
		return writeString(w, es.Color(ir.StringType, ValueColor, string(d)))
	case ir.ArrayType:
		return encodeJSONArray(node, w, es)
	case ir.ObjectType:
		return encodeJSONObject(node, w, es)
	default:
		return fmt.Errorf("cannot encode node type %s", node.Type)
	}
}

func encodeJSONArray(node *ir.Node, w io.Writer, es *EncState) error {
	sep := func(s string) string { return es.Color(ir.ArrayType, SepColor, s) }
	if len(node.Values) == 0 {
		return writeString(w, sep("[]"))
	}
	if err := writeString(w, sep("[")); err != nil {
		return err
	}
	es.depth++
	for i, elt := range node.Values {
		if i > 0 {
			if err := writeString(w, sep(",")); err != nil {
				return err
			}
		}
		if err := writeBreak(w, es); err != nil {
			return err
		}
		if err := encodeJSON(elt, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeBreak(w, es); err != nil {
		return err
	}
	return writeString(w, sep("]"))
}

func encodeJSONObject(node *ir.Node, w io.Writer, es *EncState) error {
	sep := func(s string) string { return es.Color(ir.ObjectType, SepColor, s) }
	if len(node.Fields) == 0 {
		return writeString(w, sep("{}"))
	}
	if err := writeString(w, sep("{")); err != nil {
		return err
	}
	es.depth++
	for i := range node.Fields {
		if i > 0 {
			if err := writeString(w, sep(",")); err != nil {
				return err
			}
		}
		if err := writeBreak(w, es); err != nil {
			return err
		}
		key, err := json.Marshal(node.Fields[i].String)
		if err != nil {
			return err
		}
		if err := writeString(w, es.Color(ir.ObjectType, FieldColor, string(key))); err != nil {
			return err
		}
		if err := writeString(w, sep(":")); err != nil {
			return err
		}
		if es.indent > 0 {
			if err := writeString(w, " "); err != nil {
				return err
			}
		}
		if err := encodeJSON(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeBreak(w, es); err != nil {
		return err
	}
	return writeString(w, sep("}"))
}

// writeBreak writes a newline plus indentation, or nothing when encoding
// compactly.
func writeBreak(w io.Writer, es *EncState) error {
	if es.indent <= 0 {
		return nil
	}
	b := make([]byte, 1+es.depth*es.indent)
	b[0] = '\n'
	for i := 1; i < len(b); i++ {
		b[i] = ' '
	}
	_, err := w.Write(b)
	return err
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func lexicalNumber(node *ir.Node) string {
	if node.Number != "" {
		return node.Number
	}
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10)
	}
	if node.Float64 != nil {
		return strconv.FormatFloat(*node.Float64, 'g', -1, 64)
	}
	return "0"
}

func encodeYAML(node *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(toYAML(node))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// toYAML converts to values goccy marshals, keeping object field order via
// MapSlice.
func toYAML(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		ms := make(yaml.MapSlice, len(node.Fields))
		for i := range node.Fields {
			ms[i] = yaml.MapItem{
				Key:   node.Fields[i].String,
				Value: toYAML(node.Values[i]),
			}
		}
		return ms
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = toYAML(elt)
		}
		return res
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return node.Number
	default:
		return ir.ToAny(node)
	}
}
