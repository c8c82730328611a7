package resolver

import (
	"fmt"

	"github.com/dtcg-format/go-dtcg/ir"
	"github.com/dtcg-format/go-dtcg/ref"
)

// Document is a parsed resolver document.
type Document struct {
	Name        string
	Description string
	Sets        map[string]*Set
	// Modifiers carries the modifiers section verbatim. Its semantics
	// belong to downstream consumers.
	Modifiers *ir.Node
	Order     []OrderEntry
}

// Set is a named, ordered list of token sources.
type Set struct {
	Name    string
	Sources []Source
}

// Source is one entry of a set's values list. Exactly one field is set.
type Source struct {
	// File names an external token document.
	File string
	// SetRef names another set this source splices in.
	SetRef string
	// Inline is a token document embedded directly in the source list.
	Inline *ir.Node
}

// OrderEntry is one entry of the resolution order list. Inline entries
// carry a name; indirect entries carry the raw reference they were
// written with.
type OrderEntry struct {
	Name string
	Ref  string
}

// Parse reads a resolver document from an IR node.
func Parse(node *ir.Node) (*Document, error) {
	if node == nil || node.Type != ir.ObjectType {
		return nil, fmt.Errorf("resolver document must be an object")
	}
	d := &Document{
		Sets: map[string]*Set{},
	}
	if nameNode := ir.Get(node, "name"); nameNode != nil {
		if nameNode.Type != ir.StringType {
			return nil, fmt.Errorf("name must be a string")
		}
		d.Name = nameNode.String
	}
	if descNode := ir.Get(node, "description"); descNode != nil {
		if descNode.Type != ir.StringType {
			return nil, fmt.Errorf("description must be a string")
		}
		d.Description = descNode.String
	}
	if setsNode := ir.Get(node, "sets"); setsNode != nil {
		if setsNode.Type != ir.ObjectType {
			return nil, fmt.Errorf("sets must be an object")
		}
		for i := range setsNode.Fields {
			name := setsNode.Fields[i].String
			set, err := parseSet(name, setsNode.Values[i])
			if err != nil {
				return nil, fmt.Errorf("set %q: %w", name, err)
			}
			d.Sets[name] = set
		}
	}
	if modsNode := ir.Get(node, "modifiers"); modsNode != nil {
		if modsNode.Type != ir.ObjectType {
			return nil, fmt.Errorf("modifiers must be an object")
		}
		d.Modifiers = modsNode.Clone()
	}
	if orderNode := ir.Get(node, "resolutionOrder"); orderNode != nil {
		if orderNode.Type != ir.ArrayType {
			return nil, fmt.Errorf("resolutionOrder must be an array")
		}
		d.Order = make([]OrderEntry, 0, len(orderNode.Values))
		for i, entryNode := range orderNode.Values {
			entry, err := parseOrderEntry(entryNode)
			if err != nil {
				return nil, fmt.Errorf("resolutionOrder entry %d: %w", i, err)
			}
			d.Order = append(d.Order, entry)
		}
	}
	return d, nil
}

func parseSet(name string, node *ir.Node) (*Set, error) {
	if node.Type != ir.ObjectType {
		return nil, fmt.Errorf("must be an object")
	}
	set := &Set{Name: name}
	valuesNode := ir.Get(node, "values")
	if valuesNode == nil {
		return nil, fmt.Errorf("missing values list")
	}
	if valuesNode.Type != ir.ArrayType {
		return nil, fmt.Errorf("values must be an array")
	}
	set.Sources = make([]Source, 0, len(valuesNode.Values))
	for i, srcNode := range valuesNode.Values {
		src, err := parseSource(srcNode)
		if err != nil {
			return nil, fmt.Errorf("values entry %d: %w", i, err)
		}
		set.Sources = append(set.Sources, src)
	}
	return set, nil
}

func parseSource(node *ir.Node) (Source, error) {
	switch node.Type {
	case ir.StringType:
		return Source{File: node.String}, nil
	case ir.ObjectType:
		refNode := ir.Get(node, "$ref")
		if refNode == nil {
			return Source{Inline: node.Clone()}, nil
		}
		if refNode.Type != ir.StringType {
			return Source{}, fmt.Errorf("$ref must be a string")
		}
		name, ok := setRefName(refNode.String)
		if !ok {
			return Source{}, fmt.Errorf("$ref %q does not reference a set", refNode.String)
		}
		return Source{SetRef: name}, nil
	default:
		return Source{}, fmt.Errorf("must be a string, object or reference, got %s", node.Type)
	}
}

func parseOrderEntry(node *ir.Node) (OrderEntry, error) {
	if node.Type != ir.ObjectType {
		return OrderEntry{}, fmt.Errorf("must be an object, got %s", node.Type)
	}
	if refNode := ir.Get(node, "$ref"); refNode != nil {
		if refNode.Type != ir.StringType {
			return OrderEntry{}, fmt.Errorf("$ref must be a string")
		}
		return OrderEntry{Ref: refNode.String}, nil
	}
	nameNode := ir.Get(node, "name")
	if nameNode == nil {
		return OrderEntry{}, fmt.Errorf("must carry a name or a $ref")
	}
	if nameNode.Type != ir.StringType {
		return OrderEntry{}, fmt.Errorf("name must be a string")
	}
	return OrderEntry{Name: nameNode.String}, nil
}

// setRefName extracts the set name from a pointer of the form
// #/sets/<name> or deeper.
func setRefName(raw string) (string, bool) {
	r, ok := ref.ParsePointer(raw)
	if !ok {
		return "", false
	}
	if len(r.Segments) < 2 || r.Segments[0] != "sets" {
		return "", false
	}
	return r.Segments[1], true
}
