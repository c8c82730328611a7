// Package ir provides the intermediate representation (IR) for design token
// documents.
//
// # Overview
//
// The IR package defines the core data structures for representing token
// documents as a tree of nodes. All documents (whether parsed from JSON or
// YAML, created programmatically, or produced by the resolution passes) are
// represented as ir.Node trees.
//
// The IR is a simple recursive structure that is readily representable in
// JSON and YAML. It carries no position information from input documents,
// making it purely semantic: two parses of equivalent documents produce
// equal trees.
//
// # Node Structure
//
// A Node represents a single value in a document. Nodes can be:
//
//   - Atomic types: null, boolean, number, string
//   - Composite types: object (key-value pairs), array (ordered list)
//
// Each node maintains parent-child relationships, allowing navigation
// through the tree structure. The IR works as a recursive tagged union,
// where values are placed in fields depending on the node type.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64, float64, or lexical string)
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values)
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("#0066cc")
//	num := ir.FromFloat(0.4)
//	flag := ir.FromBool(true)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "$value": ir.FromString("#0066cc"),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(0),
//	    ir.FromFloat(0.4),
//	})
//
// # IR Structure Constraints
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i], so
// there are always the same number of fields as values. Fields are string
// typed and unique within an object. Constructors that accept maps order
// fields lexically, so every tree built through them has a deterministic
// field order.
//
// Number values are placed under:
//   - Int64: if it is an integer (64-bit signed)
//   - Float64: if it is a floating point number (64-bit IEEE float)
//   - Number: the lexical form, kept so encoding does not reformat numbers
//
// # Navigating Nodes
//
// Nodes maintain parent-child relationships:
//
//   - Parent: parent node (nil for root)
//   - ParentIndex: index in parent's array/object
//   - ParentField: field name if parent is object
//
// Use Get to read one field, Descend to follow a segment path from the
// root, and Path() to render a node's location for diagnostics:
//
//	blue := ir.Descend(doc, []string{"colors", "blue", "$value"})
//	loc := blue.Path() // "$.colors.blue.$value"
//
// # Comparison
//
// Nodes can be compared and tested for structural equality:
//
//	if ir.Equal(a, b) { ... }
//
// # Interoperability
//
// FromAny and ToAny convert between trees and the plain Go values produced
// by encoding/json and YAML unmarshalling; MarshalJSON renders a tree as
// compact JSON with field order preserved.
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes from
// multiple goroutines, you must synchronize access yourself or clone nodes
// for each goroutine.
//
// # Related Packages
//
//   - github.com/dtcg-format/go-dtcg/parse - Parses bytes into IR nodes
//   - github.com/dtcg-format/go-dtcg/encode - Encodes IR nodes to bytes
//   - github.com/dtcg-format/go-dtcg/token - Token/group classification over IR
package ir
