// Package encode encodes IR nodes to JSON or YAML text.
//
// # Usage
//
//	// Encode to indented JSON
//	node := ir.FromMap(map[string]*ir.Node{
//	    "$value": ir.FromString("#0066cc"),
//	    "$type":  ir.FromString("color"),
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// Encode compactly
//	err := encode.Encode(node, w, encode.Indent(0))
//
//	// Encode to YAML
//	err := encode.Encode(node, w, encode.EncodeFormat(format.YAMLFormat))
//
//	// Colorize terminal output
//	err := encode.Encode(node, w, encode.EncodeColors(encode.NewColors()))
//
// # Related Packages
//
//   - github.com/dtcg-format/go-dtcg/ir - IR representation
//   - github.com/dtcg-format/go-dtcg/parse - Parse bytes to IR
package encode
