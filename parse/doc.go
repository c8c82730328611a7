// Package parse parses JSON and YAML token documents into IR nodes.
//
// # Usage
//
//	// Parse a JSON token document
//	node, err := parse.Parse([]byte(`{"blue": {"$value": "#0066cc"}}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse YAML
//	node, err := parse.Parse(data, parse.ParseYAML())
//
//	// Parse a file, sniffing the format from its name
//	res, err := parse.File("theme.tokens.json")
//
// Numbers keep their lexical form, so encoding a parsed document does not
// reformat values such as "0.40".
//
// # Related Packages
//
//   - github.com/dtcg-format/go-dtcg/ir - IR representation
//   - github.com/dtcg-format/go-dtcg/encode - Encode IR to bytes
//   - github.com/dtcg-format/go-dtcg/format - Format names and sniffing
package parse
