// Package format names the serialization formats a token document can be
// read from and written to.
//
// # Usage
//
//	// Parse a format flag value
//	f, err := format.ParseFormat("yaml")
//
//	// Guess a format from a file name
//	f, err := format.Sniff("theme.tokens.json")
//
// # Related Packages
//
//   - github.com/dtcg-format/go-dtcg/parse - Parse bytes to IR
//   - github.com/dtcg-format/go-dtcg/encode - Encode IR to bytes
package format
