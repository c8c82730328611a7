// Package ref parses the two reference syntaxes a token document can use:
// curly-brace alias paths and root-relative pointers.
//
// Both syntaxes are parsed into one tagged Reference so resolution code
// dispatches on the kind once instead of re-testing string shape at every
// call site.
package ref

import "strings"

type Kind int

const (
	Alias Kind = iota
	Pointer
)

func (k Kind) String() string {
	switch k {
	case Alias:
		return "alias"
	case Pointer:
		return "pointer"
	default:
		return "<unknown kind>"
	}
}

// Reference is a parsed reference of either syntax.
type Reference struct {
	// Kind says which syntax Raw used.
	Kind Kind

	// Raw is the reference string exactly as written.
	Raw string

	// Segments is the path to the target, one key per element.
	Segments []string
}

// Dotted renders the target path with dot separators, the form used in
// visited sets and error messages.
func (r *Reference) Dotted() string {
	return strings.Join(r.Segments, ".")
}

func (r *Reference) String() string {
	return r.Raw
}

// ParseAlias parses a curly-brace alias reference.
// Examples:
//   - "{colors.blue}" -> Segments ["colors", "blue"]
//   - "{spacing}"     -> Segments ["spacing"]
//
// An alias is exactly "{" + dot-separated segments + "}" and must be longer
// than two characters, so "{}" is a plain string, not a reference.
func ParseAlias(s string) (*Reference, bool) {
	if len(s) <= 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return nil, false
	}
	return &Reference{
		Kind:     Alias,
		Raw:      s,
		Segments: strings.Split(s[1:len(s)-1], "."),
	}, true
}

// IsAlias reports whether s has the alias shape.
func IsAlias(s string) bool {
	_, ok := ParseAlias(s)
	return ok
}

// ParsePointer parses a root-relative pointer reference.
// Examples:
//   - "#/colors/blue/$value" -> Segments ["colors", "blue", "$value"]
//   - "#" or "#/"            -> Segments nil (the document root)
//   - "#/a~1b/c~0d"          -> Segments ["a/b", "c~d"]
//
// Within each segment "~1" decodes to "/" and then "~0" decodes to "~".
func ParsePointer(s string) (*Reference, bool) {
	if s == "" || s[0] != '#' {
		return nil, false
	}
	rest := s[1:]
	if rest == "" || rest == "/" {
		return &Reference{Kind: Pointer, Raw: s}, true
	}
	if rest[0] != '/' {
		return nil, false
	}
	parts := strings.Split(rest[1:], "/")
	segs := make([]string, len(parts))
	for i, p := range parts {
		p = strings.ReplaceAll(p, "~1", "/")
		p = strings.ReplaceAll(p, "~0", "~")
		segs[i] = p
	}
	return &Reference{Kind: Pointer, Raw: s, Segments: segs}, true
}

// IsPointer reports whether s has the pointer shape.
func IsPointer(s string) bool {
	_, ok := ParsePointer(s)
	return ok
}

// Parse parses either syntax, trying alias first. Group extension
// relations accept both forms, so they go through here.
func Parse(s string) (*Reference, bool) {
	if r, ok := ParseAlias(s); ok {
		return r, ok
	}
	return ParsePointer(s)
}
