package parse

import (
	"os"

	"github.com/dtcg-format/go-dtcg/format"
	"github.com/dtcg-format/go-dtcg/ir"
)

// File reads and parses the document at path, guessing the format from the
// file name unless an explicit ParseFormat option overrides it.
func File(path string, opts ...ParseOption) (*Result, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := format.Sniff(path)
	if err != nil {
		f = format.JSONFormat
	}
	all := append([]ParseOption{ParseFormat(f), ParsePath(path)}, opts...)
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, fo := range all {
		fo(pOpts)
	}
	node, err := Parse(d, all...)
	if err != nil {
		return nil, err
	}
	return &Result{Node: node, Format: pOpts.format, Path: path}, nil
}

// Result carries a parsed document together with where and how it was read,
// so callers can re-encode in the same format.
type Result struct {
	Node   *ir.Node
	Format format.Format
	Path   string
}
