package parse

import (
	"fmt"

	"github.com/dtcg-format/go-dtcg/format"
)

type parseOpts struct {
	format format.Format
	path   string
}

func (o *parseOpts) wrap(err error) error {
	if o.path == "" {
		return err
	}
	return fmt.Errorf("parse %s: %w", o.path, err)
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParsePath names the document source in errors.
func ParsePath(p string) ParseOption {
	return func(o *parseOpts) { o.path = p }
}
