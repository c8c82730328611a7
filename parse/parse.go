// Package parse provides token document parsing support.
package parse

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/dtcg-format/go-dtcg/format"
	"github.com/dtcg-format/go-dtcg/ir"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	switch pOpts.format {
	case format.YAMLFormat:
		return parseYAML(d, pOpts)
	default:
		return parseJSON(d, pOpts)
	}
}

func parseJSON(d []byte, opts *parseOpts) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, opts.wrap(err)
	}
	if dec.More() {
		return nil, opts.wrap(fmt.Errorf("trailing content after document"))
	}
	res, err := ir.FromAny(v)
	if err != nil {
		return nil, opts.wrap(err)
	}
	return res, nil
}

func parseYAML(d []byte, opts *parseOpts) (*ir.Node, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, opts.wrap(err)
	}
	res, err := ir.FromAny(v)
	if err != nil {
		return nil, opts.wrap(err)
	}
	return res, nil
}
