package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dtcg-format/go-dtcg/format"
	"github.com/dtcg-format/go-dtcg/ir"
	"github.com/dtcg-format/go-dtcg/parse"

	"github.com/scott-cotton/cli"
)

// getObjFile parses the document at path, "-" meaning the command input.
// Unless an explicit format was given, real files sniff their format from
// the file name.
func getObjFile(cc *cli.Context, path string, cfg *MainConfig) (*ir.Node, error) {
	opts := cfg.parseOpts()
	if path == "-" {
		d, err := io.ReadAll(cc.In)
		if err != nil {
			return nil, fmt.Errorf("error reading %q: %w", path, err)
		}
		return parse.Parse(d, opts...)
	}
	if cfg.InFormat == nil && !cfg.J && !cfg.Y {
		if f, err := format.Sniff(path); err == nil {
			opts = append(opts, parse.ParseFormat(f))
		}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.Parse(d, append(opts, parse.ParsePath(path))...)
}

// inputArgs defaults to reading the command input when no files are named.
func inputArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
