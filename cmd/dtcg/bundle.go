package main

import (
	"fmt"
	"path/filepath"

	"github.com/dtcg-format/go-dtcg"
	"github.com/dtcg-format/go-dtcg/bundle"
	"github.com/dtcg-format/go-dtcg/encode"
	"github.com/dtcg-format/go-dtcg/resolver"

	"github.com/scott-cotton/cli"
)

func dtcgBundle(cfg *BundleConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Bundle.Parse(cc, args)
	if err != nil {
		cfg.Bundle.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: bundle requires one argument, a resolver document", cli.ErrUsage)
	}
	arg := args[0]
	node, err := getObjFile(cc, arg, cfg.MainConfig)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", arg, err)
	}
	rd, err := resolver.Parse(node)
	if err != nil {
		return fmt.Errorf("%s: %w", arg, err)
	}
	dir := "."
	if arg != "-" {
		dir = filepath.Dir(arg)
	}
	res, err := bundle.Compose(rd, bundle.FileSource{Dir: dir})
	if err != nil {
		return fmt.Errorf("error composing %s: %w", arg, err)
	}
	if !cfg.NoResolve {
		res, err = dtcg.DefaultTool().Run(res)
		if err != nil {
			return fmt.Errorf("error resolving %s: %w", arg, err)
		}
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
