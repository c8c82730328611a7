package main

import (
	"fmt"

	"github.com/dtcg-format/go-dtcg"
	"github.com/dtcg-format/go-dtcg/encode"
	"github.com/dtcg-format/go-dtcg/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cc, args[0], cfg.MainConfig)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, args[1], cfg.MainConfig)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	d := dtcg.Diff(a, b)
	if d == nil {
		return nil
	}
	if cfg.Reverse {
		rev, err := libdiff.Reverse(d)
		if err != nil {
			return fmt.Errorf("error reversing: %w", err)
		}
		d = rev
	}
	if err := encode.Encode(d, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
