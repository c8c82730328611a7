package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dtcg-format/go-dtcg"
	"github.com/dtcg-format/go-dtcg/encode"
	"github.com/dtcg-format/go-dtcg/ir"
	"github.com/dtcg-format/go-dtcg/libdiff"
	"github.com/dtcg-format/go-dtcg/parse"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: patch requires a patch argument and files to apply it to", cli.ErrUsage)
	}
	if cfg.Reverse && !cfg.Diff {
		return fmt.Errorf("%w: -r only applies to diff documents, use -d", cli.ErrUsage)
	}
	pd, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	var diffDoc *ir.Node
	if cfg.Diff {
		diffDoc, err = parse.Parse(pd, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding patch: %w", err)
		}
		if cfg.Reverse {
			diffDoc, err = libdiff.Reverse(diffDoc)
			if err != nil {
				return fmt.Errorf("error reversing patch: %w", err)
			}
		}
	}
	for i, arg := range inputArgs(args[1:]) {
		doc, err := getObjFile(cc, arg, cfg.MainConfig)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		var res *ir.Node
		if cfg.Diff {
			res, err = dtcg.ApplyDiff(doc, diffDoc)
		} else {
			res, err = dtcg.ApplyPatch(doc, pd)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}

// getPatch reads the RFC 6902 patch argument, by default as a literal
// JSON string.
func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) ([]byte, error) {
	if cfg.String && cfg.File {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	if !cfg.File {
		return []byte(arg), nil
	}
	if arg == "-" {
		return io.ReadAll(cc.In)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("error reading patch: %w", err)
	}
	return d, nil
}
