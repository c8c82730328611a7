package main

import (
	"fmt"

	"github.com/dtcg-format/go-dtcg"
	"github.com/dtcg-format/go-dtcg/encode"

	"github.com/scott-cotton/cli"
)

func resolve(cfg *ResolveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Resolve.Parse(cc, args)
	if err != nil {
		cfg.Resolve.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	tool := dtcg.DefaultTool()
	if cfg.NoTypes {
		tool.Types = false
	}
	for i, arg := range inputArgs(args) {
		doc, err := getObjFile(cc, arg, cfg.MainConfig)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		res, err := tool.Run(doc)
		if err != nil {
			return fmt.Errorf("error resolving %s: %w", arg, err)
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
