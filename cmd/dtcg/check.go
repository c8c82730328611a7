package main

import (
	"fmt"

	"github.com/dtcg-format/go-dtcg"
	"github.com/dtcg-format/go-dtcg/resolver"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	tool := dtcg.DefaultTool()
	for _, arg := range inputArgs(args) {
		doc, err := getObjFile(cc, arg, cfg.MainConfig)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if cfg.Resolver {
			rd, err := resolver.Parse(doc)
			if err != nil {
				return fmt.Errorf("%s: %w", arg, err)
			}
			if err := rd.Validate(); err != nil {
				return fmt.Errorf("%s: %w", arg, err)
			}
		} else if _, err := tool.Run(doc); err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
		if cfg.Quiet {
			continue
		}
		name := arg
		if name == "-" {
			name = "stdin"
		}
		fmt.Fprintf(cc.Out, "%s: ok\n", name)
	}
	return nil
}
