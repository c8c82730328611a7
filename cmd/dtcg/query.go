package main

import (
	"fmt"

	"github.com/dtcg-format/go-dtcg"
	"github.com/dtcg-format/go-dtcg/encode"
	"github.com/dtcg-format/go-dtcg/ir"
	"github.com/dtcg-format/go-dtcg/query"

	"github.com/scott-cotton/cli"
)

func dtcgQuery(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: query requires an expression, use -e", cli.ErrUsage)
	}
	q, err := query.Compile(cfg.Expr)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	tool := dtcg.DefaultTool()
	for _, arg := range inputArgs(args) {
		doc, err := getObjFile(cc, arg, cfg.MainConfig)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		res, err := tool.Run(doc)
		if err != nil {
			return fmt.Errorf("error resolving %s: %w", arg, err)
		}
		entries, err := q.Select(res)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", arg, err)
		}
		if cfg.Paths {
			for _, e := range entries {
				fmt.Fprintln(cc.Out, e.Path)
			}
			continue
		}
		byPath := map[string]*ir.Node{}
		for _, e := range entries {
			byPath[e.Path] = e.Node.Clone()
		}
		out := ir.FromMap(byPath)
		if err := encode.Encode(out, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
