package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}, &cli.Opt{
			Name:        "n",
			Aliases:     []string{"ndent"},
			Description: "spaces per indent level, 0 for compact output",
			Type:        cli.NamedFuncOpt(cfg.indentOpt, "(count)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "dtcg").
		WithSynopsis("dtcg [opts] command [opts]").
		WithDescription("dtcg is a tool for working with design token documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dtcgMain(cfg, cc, args)
		}).
		WithSubs(
			ResolveCommand(cfg),
			CheckCommand(cfg),
			BundleCommand(cfg),
			DiffCommand(cfg),
			QueryCommand(cfg),
			FmtCommand(cfg),
			PatchCommand(cfg))
}

func ResolveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ResolveConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("resolve").
		WithAliases("r", "re").
		WithOpts(opts...).
		WithSynopsis("resolve [-raw] [files]").
		WithDescription("resolve references and propagate types in token documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return resolve(cfg, cc, args)
		})
	cfg.Resolve = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("c", "ch").
		WithOpts(opts...).
		WithSynopsis("check [-resolver] [files]").
		WithDescription("check token or resolver documents without printing results").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func BundleCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BundleConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("bundle").
		WithAliases("b", "bu").
		WithOpts(opts...).
		WithSynopsis("bundle [-compose] <resolver-file>").
		WithDescription("compose token sets per a resolver document").
		WithRun(func(cc *cli.Context, args []string) error {
			return dtcgBundle(cfg, cc, args)
		})
	cfg.Bundle = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff a b").
		WithDescription("diff token documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("query").
		WithAliases("q", "qu").
		WithOpts(opts...).
		WithSynopsis("query -e <expr> [files]").
		WithDescription("select resolved tokens matching an expression").
		WithRun(func(cc *cli.Context, args []string) error {
			return dtcgQuery(cfg, cc, args)
		})
	cfg.Query = cmd
	return cmd
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("fmt").
		WithAliases("f").
		WithOpts(opts...).
		WithSynopsis("fmt [-w] [files]").
		WithDescription("reformat token documents with sorted keys").
		WithRun(func(cc *cli.Context, args []string) error {
			return dtcgFmt(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithOpts(opts...).
		WithSynopsis("patch [opts] <patch> [files]").
		WithDescription("apply JSON patches to token documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}
