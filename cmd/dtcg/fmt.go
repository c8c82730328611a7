package main

import (
	"fmt"
	"os"

	"github.com/dtcg-format/go-dtcg/encode"
	"github.com/dtcg-format/go-dtcg/parse"

	"github.com/scott-cotton/cli"
)

func dtcgFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Write {
		if len(args) == 0 {
			return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
		}
		for _, arg := range args {
			if err := fmtWrite(cfg, arg); err != nil {
				return fmt.Errorf("error formatting %s: %w", arg, err)
			}
		}
		return nil
	}
	for i, arg := range inputArgs(args) {
		doc, err := getObjFile(cc, arg, cfg.MainConfig)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		if err := encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}

// fmtWrite rewrites path in place, in its own format, never with colors.
func fmtWrite(cfg *FmtConfig, path string) error {
	res, err := parse.File(path)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	opts := []encode.EncodeOption{encode.EncodeFormat(res.Format)}
	if cfg.Indent != nil {
		opts = append(opts, encode.Indent(*cfg.Indent))
	}
	return encode.Encode(res.Node, f, opts...)
}
