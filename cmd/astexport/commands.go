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
			Name:        "base",
			Description: "project root for the member filter and path relativization",
			Type:        cli.NamedFuncOpt(cfg.stringOpt(&cfg.Base), "(dirpath)"),
		},
		&cli.Opt{
			Name:        "filter",
			Description: "member filter expression over {file, base}",
			Type:        cli.NamedFuncOpt(cfg.stringOpt(&cfg.Filter), "(expr)"),
		},
		&cli.Opt{
			Name:        "depth",
			Description: "maximum traversal depth (0 = unlimited)",
			Type:        cli.NamedFuncOpt(cfg.intOpt(&cfg.MaxDepth), "(n)"),
		},
		&cli.Opt{
			Name:        "c",
			Aliases:     []string{"config"},
			Description: "YAML config file",
			Type:        cli.NamedFuncOpt(cfg.stringOpt(&cfg.CfgFile), "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "astexport").
		WithSynopsis("astexport [opts] command [opts]").
		WithDescription("astexport serializes syntax trees into their tagged-variant form.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return astexportMain(cfg, cc, args)
		}).
		WithSubs(
			ExportCommand(cfg),
			SchemaCommand(cfg))
}

func ExportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("export").
		WithAliases("e", "ex").
		WithSynopsis("export [opts] [files]").
		WithDescription("Export fixture-described trees (stdin when no files are given)").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runExport(cfg, cc, args)
		})
	cfg.Export = cmd
	return cmd
}

func SchemaCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SchemaConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("schema").
		WithAliases("s").
		WithSynopsis("schema [family]").
		WithDescription("Print the variant/arity contract, per family or in full").
		WithRun(func(cc *cli.Context, args []string) error {
			return runSchema(cfg, cc, args)
		})
	cfg.Schema = cmd
	return cmd
}
