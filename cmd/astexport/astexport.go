package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/scott-cotton/cli"

	"github.com/astlib/astexport/ast"
	"github.com/astlib/astexport/export"
	"github.com/astlib/astexport/fixture"
	"github.com/astlib/astexport/schema"
)

func astexportMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

type ExportConfig struct {
	*MainConfig
	Zstd bool `cli:"name=z aliases=zstd desc='compress output with zstd'"`

	Export *cli.Command
}

func runExport(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		return err
	}
	opts, err := cfg.exportOpts(cc)
	if err != nil {
		return err
	}
	out := io.Writer(cc.Out)
	if cfg.Zstd || strings.HasSuffix(cfg.Out, ".zst") {
		zw, err := zstd.NewWriter(out)
		if err != nil {
			return err
		}
		defer zw.Close()
		out = zw
	}
	if len(args) == 0 {
		return exportOne(out, os.Stdin, "stdin", opts)
	}
	for _, name := range args {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		err = exportOne(out, f, name, opts)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func exportOne(out io.Writer, in io.Reader, name string, opts []export.Option) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	root, err := fixture.Build(data)
	if err != nil {
		return err
	}
	e, err := export.New(out, opts...)
	if err != nil {
		return err
	}
	if err := e.Export(root); err != nil {
		return err
	}
	theLog.Debug("exported", "input", name)
	return nil
}

type SchemaConfig struct {
	*MainConfig

	Schema *cli.Command
}

func runSchema(cfg *SchemaConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Schema.Parse(cc, args)
	if err != nil {
		return err
	}
	var schemas []schema.FamilySchema
	if len(args) == 0 {
		schemas, err = schema.All()
		if err != nil {
			return err
		}
	} else {
		for _, a := range args {
			f, perr := ast.ParseFamily(a)
			if perr != nil {
				return fmt.Errorf("%w: %v", cli.ErrUsage, perr)
			}
			fs, serr := schema.Of(f)
			if serr != nil {
				return serr
			}
			schemas = append(schemas, fs)
		}
	}
	return schema.Render(cc.Out, schemas, cfg.colors(cc))
}
