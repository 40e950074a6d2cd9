package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/astlib/astexport/atd"
	"github.com/astlib/astexport/config"
	"github.com/astlib/astexport/export"
)

type MainConfig struct {
	Pointers bool `cli:"name=p aliases=pointers desc='emit raw address tokens instead of anonymized ids'"`
	Yojson   bool `cli:"name=y aliases=yojson desc='use the yojson framing dialect'"`
	Pretty   bool `cli:"name=pretty desc='indent output'"`
	Color    bool `cli:"name=color desc='colorize output'"`

	Base     string
	Filter   string
	MaxDepth int
	CfgFile  string

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) stringOpt(dst *string) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		*dst = v
		return v, nil
	})
}

func (cfg *MainConfig) intOpt(dst *int) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
		}
		*dst = n
		return n, nil
	})
}

// resolve folds the config file, the environment and the command line
// into one Config. Later sources win.
func (cfg *MainConfig) resolve() (*config.Config, error) {
	base := &config.Config{}
	if cfg.CfgFile != "" {
		fileCfg, err := config.Load(cfg.CfgFile)
		if err != nil {
			return nil, err
		}
		base = fileCfg
	}
	merged := base.Merge(config.FromEnv())
	return merged.Merge(&config.Config{
		WithPointers:        cfg.Pointers,
		UseAlternateFraming: cfg.Yojson,
		PrettyPrint:         cfg.Pretty,
		BasePath:            cfg.Base,
		Filter:              cfg.Filter,
		MaxDepth:            cfg.MaxDepth,
	}), nil
}

func (cfg *MainConfig) exportOpts(cc *cli.Context) ([]export.Option, error) {
	resolved, err := cfg.resolve()
	if err != nil {
		return nil, err
	}
	opts := resolved.Options()
	if colors := cfg.colors(cc); colors != nil {
		opts = append(opts, export.WithColors(colors))
	}
	return opts, nil
}

func (cfg *MainConfig) colors(cc *cli.Context) *atd.Colors {
	if cfg.Color {
		return atd.NewColors()
	}
	f, ok := cc.Out.(*os.File)
	if !ok {
		return nil
	}
	if cfg.Out != "" && cfg.Out != "-" {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return atd.NewColors()
	}
	return nil
}
