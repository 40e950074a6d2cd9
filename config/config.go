// Package config resolves export options from a YAML file and from the
// environment. Options are resolved once, before a run starts; the
// resulting Config is immutable by convention afterwards.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/astlib/astexport/atd"
	"github.com/astlib/astexport/export"
)

var ErrConfig = errors.New("config")

// Environment variables recognized by FromEnv. They predate the file
// format, so their names stay as consumers know them.
const (
	EnvWithPointers = "AST_WITH_POINTERS"
	EnvYojson       = "USE_YOJSON"
	EnvPretty       = "PRETTIFY_JSON"
)

type Config struct {
	WithPointers        bool   `yaml:"withPointers,omitempty"`
	UseAlternateFraming bool   `yaml:"useAlternateFraming,omitempty"`
	PrettyPrint         bool   `yaml:"prettyPrint,omitempty"`
	BasePath            string `yaml:"basePath,omitempty"`
	Filter              string `yaml:"filter,omitempty"`
	MaxDepth            int    `yaml:"maxDepth,omitempty"`
}

// Load reads a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return &c, nil
}

// FromEnv reads the recognized environment variables. Unset variables
// leave the corresponding fields at their zero values.
func FromEnv() *Config {
	return &Config{
		WithPointers:        boolEnv(EnvWithPointers),
		UseAlternateFraming: boolEnv(EnvYojson),
		PrettyPrint:         boolEnv(EnvPretty),
	}
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Merge overlays o on top of c: set booleans win, non-empty strings
// win, non-zero limits win. c is not modified.
func (c *Config) Merge(o *Config) *Config {
	out := *c
	if o == nil {
		return &out
	}
	out.WithPointers = out.WithPointers || o.WithPointers
	out.UseAlternateFraming = out.UseAlternateFraming || o.UseAlternateFraming
	out.PrettyPrint = out.PrettyPrint || o.PrettyPrint
	if o.BasePath != "" {
		out.BasePath = o.BasePath
	}
	if o.Filter != "" {
		out.Filter = o.Filter
	}
	if o.MaxDepth != 0 {
		out.MaxDepth = o.MaxDepth
	}
	return &out
}

// Options translates the config into exporter options.
func (c *Config) Options() []export.Option {
	opts := []export.Option{
		export.WithPointers(c.WithPointers),
		export.WithPretty(c.PrettyPrint),
	}
	if c.UseAlternateFraming {
		opts = append(opts, export.WithDialect(atd.Yojson))
	}
	if c.BasePath != "" {
		opts = append(opts, export.WithBasePath(c.BasePath))
	}
	if c.Filter != "" {
		opts = append(opts, export.WithFilter(c.Filter))
	}
	if c.MaxDepth != 0 {
		opts = append(opts, export.WithMaxDepth(c.MaxDepth))
	}
	return opts
}
