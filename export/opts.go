package export

import "github.com/astlib/astexport/atd"

type options struct {
	dialect      atd.Dialect
	withPointers bool
	pretty       bool
	colors       *atd.Colors
	basePath     string
	keep         func(file string) bool
	filterExpr   string
	maxDepth     int
}

type Option func(*options)

// WithPointers switches identity tokens to their raw process-address
// rendering. The default assigns sequential small integers, which keeps
// output stable across runs.
func WithPointers(v bool) Option {
	return func(o *options) { o.withPointers = v }
}

func WithDialect(d atd.Dialect) Option {
	return func(o *options) { o.dialect = d }
}

func WithPretty(v bool) Option {
	return func(o *options) { o.pretty = v }
}

func WithColors(c *atd.Colors) Option {
	return func(o *options) { o.colors = c }
}

// WithBasePath sets the project root. Scope members from files outside
// it are dropped from listings, and emitted file names are made
// relative to it.
func WithBasePath(p string) Option {
	return func(o *options) { o.basePath = p }
}

// WithKeep installs a file-membership predicate consulted when listing
// scope members. It runs in addition to the base-path rule.
func WithKeep(fn func(file string) bool) Option {
	return func(o *options) { o.keep = fn }
}

// WithFilter installs an expression over {file, base} deciding scope
// membership, compiled once per run.
func WithFilter(src string) Option {
	return func(o *options) { o.filterExpr = src }
}

// WithMaxDepth bounds traversal nesting. Zero means no limit.
func WithMaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}
