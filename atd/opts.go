package atd

type WriteOption func(*Writer)

func WithDialect(d Dialect) WriteOption {
	return func(w *Writer) { w.dialect = d }
}

// WithPretty turns on indentation. The indent unit is two spaces.
func WithPretty(v bool) WriteOption {
	return func(w *Writer) { w.pretty = v }
}

func WithColors(c *Colors) WriteOption {
	return func(w *Writer) { w.colors = c }
}

// DialectFromOpts extracts the dialect from write options.
func DialectFromOpts(opts ...WriteOption) Dialect {
	w := &Writer{}
	for _, opt := range opts {
		opt(w)
	}
	return w.dialect
}
