package atd

import (
	"errors"
	"strings"
	"testing"
)

func render(t *testing.T, opts []WriteOption, fn func(w *Writer)) string {
	t.Helper()
	var sb strings.Builder
	w := NewWriter(&sb, opts...)
	fn(w)
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func TestWriterDialects(t *testing.T) {
	tree := func(w *Writer) {
		w.BeginVariant("FunctionDecl")
		w.BeginTuple(2)
		w.Int(1)
		w.String("x")
		w.EndTuple()
		w.EndVariant()
	}
	cases := []struct {
		name string
		opts []WriteOption
		fn   func(w *Writer)
		want string
	}{
		{
			name: "json variant tuple",
			opts: []WriteOption{WithDialect(JSON)},
			fn:   tree,
			want: `["FunctionDecl",[1,"x"]]`,
		},
		{
			name: "yojson variant tuple",
			opts: []WriteOption{WithDialect(Yojson)},
			fn:   tree,
			want: `<"FunctionDecl":(1,"x")>`,
		},
		{
			name: "json bare variant",
			opts: []WriteOption{WithDialect(JSON)},
			fn:   func(w *Writer) { w.Variant("BreakStmt") },
			want: `"BreakStmt"`,
		},
		{
			name: "yojson bare variant",
			opts: []WriteOption{WithDialect(Yojson)},
			fn:   func(w *Writer) { w.Variant("BreakStmt") },
			want: `<"BreakStmt">`,
		},
		{
			name: "object with flag set",
			fn: func(w *Writer) {
				w.BeginObject(2)
				w.Key("a")
				w.Int(1)
				w.Flag("b", true)
				w.EndObject()
			},
			want: `{"a":1,"b":true}`,
		},
		{
			name: "object with flag skipped",
			fn: func(w *Writer) {
				w.BeginObject(1)
				w.Key("a")
				w.Int(1)
				w.Flag("b", false)
				w.EndObject()
			},
			want: `{"a":1}`,
		},
		{
			name: "unsized array",
			fn: func(w *Writer) {
				w.BeginArray(Unsized)
				w.Bool(true)
				w.Bool(false)
				w.EndArray()
			},
			want: `[true,false]`,
		},
		{
			name: "string escapes",
			fn:   func(w *Writer) { w.String("a\"b\n\tc") },
			want: `"a\"b\n\tc"`,
		},
		{
			name: "multibyte passes through",
			fn:   func(w *Writer) { w.String("é日") },
			want: `"é日"`,
		},
		{
			name: "invalid utf8 escaped",
			fn:   func(w *Writer) { w.String("a\xffb") },
			want: `"a\u00ffb"`,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := render(t, c.opts, c.fn)
			if got != c.want {
				t.Errorf("got %s want %s", got, c.want)
			}
		})
	}
}

func TestWriterArityError(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb)
	w.BeginTuple(2)
	w.Int(1)
	w.EndTuple()
	if err := w.Close(); !errors.Is(err, ErrArity) {
		t.Errorf("got %v, want ErrArity", err)
	}
}

func TestWriterStateErrors(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb)
	w.BeginObject(1)
	w.Int(3)
	if err := w.Close(); !errors.Is(err, ErrState) {
		t.Errorf("value without key: got %v, want ErrState", err)
	}

	w = NewWriter(&sb)
	w.BeginArray(1)
	w.Int(1)
	if err := w.Close(); !errors.Is(err, ErrState) {
		t.Errorf("open container at close: got %v, want ErrState", err)
	}
}

func TestWriterPretty(t *testing.T) {
	got := render(t, []WriteOption{WithPretty(true)}, func(w *Writer) {
		w.BeginObject(1)
		w.Key("n")
		w.Int(4)
		w.EndObject()
	})
	want := "{\n  \"n\": 4\n}"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestWriterErrLatches(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb)
	w.EndObject()
	if err := w.Err(); !errors.Is(err, ErrState) {
		t.Fatalf("got %v, want ErrState", err)
	}
	w.Int(1)
	if got := sb.String(); got != "" {
		t.Errorf("wrote %q after error", got)
	}
}

func TestDialectFromOpts(t *testing.T) {
	if d := DialectFromOpts(WithDialect(Yojson), WithPretty(true)); d != Yojson {
		t.Errorf("got %v, want Yojson", d)
	}
	if d := DialectFromOpts(); d != JSON {
		t.Errorf("got %v, want JSON", d)
	}
}

func TestDialectSuffix(t *testing.T) {
	if got := JSON.Suffix(); got != ".json" {
		t.Errorf("got %q", got)
	}
	if got := Yojson.Suffix(); got != ".yjson" {
		t.Errorf("got %q", got)
	}
}

func TestParseDialect(t *testing.T) {
	for _, v := range []string{"json", "j"} {
		d, err := ParseDialect(v)
		if err != nil || d != JSON {
			t.Errorf("%q: got %v, %v", v, d, err)
		}
	}
	d, err := ParseDialect("yojson")
	if err != nil || d != Yojson {
		t.Errorf("got %v, %v", d, err)
	}
	if _, err := ParseDialect("xml"); !errors.Is(err, ErrBadDialect) {
		t.Errorf("got %v, want ErrBadDialect", err)
	}
}
