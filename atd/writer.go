package atd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

// Unsized opens an array whose length is not known up front. Such
// arrays skip the declared-count check on close.
const Unsized = -1

type frameKind int

const (
	objectFrame frameKind = iota
	arrayFrame
	tupleFrame
	variantFrame
)

type frame struct {
	kind     frameKind
	declared int
	written  int
	keyed    bool
}

// Writer emits one value tree in the configured dialect. It keeps a
// stack of open containers and verifies on every close that exactly
// the declared number of values was written.
//
// The first error latches; subsequent calls are no-ops and Close
// reports it.
type Writer struct {
	bw      *bufio.Writer
	dialect Dialect
	pretty  bool
	colors  *Colors

	stack  []frame
	err    error
	closed bool
}

func NewWriter(w io.Writer, opts ...WriteOption) *Writer {
	aw := &Writer{bw: bufio.NewWriter(w)}
	for _, opt := range opts {
		opt(aw)
	}
	return aw
}

func (w *Writer) Err() error { return w.err }

// Close flushes buffered output. It fails if any container is still
// open or an earlier call failed.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if w.closed {
		return ErrClosed
	}
	w.closed = true
	if len(w.stack) > 0 {
		w.fail(fmt.Errorf("%w: close with %d open containers", ErrState, len(w.stack)))
		return w.err
	}
	w.raw("\n")
	if err := w.bw.Flush(); err != nil {
		w.err = err
	}
	return w.err
}

func (w *Writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *Writer) ok() bool {
	if w.err != nil || w.closed {
		if w.closed {
			w.fail(ErrClosed)
		}
		return false
	}
	return true
}

func (w *Writer) raw(s string) {
	if w.err != nil {
		return
	}
	if _, err := w.bw.WriteString(s); err != nil {
		w.err = err
	}
}

func (w *Writer) punct(s string) {
	if w.colors != nil {
		s = w.colors.Color(PunctColor, s)
	}
	w.raw(s)
}

func (w *Writer) top() *frame {
	if len(w.stack) == 0 {
		return nil
	}
	return &w.stack[len(w.stack)-1]
}

func (w *Writer) indent(n int) {
	if !w.pretty {
		return
	}
	w.raw("\n")
	for i := 0; i < n; i++ {
		w.raw("  ")
	}
}

// pre positions the writer for the next value: it rejects a bare value
// inside an object, writes the element separator, and counts the value
// against the enclosing frame.
func (w *Writer) pre() bool {
	if !w.ok() {
		return false
	}
	f := w.top()
	if f == nil {
		return true
	}
	switch f.kind {
	case objectFrame:
		if !f.keyed {
			w.fail(fmt.Errorf("%w: value without key in object", ErrState))
			return false
		}
		f.keyed = false
	case variantFrame:
		if f.written >= 1 {
			w.fail(fmt.Errorf("%w: variant takes one argument", ErrState))
			return false
		}
		f.written++
	default:
		if f.written > 0 {
			w.punct(",")
		}
		w.indent(len(w.stack))
		f.written++
	}
	return true
}

func (w *Writer) open(k frameKind, declared int, openTok string) {
	if !w.pre() {
		return
	}
	w.punct(openTok)
	w.stack = append(w.stack, frame{kind: k, declared: declared})
}

func (w *Writer) close(k frameKind, closeTok string) {
	if !w.ok() {
		return
	}
	f := w.top()
	if f == nil || f.kind != k {
		w.fail(fmt.Errorf("%w: mismatched close", ErrState))
		return
	}
	if f.declared != Unsized && f.written != f.declared {
		w.fail(fmt.Errorf("%w: declared %d, wrote %d", ErrArity, f.declared, f.written))
		return
	}
	if f.written > 0 && f.kind != variantFrame {
		w.indent(len(w.stack) - 1)
	}
	w.punct(closeTok)
	w.stack = w.stack[:len(w.stack)-1]
}

// BeginObject opens a record with exactly n key/value pairs.
func (w *Writer) BeginObject(n int) { w.open(objectFrame, n, "{") }

func (w *Writer) EndObject() { w.close(objectFrame, "}") }

// BeginArray opens a list of n values, or of any length when n is
// Unsized.
func (w *Writer) BeginArray(n int) { w.open(arrayFrame, n, "[") }

func (w *Writer) EndArray() { w.close(arrayFrame, "]") }

// BeginTuple opens a fixed-width positional container.
func (w *Writer) BeginTuple(n int) {
	if w.dialect == Yojson {
		w.open(tupleFrame, n, "(")
		return
	}
	w.open(tupleFrame, n, "[")
}

func (w *Writer) EndTuple() {
	if w.dialect == Yojson {
		w.close(tupleFrame, ")")
		return
	}
	w.close(tupleFrame, "]")
}

// BeginVariant opens a tagged value carrying exactly one argument.
func (w *Writer) BeginVariant(tag string) {
	if !w.pre() {
		return
	}
	tq := w.quote(tag, TagColor)
	if w.dialect == Yojson {
		w.punct("<")
		w.raw(tq)
		w.punct(":")
	} else {
		w.punct("[")
		w.raw(tq)
		w.punct(",")
	}
	if w.pretty {
		w.raw(" ")
	}
	w.stack = append(w.stack, frame{kind: variantFrame, declared: 1})
}

func (w *Writer) EndVariant() {
	if w.dialect == Yojson {
		w.close(variantFrame, ">")
		return
	}
	w.close(variantFrame, "]")
}

// Variant writes a tag with no argument.
func (w *Writer) Variant(tag string) {
	if !w.pre() {
		return
	}
	tq := w.quote(tag, TagColor)
	if w.dialect == Yojson {
		w.punct("<")
		w.raw(tq)
		w.punct(">")
		return
	}
	w.raw(tq)
}

// Key names the next value in the enclosing object.
func (w *Writer) Key(name string) {
	if !w.ok() {
		return
	}
	f := w.top()
	if f == nil || f.kind != objectFrame {
		w.fail(fmt.Errorf("%w: key %q outside object", ErrState, name))
		return
	}
	if f.keyed {
		w.fail(fmt.Errorf("%w: key %q follows unused key", ErrState, name))
		return
	}
	if f.written > 0 {
		w.punct(",")
	}
	w.indent(len(w.stack))
	f.written++
	f.keyed = true
	w.raw(w.quote(name, KeyColor))
	w.punct(":")
	if w.pretty {
		w.raw(" ")
	}
}

func (w *Writer) String(s string) {
	if !w.pre() {
		return
	}
	w.raw(w.quote(s, StringColor))
}

func (w *Writer) Int(v int64) {
	if !w.pre() {
		return
	}
	s := strconv.FormatInt(v, 10)
	if w.colors != nil {
		s = w.colors.Color(NumberColor, s)
	}
	w.raw(s)
}

func (w *Writer) Bool(v bool) {
	if !w.pre() {
		return
	}
	s := strconv.FormatBool(v)
	if w.colors != nil {
		s = w.colors.Color(BoolColor, s)
	}
	w.raw(s)
}

// Flag writes a true-valued field when set and nothing otherwise. The
// enclosing object's declared size must account for the skip.
func (w *Writer) Flag(name string, set bool) {
	if !set {
		return
	}
	w.Key(name)
	w.Bool(true)
}

func (w *Writer) quote(s string, attr ColorAttr) string {
	q := quoteString(s)
	if w.colors != nil {
		q = w.colors.Color(attr, q)
	}
	return q
}

const hexDigits = "0123456789abcdef"

func quoteString(s string) string {
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			buf = append(buf, '\\', c)
		case c == '\n':
			buf = append(buf, '\\', 'n')
		case c == '\r':
			buf = append(buf, '\\', 'r')
		case c == '\t':
			buf = append(buf, '\\', 't')
		case c < 0x20:
			buf = append(buf, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		case c >= utf8.RuneSelf:
			// Bytes that are not valid UTF-8 would poison the whole
			// document for a strict parser; escape them individually.
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				buf = append(buf, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
				break
			}
			buf = append(buf, s[i:i+size]...)
			i += size - 1
		default:
			buf = append(buf, c)
		}
	}
	return string(append(buf, '"'))
}
