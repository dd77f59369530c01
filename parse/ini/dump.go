package ini

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dzjyyds666/inifix/pkg"
)

// DumpOption tunes scalar rendering.
type DumpOption func(*dumpOptions)

type dumpOptions struct {
	enotation bool
}

// WithENotation renders numbers in e-notation whenever that is shorter, e.g.
// 10000000 as "1e7" and 0.00007 as "7e-5".
func WithENotation() DumpOption {
	return func(o *dumpOptions) { o.enotation = true }
}

// =========================
// Public API
// =========================

// Dumps renders doc as canonical text: top-level entries first, then every
// section as "[name]" followed by its entries, blocks separated by a blank
// line.
func Dumps(doc *Document, opts ...DumpOption) (string, error) {
	var o dumpOptions
	for _, opt := range opts {
		opt(&o)
	}
	if doc == nil {
		return "", nil
	}

	var blocks []string
	var top []string
	for _, key := range doc.EntryKeys() {
		line, err := o.renderLine(key, doc.items[key])
		if err != nil {
			return "", err
		}
		top = append(top, line)
	}
	if len(top) > 0 {
		blocks = append(blocks, strings.Join(top, "\n"))
	}
	for _, sec := range doc.Sections() {
		if err := checkSectionName(sec.Name); err != nil {
			return "", err
		}
		lines := []string{"[" + sec.Name + "]"}
		for _, key := range sec.keys {
			line, err := o.renderLine(key, sec.items[key])
			if err != nil {
				return "", err
			}
			lines = append(lines, line)
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	if len(blocks) == 0 {
		return "", nil
	}
	return strings.Join(blocks, "\n\n") + "\n", nil
}

// Dump writes the canonical text of doc to w.
func Dump(doc *Document, w io.Writer, opts ...DumpOption) error {
	text, err := Dumps(doc, opts...)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("ini: writing: %w", err)
	}
	return nil
}

// DumpFile replaces the file at path with the canonical text of doc. The
// previous contents survive any failure.
func DumpFile(doc *Document, path string, opts ...DumpOption) error {
	text, err := Dumps(doc, opts...)
	if err != nil {
		return err
	}
	if err := pkg.WriteFileAtomic(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("ini: %w", err)
	}
	return nil
}

// =========================
// Rendering
// =========================

func (o dumpOptions) renderLine(key string, n Node) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}
	var vals []*Value
	switch x := n.(type) {
	case *Value:
		vals = []*Value{x}
	case *List:
		if len(x.Elems) == 0 {
			return "", invalidValue(x, "expected all values to be scalars or lists of scalars")
		}
		vals = x.Elems
	default:
		return "", invalidValue(n, "expected all values to be scalars or lists of scalars")
	}
	parts := make([]string, 0, len(vals)+1)
	parts = append(parts, key)
	for _, v := range vals {
		s, err := o.renderScalar(v)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " "), nil
}

func (o dumpOptions) renderScalar(v *Value) (string, error) {
	if !v.valid() {
		return "", invalidValue(v, "expected all values to be scalars or lists of scalars")
	}
	switch x := v.V.(type) {
	case bool:
		if x {
			return trueLiteral, nil
		}
		return falseLiteral, nil
	case int64:
		if o.enotation {
			return preferENotation(formatInt(x), EncodeENotation(x)), nil
		}
		return formatInt(x), nil
	case float64:
		plain := formatFloat(x)
		if o.enotation && !integral(x) && !math.IsInf(x, 0) && !math.IsNaN(x) {
			return preferENotation(plain, encodeFloatENotation(x)), nil
		}
		return plain, nil
	case string:
		q, ok := quoteString(x)
		if !ok {
			return "", invalidValue(strconv.Quote(x), "string cannot be written on a single line")
		}
		return q, nil
	}
	return "", invalidValue(v, "expected all values to be scalars or lists of scalars")
}

// integral reports floats that would read back as ints if written without a
// fractional part.
func integral(f float64) bool {
	return f == math.Trunc(f) && f < int64Bound && f >= -int64Bound
}

// formatFloat gives the shortest text that reads back as the same float,
// never as an int.
func formatFloat(f float64) string {
	if integral(f) {
		return strconv.FormatFloat(f, 'f', -1, 64) + ".0"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// quoteString returns s as a token that casts back to the same string.
func quoteString(s string) (string, bool) {
	if !needsQuotes(s) {
		return s, true
	}
	if strings.ContainsAny(s, "\r\n") {
		return "", false
	}
	hasSingle, hasDouble := strings.Contains(s, "'"), strings.Contains(s, `"`)
	order := []byte{'"', '\''}
	if hasDouble && !hasSingle {
		order = []byte{'\'', '"'}
	}
	for _, q := range order {
		if !closesEarly(s, q) {
			return string(q) + s + string(q), true
		}
	}
	return "", false
}

func needsQuotes(s string) bool {
	if s == "" || strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return true
	}
	if s[0] == '"' || s[0] == '\'' || strings.HasSuffix(s, "]") {
		return true
	}
	c := Cast(s)
	return c.Type != iniValueKinds.ValueString || c.V != s
}

// closesEarly reports whether a token opened with q would end inside s.
func closesEarly(s string, q byte) bool {
	for j := 0; j < len(s); j++ {
		if s[j] != q || j+1 == len(s) {
			continue
		}
		if r, _ := utf8.DecodeRuneInString(s[j+1:]); unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

// representable reports whether s survives a Dumps/Loads cycle.
func representable(s string) bool {
	_, ok := quoteString(s)
	return ok
}
