package ini

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FormatOption tunes Format.
type FormatOption func(*formatOptions)

type formatOptions struct {
	nameColumnSize int
	source         string
}

// WithNameColumnSize pads every key to size columns. Zero or a negative size
// means auto: the longest key of each block.
func WithNameColumnSize(size int) FormatOption {
	return func(o *formatOptions) { o.nameColumnSize = size }
}

// WithSource names the text in errors, usually its path.
func WithSource(source string) FormatOption {
	return func(o *formatOptions) { o.source = source }
}

// ColumnWarning lists keys that do not fit a requested column size. The block
// they belong to is aligned on its longest key instead.
type ColumnWarning struct {
	Section string
	Size    int
	Keys    []string
}

func (w ColumnWarning) String() string {
	where := "top level"
	if w.Section != "" {
		where = "section [" + w.Section + "]"
	}
	return fmt.Sprintf("the following parameters are longer than the requested column size (%d) in %s: %s",
		w.Size, where, strings.Join(w.Keys, ", "))
}

// Formatted is the outcome of Format.
type Formatted struct {
	Text string
	// Unchanged is true when Text is byte-identical to the input.
	Unchanged bool
	Warnings  []ColumnWarning
}

// block is a run of records under one header. Repeated headers stay separate.
type block struct {
	header  bool
	name    string
	records []Token
}

// Format re-renders text with keys padded to a common column, keeping each
// value token exactly as written. Formatting its own output changes nothing.
func Format(text string, opts ...FormatOption) (*Formatted, error) {
	o := formatOptions{source: stringSource}
	for _, opt := range opts {
		opt(&o)
	}

	blocks := []*block{{}}
	err := eachLine(text, o.source, func(tok Token, _ int) error {
		if tok.Kind == TokenSection {
			blocks = append(blocks, &block{header: true, name: tok.Name})
			return nil
		}
		cur := blocks[len(blocks)-1]
		cur.records = append(cur.records, tok)
		return nil
	})
	if err != nil {
		return nil, err
	}

	res := &Formatted{}
	var rendered []string
	for _, b := range blocks {
		if !b.header && len(b.records) == 0 {
			continue
		}
		width, warning := o.columnWidth(b)
		if warning != nil {
			res.Warnings = append(res.Warnings, *warning)
		}
		var lines []string
		if b.header {
			lines = append(lines, "["+b.name+"]")
		}
		for _, rec := range b.records {
			pad := width - utf8.RuneCountInString(rec.Key)
			lines = append(lines, rec.Key+strings.Repeat(" ", pad)+" "+strings.Join(rec.Values, " "))
		}
		rendered = append(rendered, strings.Join(lines, "\n"))
	}
	if len(rendered) > 0 {
		res.Text = strings.Join(rendered, "\n\n") + "\n"
	}
	res.Unchanged = res.Text == text
	return res, nil
}

func (o formatOptions) columnWidth(b *block) (int, *ColumnWarning) {
	natural := 0
	for _, rec := range b.records {
		natural = max(natural, utf8.RuneCountInString(rec.Key))
	}
	if o.nameColumnSize <= 0 {
		return natural, nil
	}
	if natural <= o.nameColumnSize {
		return o.nameColumnSize, nil
	}
	w := &ColumnWarning{Section: b.name, Size: o.nameColumnSize}
	for _, rec := range b.records {
		if utf8.RuneCountInString(rec.Key) > o.nameColumnSize {
			w.Keys = append(w.Keys, rec.Key)
		}
	}
	return natural, w
}
