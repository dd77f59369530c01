package ini

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

const (
	stringSource = "<string>"
	streamSource = "<stream>"
)

// =========================
// Public API
// =========================

// Loads parses text into a Document. Empty or blank text gives an empty
// Document.
func Loads(text string) (*Document, error) {
	return parseDocument(text, stringSource)
}

// Load reads r to the end and parses it. A source without any non-blank line
// is reported as an *EmptyError.
func Load(r io.Reader) (*Document, error) {
	source := streamSource
	if named, ok := r.(interface{ Name() string }); ok {
		source = named.Name()
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ini: reading %s: %w", source, err)
	}
	return loadNonEmpty(string(data), source)
}

// LoadFile parses the file at path. A missing or unreachable file is
// reported before any parsing, wrapping the underlying fs error.
func LoadFile(path string) (*Document, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("ini: could not find %s: %w", path, err)
		}
		return nil, fmt.Errorf("ini: could not access %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ini: reading %s: %w", path, err)
	}
	return loadNonEmpty(string(data), path)
}

func loadNonEmpty(text, source string) (*Document, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &EmptyError{Source: source}
	}
	return parseDocument(text, source)
}

// =========================
// Parser Implementation
// =========================

type parser struct {
	source string
	root   *Document
	cur    *Section
	lineNo int
}

func parseDocument(text, source string) (*Document, error) {
	p := &parser{source: source, root: NewDocument()}
	err := eachLine(text, source, func(tok Token, lineNo int) error {
		p.lineNo = lineNo
		if tok.Kind == TokenSection {
			return p.enterSection(tok.Name)
		}
		return p.setEntry(tok.Key, CastAll(tok.Values))
	})
	if err != nil {
		return nil, err
	}
	return p.root, nil
}

// eachLine tokenizes every non-blank line of text. Line numbers count every
// physical line, starting at 1.
func eachLine(text, source string, fn func(tok Token, lineNo int) error) error {
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		tok, err := TokenizeLine(line, source, i+1)
		if err != nil {
			return err
		}
		if err := fn(tok, i+1); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) enterSection(name string) error {
	if sec, ok := p.root.Section(name); ok {
		p.cur = sec
		return nil
	}
	sec := &Section{Name: name, orderedMap: newOrderedMap()}
	p.root.set(name, sec)
	p.cur = sec
	return nil
}

func (p *parser) setEntry(key string, n Node) error {
	if p.cur == nil {
		p.root.set(key, n)
		return nil
	}
	p.cur.set(key, n)
	return nil
}
