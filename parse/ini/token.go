package ini

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenKind tells section headers apart from key/value lines.
type TokenKind uint8

const (
	TokenEntry TokenKind = iota
	TokenSection
)

// Token is one tokenized line. For TokenSection only Name is set; for
// TokenEntry Key and the raw, uncast Values are set.
type Token struct {
	Kind   TokenKind
	Name   string
	Key    string
	Values []string
}

// TokenizeLine splits a single line into a section header or a key followed
// by raw value tokens. source and lineNo are only used in errors.
func TokenizeLine(line, source string, lineNo int) (Token, error) {
	s := strings.TrimSpace(line)
	errf := func(reason string) error {
		return &FormatError{Source: source, Line: lineNo, Text: line, Reason: reason}
	}
	if s == "" {
		return Token{}, errf("empty line")
	}

	opens, closes := strings.HasPrefix(s, "["), strings.HasSuffix(s, "]")
	switch {
	case opens && closes && len(s) >= 2:
		name := s[1 : len(s)-1]
		if strings.TrimSpace(name) == "" {
			return Token{}, errf("empty section name")
		}
		return Token{Kind: TokenSection, Name: name}, nil
	case opens || closes:
		return Token{}, errf("invalid section header")
	}

	end := strings.IndexFunc(s, unicode.IsSpace)
	if end < 0 {
		return Token{}, errf("expected a key followed by one or more values")
	}
	values := splitValues(s[end:])
	if len(values) == 0 {
		return Token{}, errf("expected a key followed by one or more values")
	}
	return Token{Kind: TokenEntry, Key: s[:end], Values: values}, nil
}

// splitValues splits on runs of whitespace. A token opening with a quote
// runs up to the first matching quote followed by whitespace or the end of
// s; without such a quote the opening quote is an ordinary character.
func splitValues(s string) []string {
	var out []string
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}
		start := i
		if r == '"' || r == '\'' {
			if end := closingQuote(s, i+1, byte(r)); end >= 0 {
				out = append(out, s[start:end+1])
				i = end + 1
				continue
			}
		}
		for i < len(s) {
			r, size = utf8.DecodeRuneInString(s[i:])
			if unicode.IsSpace(r) {
				break
			}
			i += size
		}
		out = append(out, s[start:i])
	}
	return out
}

// closingQuote returns the index of the first q at or after from that is
// followed by whitespace or the end of s, or -1.
func closingQuote(s string, from int, q byte) int {
	for j := from; j < len(s); j++ {
		if s[j] != q {
			continue
		}
		if j+1 == len(s) {
			return j
		}
		if r, _ := utf8.DecodeRuneInString(s[j+1:]); unicode.IsSpace(r) {
			return j
		}
	}
	return -1
}
