package ini

import (
	"errors"
	"fmt"
)

// ErrEmpty is matched by errors.Is when a file or stream holds no content.
var ErrEmpty = errors.New("appears to be empty")

// FormatError reports a line that the tokenizer could not make sense of.
type FormatError struct {
	Source string
	Line   int
	Text   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("ini: %s: failed to parse line %d: %s: %q", e.Source, e.Line, e.Reason, e.Text)
}

// ShapeError reports a key or value that does not fit the data model.
// Field is either "key" or "value" and Offending holds the rejected item.
type ShapeError struct {
	Field     string
	Offending any
	Reason    string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("ini: %s, received invalid %s: %v", e.Reason, e.Field, e.Offending)
}

// EmptyError is returned by Load and LoadFile for sources without any
// non-blank line.
type EmptyError struct {
	Source string
}

func (e *EmptyError) Error() string {
	return fmt.Sprintf("%q %s", e.Source, ErrEmpty.Error())
}

func (e *EmptyError) Is(target error) bool { return target == ErrEmpty }

func invalidKey(key any, reason string) error {
	return &ShapeError{Field: "key", Offending: key, Reason: reason}
}

func invalidValue(value any, reason string) error {
	return &ShapeError{Field: "value", Offending: value, Reason: reason}
}
