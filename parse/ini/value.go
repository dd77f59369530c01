package ini

import (
	"fmt"
	"math"
	"strconv"
)

// =========================
// Value Definitions
// =========================

type ValueKind string

var iniValueKinds = struct {
	ValueBool    ValueKind
	ValueInt     ValueKind
	ValueFloat   ValueKind
	ValueString  ValueKind
	ValueList    ValueKind
	ValueSection ValueKind
}{
	ValueBool:    "bool",
	ValueInt:     "int",
	ValueFloat:   "float",
	ValueString:  "string",
	ValueList:    "list",
	ValueSection: "section",
}

// Kinds exposed to callers that switch on Node.Kind().
var (
	KindBool    = iniValueKinds.ValueBool
	KindInt     = iniValueKinds.ValueInt
	KindFloat   = iniValueKinds.ValueFloat
	KindString  = iniValueKinds.ValueString
	KindList    = iniValueKinds.ValueList
	KindSection = iniValueKinds.ValueSection
)

// Node is anything a Document can hold: a *Value, a *List or a *Section.
// Sections only hold *Value and *List.
type Node interface {
	Kind() ValueKind
	Value() any
}

// -------- Value --------

// Value is a typed scalar. V is a bool, int64, float64 or string matching Type.
type Value struct {
	Type ValueKind
	V    any
}

func (v *Value) Kind() ValueKind { return v.Type }

func (v *Value) Value() any { return v.V }

func (v *Value) String() string { return fmt.Sprintf("%v", v.V) }

func NewBool(b bool) *Value { return &Value{Type: iniValueKinds.ValueBool, V: b} }

func NewInt(i int64) *Value { return &Value{Type: iniValueKinds.ValueInt, V: i} }

func NewFloat(f float64) *Value { return &Value{Type: iniValueKinds.ValueFloat, V: f} }

func NewString(s string) *Value { return &Value{Type: iniValueKinds.ValueString, V: s} }

// Equal reports whether both values have the same kind and payload.
// NaN floats compare equal to each other.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.Type != o.Type {
		return false
	}
	if v.Type == iniValueKinds.ValueFloat {
		a, _ := v.V.(float64)
		b, _ := o.V.(float64)
		if math.IsNaN(a) && math.IsNaN(b) {
			return true
		}
		return a == b
	}
	return v.V == o.V
}

// valid checks that the payload type agrees with Type.
func (v *Value) valid() bool {
	if v == nil {
		return false
	}
	switch v.Type {
	case iniValueKinds.ValueBool:
		_, ok := v.V.(bool)
		return ok
	case iniValueKinds.ValueInt:
		_, ok := v.V.(int64)
		return ok
	case iniValueKinds.ValueFloat:
		_, ok := v.V.(float64)
		return ok
	case iniValueKinds.ValueString:
		s, ok := v.V.(string)
		return ok && representable(s)
	default:
		return false
	}
}

// -------- List --------

// List is an ordered, non-empty sequence of scalars.
type List struct {
	Elems []*Value
}

func NewList(elems ...*Value) *List { return &List{Elems: elems} }

func (*List) Kind() ValueKind { return iniValueKinds.ValueList }

func (l *List) Value() any {
	out := make([]any, len(l.Elems))
	for i, e := range l.Elems {
		out[i] = e.V
	}
	return out
}

func (l *List) String() string { return fmt.Sprintf("%v", l.Value()) }

func (l *List) Equal(o *List) bool {
	if l == nil || o == nil {
		return l == o
	}
	if len(l.Elems) != len(o.Elems) {
		return false
	}
	for i := range l.Elems {
		if !l.Elems[i].Equal(o.Elems[i]) {
			return false
		}
	}
	return true
}

// =========================
// Native Conversion
// =========================

// toEntry converts v into a *Value or *List. Native Go scalars and slices of
// them are accepted alongside the package's own types.
func toEntry(v any) (Node, error) {
	const reason = "expected all values to be scalars or lists of scalars"
	switch x := v.(type) {
	case *Value:
		if !x.valid() {
			return nil, invalidValue(v, reason)
		}
		return x, nil
	case *List:
		if x == nil || len(x.Elems) == 0 {
			return nil, invalidValue(v, reason)
		}
		for _, e := range x.Elems {
			if !e.valid() {
				return nil, invalidValue(v, reason)
			}
		}
		return x, nil
	case []*Value:
		return toEntry(&List{Elems: x})
	}
	if s, ok := toScalar(v); ok {
		if !s.valid() {
			return nil, invalidValue(v, reason)
		}
		return s, nil
	}
	var elems []any
	switch x := v.(type) {
	case []any:
		elems = x
	case []bool:
		elems = widen(x)
	case []int:
		elems = widen(x)
	case []int64:
		elems = widen(x)
	case []float64:
		elems = widen(x)
	case []string:
		elems = widen(x)
	default:
		return nil, invalidValue(v, reason)
	}
	if len(elems) == 0 {
		return nil, invalidValue(v, reason)
	}
	list := &List{Elems: make([]*Value, 0, len(elems))}
	for _, e := range elems {
		if ev, ok := e.(*Value); ok && ev.valid() {
			list.Elems = append(list.Elems, ev)
			continue
		}
		s, ok := toScalar(e)
		if !ok || !s.valid() {
			return nil, invalidValue(v, reason)
		}
		list.Elems = append(list.Elems, s)
	}
	return list, nil
}

func toScalar(v any) (*Value, bool) {
	switch x := v.(type) {
	case bool:
		return NewBool(x), true
	case int:
		return NewInt(int64(x)), true
	case int8:
		return NewInt(int64(x)), true
	case int16:
		return NewInt(int64(x)), true
	case int32:
		return NewInt(int64(x)), true
	case int64:
		return NewInt(x), true
	case uint8:
		return NewInt(int64(x)), true
	case uint16:
		return NewInt(int64(x)), true
	case uint32:
		return NewInt(int64(x)), true
	case uint:
		if uint64(x) > math.MaxInt64 {
			return nil, false
		}
		return NewInt(int64(x)), true
	case uint64:
		if x > math.MaxInt64 {
			return nil, false
		}
		return NewInt(int64(x)), true
	case float32:
		return NewFloat(float64(x)), true
	case float64:
		return NewFloat(x), true
	case string:
		return NewString(x), true
	}
	return nil, false
}

func widen[T any](xs []T) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}

// formatInt is shared by the dumper and the e-notation codec.
func formatInt(i int64) string { return strconv.FormatInt(i, 10) }
