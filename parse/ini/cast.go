package ini

import (
	"regexp"
	"strconv"
)

// Float spellings accepted by the caster: plain decimals with an optional
// exponent, and the infinity and NaN words the dumper writes. strconv alone
// would also take hex floats and '_' separators.
var (
	decimalRegexp   = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	nonFiniteRegexp = regexp.MustCompile(`^[+-]?(?i:inf|infinity|nan)$`)
)

// Boolean spellings shared by the caster and the dumper.
const (
	trueLiteral  = "true"
	falseLiteral = "false"
)

// Cast converts one raw token into a typed scalar.
//
// A token wrapped in a matching pair of quotes is a string with that one pair
// removed. Otherwise the first of bool, int, e-notation int and float that
// parses wins, and anything else is kept verbatim as a string.
func Cast(token string) *Value {
	if isQuoted(token) {
		return NewString(token[1 : len(token)-1])
	}
	switch token {
	case trueLiteral:
		return NewBool(true)
	case falseLiteral:
		return NewBool(false)
	}
	if i, err := strconv.ParseInt(token, 10, 64); err == nil {
		return NewInt(i)
	}
	if i, err := DecodeENotation(token); err == nil {
		return NewInt(i)
	}
	if !decimalRegexp.MatchString(token) && !nonFiniteRegexp.MatchString(token) {
		return NewString(token)
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return NewFloat(f)
	}
	return NewString(token)
}

// CastAll casts every token. A single token gives a bare *Value, several
// give a *List.
func CastAll(tokens []string) Node {
	if len(tokens) == 1 {
		return Cast(tokens[0])
	}
	list := &List{Elems: make([]*Value, len(tokens))}
	for i, t := range tokens {
		list.Elems[i] = Cast(t)
	}
	return list
}

func isQuoted(token string) bool {
	if len(token) < 2 {
		return false
	}
	q := token[0]
	return (q == '"' || q == '\'') && token[len(token)-1] == q
}
