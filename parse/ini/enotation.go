package ini

import (
	"errors"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

var enotationRegexp = regexp.MustCompile(`^[+-]?\d+(\.\d*)?[eE][+-]?\d+$`)

var errNotENotation = errors.New("not an integer in e-notation")

// Exponents beyond this are only integral in int64 for a zero mantissa.
const maxExponent = 4096

// 2^63, the first float64 outside the int64 range.
const int64Bound = 9223372036854775808.0

// DecodeENotation converts an e-formatted string such as "6.28E2" or
// "700e-2" to an integer when that loses nothing. "700e-3" and "0.6e0" fail.
func DecodeENotation(s string) (int64, error) {
	if !enotationRegexp.MatchString(s) {
		return 0, errNotENotation
	}
	mantissa, exp, _ := strings.Cut(strings.ToLower(s), "e")
	if e, err := strconv.Atoi(exp); err != nil || e > maxExponent || e < -maxExponent {
		if strings.Trim(mantissa, "+-.0") == "" {
			return 0, nil
		}
		return 0, errNotENotation
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok || !r.IsInt() || !r.Num().IsInt64() {
		return 0, errNotENotation
	}
	return r.Num().Int64(), nil
}

// EncodeENotation renders i in scientific notation without trailing zeros:
// 1 -> "1e0", 156000 -> "1.56e5".
func EncodeENotation(i int64) string {
	digits := formatInt(i)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	exp := len(digits) - 1
	mantissa := strings.TrimRight(digits, "0")
	if mantissa == "" {
		mantissa = "0"
		exp = 0
	}
	if len(mantissa) > 1 {
		mantissa = mantissa[:1] + "." + mantissa[1:]
	}
	return sign + mantissa + "e" + strconv.Itoa(exp)
}

// encodeFloatENotation renders f like strconv's 'e' format with the exponent
// stripped of its '+' and leading zeros: 0.0056 -> "5.6e-3".
func encodeFloatENotation(f float64) string {
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	neg := strings.HasPrefix(exp, "-")
	exp = strings.TrimLeft(exp, "+-")
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	if neg {
		exp = "-" + exp
	}
	return mantissa + "e" + exp
}

// preferENotation returns the e-notation form of a number when it is
// strictly shorter than plain.
func preferENotation(plain, enotation string) string {
	if len(enotation) < len(plain) {
		return enotation
	}
	return plain
}
