package numeric

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRoman is returned when a string cannot be decoded as a Roman numeral.
var ErrInvalidRoman = errors.New("invalid roman numeral")

// RomanMode selects how strictly Roman numerals are decoded.
type RomanMode string

const (
	// RomanLenient decodes any sequence of Roman symbols additively, treating
	// a smaller symbol before a larger one as subtractive. "IIII" is 4 and
	// "IIX" is 10. This matches common citation processors. Words spelled
	// only with Roman letters ("did", "mix", "civil") are numeric in this mode.
	RomanLenient RomanMode = "lenient"

	// RomanStrict only accepts canonical numerals between 1 and 3999.
	RomanStrict RomanMode = "strict"
)

// ParseRomanMode parses a mode name. An empty string yields RomanLenient.
func ParseRomanMode(s string) (RomanMode, error) {
	switch RomanMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", RomanLenient:
		return RomanLenient, nil
	case RomanStrict:
		return RomanStrict, nil
	default:
		return "", fmt.Errorf("unknown roman mode %q (want lenient or strict)", s)
	}
}

var romanValues = map[rune]int{
	'I': 1,
	'V': 5,
	'X': 10,
	'L': 50,
	'C': 100,
	'D': 500,
	'M': 1000,
}

// DecodeRoman converts a Roman numeral to an integer. Case is ignored,
// surrounding whitespace and a single trailing period are tolerated.
func DecodeRoman(s string, mode RomanMode) (int, error) {
	numeral := strings.ToUpper(strings.TrimSpace(s))
	numeral = strings.TrimSuffix(numeral, ".")
	if numeral == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidRoman)
	}

	values := make([]int, 0, len(numeral))
	for _, r := range numeral {
		v, ok := romanValues[r]
		if !ok {
			return 0, fmt.Errorf("%w: %q contains %q", ErrInvalidRoman, s, r)
		}
		values = append(values, v)
	}

	sum := 0
	for i, v := range values {
		if i+1 < len(values) && v < values[i+1] {
			sum -= v
		} else {
			sum += v
		}
	}
	if sum <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRoman, s)
	}

	if mode == RomanStrict {
		canonical, err := EncodeRoman(sum)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidRoman, s, err)
		}
		if canonical != numeral {
			return 0, fmt.Errorf("%w: %q is not canonical (want %s)", ErrInvalidRoman, s, canonical)
		}
	}

	return sum, nil
}

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"},
	{900, "CM"},
	{500, "D"},
	{400, "CD"},
	{100, "C"},
	{90, "XC"},
	{50, "L"},
	{40, "XL"},
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

// EncodeRoman returns the canonical upper-case Roman numeral for n (1..3999).
func EncodeRoman(n int) (string, error) {
	if n < 1 || n > 3999 {
		return "", fmt.Errorf("%w: %d out of range 1..3999", ErrInvalidRoman, n)
	}

	var b strings.Builder
	for _, e := range romanTable {
		for n >= e.value {
			b.WriteString(e.symbol)
			n -= e.value
		}
	}
	return b.String(), nil
}
