package negabinary

import (
	"strconv"
	"strings"
)

// Digit is a single negabinary digit. Only 0 and 1 are valid.
type Digit uint8

// Digits is a negabinary number, most significant digit first.
type Digits []Digit

// Validate returns an InvalidDigitError for the first digit that is neither
// 0 nor 1.
func (d Digits) Validate() error {
	for i, v := range d {
		if v > 1 {
			return invalidDigit(i, v)
		}
	}

	return nil
}

// Canonical returns true if the digits are valid and have no leading zero.
// The empty sequence is canonical (it is zero).
func (d Digits) Canonical() bool {
	if d.Validate() != nil {
		return false
	}

	return len(d) == 0 || d[0] == 1
}

// Trim returns the digits without leading zeros. The value is unchanged.
func (d Digits) Trim() Digits {
	for i, v := range d {
		if v != 0 {
			return d[i:]
		}
	}

	return d[:0]
}

// String renders the digits as a string of '0' and '1'. Invalid digits are
// rendered in decimal between brackets. The empty sequence is "".
func (d Digits) String() string {
	sb := &strings.Builder{}
	sb.Grow(len(d))

	for _, v := range d {
		switch v {
		case 0:
			sb.WriteByte('0')
		case 1:
			sb.WriteByte('1')
		default:
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(int(v)))
			sb.WriteByte(']')
		}
	}

	return sb.String()
}

// ParseDigits parses a string of '0' and '1' characters. Leading zeros are
// kept. The error for any other character is an InvalidDigitError whose
// index is the character's byte offset.
func ParseDigits(s string) (d Digits, err error) {
	d = make(Digits, 0, len(s))

	for i, r := range s {
		switch r {
		case '0':
			d = append(d, 0)
		case '1':
			d = append(d, 1)
		default:
			return nil, Error.Wrap(&InvalidDigitError{
				Index: i,
				Digit: string(r),
			})
		}
	}

	return d, nil
}
