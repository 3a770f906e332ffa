package negabinary

import (
	"math/big"
)

var negTwo = big.NewInt(-2)

// Decode returns the value of the digits. Leading zeros are permitted.
//
// The sum of digit * (-2)^k is computed most significant digit first, with
// acc = acc * -2 + digit, so the first invalid digit reported is the
// leftmost one. Nothing is returned alongside an error.
func Decode(d Digits) (*big.Int, error) {
	acc := new(big.Int)

	for i, v := range d {
		switch v {
		case 0:
			acc.Mul(acc, negTwo)
		case 1:
			acc.Mul(acc, negTwo)
			acc.Add(acc, bigOne)
		default:
			return nil, invalidDigit(i, v)
		}
	}

	return acc, nil
}

// DecodeInt64 is like Decode, but fails if the value does not fit in an
// int64.
func DecodeInt64(d Digits) (int64, error) {
	v, err := Decode(d)
	if err != nil {
		return 0, err
	}

	if !v.IsInt64() {
		return 0, Error.New("value out of int64 range: %s", d)
	}

	return v.Int64(), nil
}
