package negabinary

import (
	"math/big"
)

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)

// Encode returns the canonical digits of v. Zero encodes as an empty
// sequence. v is not modified.
func Encode(v *big.Int) Digits {
	q := new(big.Int).Set(v)
	r := new(big.Int)

	// Digits are produced least significant first and reversed at the end.
	d := make(Digits, 0, v.BitLen()+2)

	for q.Sign() != 0 {
		// QuoRem truncates toward zero so the remainder takes the sign of
		// q and may be -1. Pull it back into {0, 1}.
		q.QuoRem(q, negTwo, r)
		if r.Sign() < 0 {
			q.Add(q, bigOne)
			r.Add(r, bigTwo)
		}

		d = append(d, Digit(r.Uint64()))
	}

	for i, j := 0, len(d)-1; i < j; i, j = i+1, j-1 {
		d[i], d[j] = d[j], d[i]
	}

	return d
}

// EncodeInt64 returns the canonical digits of v.
func EncodeInt64(v int64) Digits {
	return Encode(big.NewInt(v))
}
