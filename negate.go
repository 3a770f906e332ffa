package negabinary

import (
	"math/big"
)

// NegateReencode decodes d, negates the value, and returns the canonical
// encoding of the negation. It fails only when d contains an invalid digit.
//
// For canonical d, NegateReencode(NegateReencode(d)) equals d.
//
// tr may be nil. Otherwise it is given the decoded value and its negation.
func NegateReencode(d Digits, tr Tracer) (Digits, error) {
	if tr == nil {
		tr = NopTracer{}
	}

	v, err := Decode(d)
	if err != nil {
		return nil, err
	}
	tr.Trace("decoded", Fields{
		"digits": d.String(),
		"value":  v.String(),
	})

	neg := new(big.Int).Neg(v)
	tr.Trace("negated", Fields{
		"value": neg.String(),
	})

	return Encode(neg), nil
}
