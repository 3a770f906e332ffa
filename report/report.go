// Package report describes a single codec run in a serializable form.
package report

import (
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/negabinary"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("report")

// Report is the outcome of one run. Integers are decimal strings and digit
// sequences are strings of '0' and '1'.
type Report struct {
	Input   string `json:"input" cbor:"input" msgpack:"input"`
	Value   string `json:"value" cbor:"value" msgpack:"value"`
	Negated string `json:"negated,omitempty" cbor:"negated,omitempty" msgpack:"negated,omitempty"`
	Output  string `json:"output" cbor:"output" msgpack:"output"`
}

// Negate reports NegateReencode of d.
func Negate(d negabinary.Digits, tr negabinary.Tracer) (r Report, err error) {
	v, err := negabinary.Decode(d)
	if err != nil {
		return r, err
	}

	out, err := negabinary.NegateReencode(d, tr)
	if err != nil {
		return r, err
	}

	return Report{
		Input:   d.String(),
		Value:   v.String(),
		Negated: new(big.Int).Neg(v).String(),
		Output:  out.String(),
	}, nil
}

// Decode reports the value of d. Output is the canonical form of d.
func Decode(d negabinary.Digits) (r Report, err error) {
	v, err := negabinary.Decode(d)
	if err != nil {
		return r, err
	}

	return Report{
		Input:  d.String(),
		Value:  v.String(),
		Output: negabinary.Encode(v).String(),
	}, nil
}

// Encode reports the digits of v.
func Encode(v *big.Int) Report {
	return Report{
		Input:  v.String(),
		Value:  v.String(),
		Output: negabinary.Encode(v).String(),
	}
}
