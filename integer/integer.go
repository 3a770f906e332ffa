// Package integer stores signed integers as packed negabinary bits.
//
// The canonical negabinary digits of the value are laid out big-endian, with
// the least significant digit in the lowest bit of the last byte. No sign
// bit is needed (compare with a zigzag layout, which spends the trailing bit
// on the sign). Zero is a single zero byte.
//
//  | Value | Digits | Bytes                    |
//  |-------|--------|--------------------------|
//  |     0 |        | 0b0000_0000              |
//  |    +5 |    101 | 0b0000_0101              |
//  |    -5 |   1111 | 0b0000_1111              |
//  |  -128 | 1 0^7  | 0b1000_0000              |
//  |  +128 | 11 0^7 | 0b0000_0001, 0b1000_0000 |
package integer

import (
	"math/big"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/calebcase/negabinary"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

// Block is a signed integer number. A nil Value is zero.
type Block struct {
	Value *big.Int
}

// Digits returns the canonical negabinary digits of the value.
func (b Block) Digits() negabinary.Digits {
	if b.Value == nil {
		return negabinary.Digits{}
	}

	return negabinary.Encode(b.Value)
}

// Bits returns the number of significant bits in the packed form.
func (b Block) Bits() int {
	return len(b.Digits())
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	d := b.Digits()

	i := new(big.Int)
	for k := range d {
		i.SetBit(i, k, uint(d[len(d)-1-k]))
	}

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	if len(data) == 0 {
		return Error.New("invalid: size=0")
	}

	i := new(big.Int).SetBytes(data)

	d := make(negabinary.Digits, i.BitLen())
	for k := range d {
		d[len(d)-1-k] = negabinary.Digit(i.Bit(k))
	}

	v, err := negabinary.Decode(d)
	if err != nil {
		return oops.Trace(err)
	}

	b.Value = v

	return nil
}

// MarshalText implements encoding.TextMarshaler. Zero is "0".
func (b Block) MarshalText() (text []byte, err error) {
	d := b.Digits()
	if len(d) == 0 {
		return []byte{'0'}, nil
	}

	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Leading zeros are
// accepted.
func (b *Block) UnmarshalText(text []byte) (err error) {
	defer Error.WrapP(&err)

	if len(text) == 0 {
		return Error.New("invalid: size=0")
	}

	d, err := negabinary.ParseDigits(string(text))
	if err != nil {
		return oops.Trace(err)
	}

	v, err := negabinary.Decode(d)
	if err != nil {
		return oops.Trace(err)
	}

	b.Value = v

	return nil
}
