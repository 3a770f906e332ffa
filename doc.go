// Package negabinary converts between signed integers and their base -2
// (negabinary) representation.
//
// A negabinary number is a sequence of binary digits where the digit at
// position k, counted from the right starting at zero, carries the weight
// (-2)^k:
//
//  | Position |  6 |   5 |  4 |  3 | 2 |  1 | 0 |
//  |----------|----|-----|----|----|---|----|---|
//  | Weight   | 64 | -32 | 16 | -8 | 4 | -2 | 1 |
//
// Because the weights alternate in sign every integer, negative or not, has
// exactly one representation without leading zeros and no sign is needed.
// For example:
//
//   5 = 101  =  4 + 1
//  -5 = 1111 = -8 + 4 - 2 + 1
//
// Digits are held most significant first. The empty sequence is the
// canonical representation of zero.
//
// Decoding
//
// Decode accepts any sequence of zeros and ones, including sequences with
// leading zeros, and produces the exact value as a big.Int. Any other digit
// value fails with an InvalidDigitError naming its index.
//
// Encoding
//
// Encode is total: every integer has a canonical encoding. It repeatedly
// divides by -2 and forces each remainder into {0, 1}.
//
// All functions in this package are pure and safe for concurrent use.
package negabinary
