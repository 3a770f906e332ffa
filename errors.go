package negabinary

import (
	"fmt"
	"strconv"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("negabinary")

// InvalidDigitError reports a digit outside of {0, 1}.
type InvalidDigitError struct {
	// Index of the first invalid digit, counted from the left.
	Index int

	// Digit is the offending digit as written (e.g. "2" or "x").
	Digit string
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid digit %q at index %d", e.Digit, e.Index)
}

func invalidDigit(index int, v Digit) error {
	return Error.Wrap(&InvalidDigitError{
		Index: index,
		Digit: strconv.Itoa(int(v)),
	})
}
