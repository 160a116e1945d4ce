package expr

import (
	"errors"
	"fmt"
)

// Evaluation outcomes. The transport maps these to user-facing text;
// anything not matching one of them is treated as an unknown failure.
var (
	// ErrRatesUnavailable every price source failed, nothing to substitute
	ErrRatesUnavailable = errors.New("rates unavailable")

	// ErrSyntax the expression structure is not valid arithmetic
	ErrSyntax = errors.New("syntax error")

	// ErrInvalidCharacters the rewritten string failed the character
	// whitelist. A syntax-class error: errors.Is(err, ErrSyntax) holds.
	ErrInvalidCharacters = fmt.Errorf("%w: invalid characters", ErrSyntax)

	// ErrDivisionByZero a division had a zero divisor
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidOperation a numeric literal survived validation but could
	// not be converted to a decimal
	ErrInvalidOperation = errors.New("invalid operation")
)
