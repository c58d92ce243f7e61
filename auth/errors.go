package auth

import (
	"errors"

	"github.com/public-awesome/accounts/codec"
)

var (
	// ErrInvalidJSON reports account JSON that is not well formed or lacks
	// a required field.
	ErrInvalidJSON = errors.New("invalid account json")

	// ErrMalformedNumber reports an account_number or sequence string that
	// does not parse as an unsigned 64-bit decimal.
	ErrMalformedNumber = codec.ErrMalformedNumber
)
