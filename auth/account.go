// Package auth mirrors the chain's x/auth account records as served by the
// node REST API: an "@type"-tagged JSON object whose 64-bit fields travel as
// decimal strings. Decoding then re-encoding node output reproduces it byte
// for byte.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/public-awesome/accounts/codec"
	"github.com/public-awesome/accounts/crypto"
)

// TypeURL is the "@type" discriminator attached to every encoded BaseAccount.
const TypeURL = "/cosmos.auth.v1beta1.BaseAccount"

// BaseAccount is the canonical in-memory form of an auth base account. The
// type tag is not stored; it is reattached on encode.
type BaseAccount struct {
	// Address is the bech32 account address, kept opaque here.
	Address string

	// PubKey is set once the account has broadcast at least one signed
	// message. A nil PubKey encodes as an explicit "pub_key": null, which is
	// what the node emits for unused accounts.
	PubKey *crypto.PublicKey

	// AccountNumber is the chain-assigned account identifier, immutable for
	// the account's lifetime.
	AccountNumber uint64

	// Sequence is the per-account transaction nonce.
	Sequence uint64
}

// baseAccountJSON is the wire twin of BaseAccount. Field order matches node
// output, so encoding preserves it. Required fields are pointers because
// encoding/json cannot flag missing keys on its own.
type baseAccountJSON struct {
	TypeURL       string            `json:"@type"`
	AccountNumber *string           `json:"account_number"`
	Address       *string           `json:"address"`
	PubKey        *crypto.PublicKey `json:"pub_key"`
	Sequence      *string           `json:"sequence"`
}

// ParseBaseAccount decodes wire JSON into a BaseAccount. Failures wrap
// ErrInvalidJSON or ErrMalformedNumber and name the offending field.
func ParseBaseAccount(s string) (*BaseAccount, error) {
	var a BaseAccount
	if err := json.Unmarshal([]byte(s), &a); err != nil {
		if errors.Is(err, ErrInvalidJSON) || errors.Is(err, ErrMalformedNumber) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return &a, nil
}

// MarshalJSON encodes the account in its tagged wire shape.
func (a BaseAccount) MarshalJSON() ([]byte, error) {
	accountNumber := codec.FormatUint(a.AccountNumber)
	sequence := codec.FormatUint(a.Sequence)
	return json.Marshal(baseAccountJSON{
		TypeURL:       TypeURL,
		AccountNumber: &accountNumber,
		Address:       &a.Address,
		PubKey:        a.PubKey,
		Sequence:      &sequence,
	})
}

// UnmarshalJSON decodes the tagged wire shape. The incoming "@type" value is
// neither checked nor retained; nodes wrap these fields in other account
// kinds and the constant is reattached on encode regardless. A missing
// pub_key and an explicit null both decode to nil.
func (a *BaseAccount) UnmarshalJSON(b []byte) error {
	var wire baseAccountJSON
	if err := json.Unmarshal(b, &wire); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	switch {
	case wire.Address == nil:
		return fmt.Errorf("%w: missing field %q", ErrInvalidJSON, "address")
	case wire.AccountNumber == nil:
		return fmt.Errorf("%w: missing field %q", ErrInvalidJSON, "account_number")
	case wire.Sequence == nil:
		return fmt.Errorf("%w: missing field %q", ErrInvalidJSON, "sequence")
	}
	accountNumber, err := codec.ParseUint[uint64](*wire.AccountNumber)
	if err != nil {
		return fmt.Errorf("account_number: %w", err)
	}
	sequence, err := codec.ParseUint[uint64](*wire.Sequence)
	if err != nil {
		return fmt.Errorf("sequence: %w", err)
	}
	a.Address = *wire.Address
	a.PubKey = wire.PubKey
	a.AccountNumber = accountNumber
	a.Sequence = sequence
	return nil
}

// String renders the account as its wire JSON. Encoding only fails if the
// key's own serializer does, which the PublicKey contract rules out.
func (a BaseAccount) String() string {
	b, err := json.Marshal(a)
	if err != nil {
		panic(fmt.Sprintf("account json: %v", err))
	}
	return string(b)
}
