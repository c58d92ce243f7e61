// Package crypto carries public keys in their node wire form.
package crypto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotObject reports public-key JSON that is not an object.
var ErrNotObject = errors.New("public key is not a JSON object")

// PublicKey is a polymorphic public key held as its exact wire JSON.
// The node tags each key with an "@type" discriminator and the schema behind
// it varies by key kind (secp256k1, ed25519, multisig), so the bytes are
// preserved as-is and re-emitted unchanged on encode.
type PublicKey struct {
	raw json.RawMessage
}

// PublicKeyFromJSON parses a key from its wire JSON object.
func PublicKeyFromJSON(b []byte) (*PublicKey, error) {
	var pk PublicKey
	if err := pk.UnmarshalJSON(b); err != nil {
		return nil, err
	}
	return &pk, nil
}

func (pk PublicKey) MarshalJSON() ([]byte, error) {
	if pk.raw == nil {
		return []byte("null"), nil
	}
	return pk.raw, nil
}

// UnmarshalJSON stores the key compacted, so re-encoding matches node output
// regardless of any whitespace the input carried.
func (pk *PublicKey) UnmarshalJSON(b []byte) error {
	var buf bytes.Buffer
	if err := json.Compact(&buf, b); err != nil {
		return fmt.Errorf("public key: %w", err)
	}
	raw := buf.Bytes()
	if len(raw) == 0 || raw[0] != '{' {
		return ErrNotObject
	}
	pk.raw = append(json.RawMessage(nil), raw...)
	return nil
}

// TypeURL returns the key's "@type" discriminator, or "" when absent.
func (pk PublicKey) TypeURL() string {
	var tagged struct {
		Type string `json:"@type"`
	}
	if err := json.Unmarshal(pk.raw, &tagged); err != nil {
		return ""
	}
	return tagged.Type
}

// Equal reports whether both keys have identical wire bytes.
func (pk PublicKey) Equal(other PublicKey) bool {
	return bytes.Equal(pk.raw, other.raw)
}

func (pk PublicKey) String() string {
	return string(pk.raw)
}
