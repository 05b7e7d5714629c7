package peerseal

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/peerseal/peerseal-go/internal/crypto"
)

// SignatureSize is the size of a detached signature in bytes.
const SignatureSize = crypto.SignatureSize

// Signature is an opaque detached Ed25519 signature. It is a plain value:
// copy it, compare it with ==, and use it as a map key.
type Signature struct {
	data [crypto.SignatureSize]byte
}

// SignatureFromBytes builds a Signature from its raw encoding.
func SignatureFromBytes(data []byte) (Signature, error) {
	var sig Signature
	if len(data) != crypto.SignatureSize {
		return sig, &UnmarshalError{Err: fmt.Errorf("signature must be %d bytes, got %d", crypto.SignatureSize, len(data))}
	}
	copy(sig.data[:], data)
	return sig, nil
}

// ParseSignature decodes a signature from its base64url string form, the
// inverse of String.
func ParseSignature(s string) (Signature, error) {
	decoded, err := crypto.FromBase64URL(s)
	if err != nil {
		return Signature{}, &UnmarshalError{Err: fmt.Errorf("decode signature: %w", err)}
	}
	return SignatureFromBytes(decoded)
}

// Bytes returns a copy of the raw signature.
func (s Signature) Bytes() []byte {
	out := make([]byte, crypto.SignatureSize)
	copy(out, s.data[:])
	return out
}

// Compare orders two signatures byte-lexicographically.
func (s Signature) Compare(other Signature) int {
	return bytes.Compare(s.data[:], other.data[:])
}

// String returns the signature as base64url without padding.
func (s Signature) String() string {
	return crypto.ToBase64URL(s.data[:])
}

// MarshalBinary returns the raw signature. It never fails.
func (s Signature) MarshalBinary() ([]byte, error) {
	return s.Bytes(), nil
}

// UnmarshalBinary decodes a signature from its raw encoding.
func (s *Signature) UnmarshalBinary(data []byte) error {
	parsed, err := SignatureFromBytes(data)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalJSON encodes the signature as a base64url string.
func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a signature from a base64url string.
func (s *Signature) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return &UnmarshalError{Err: err}
	}
	parsed, err := ParseSignature(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
