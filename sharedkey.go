package peerseal

import (
	"crypto/subtle"
	"encoding/json"

	"github.com/peerseal/peerseal-go/internal/crypto"
)

// SharedSecretKey is a precomputed symmetric key for one peer pair, derived
// by [SecretID.SharedKey]. Both ends derive identical key material, so one
// key serves traffic in both directions. Copies of the handle share one
// backing allocation.
//
// A SharedSecretKey is never serialized. Its String form redacts the key.
type SharedSecretKey struct {
	key *[crypto.SharedKeySize]byte
}

// Encrypt serializes v, seals it under the shared key with a fresh random
// nonce, and returns the serialized [PackedNonce] envelope.
//
// The only failure is a *MarshalError when v or the envelope cannot be
// serialized.
func (k *SharedSecretKey) Encrypt(v any) ([]byte, error) {
	payload, err := marshalPayload(v)
	if err != nil {
		return nil, err
	}
	return k.EncryptBytes(payload)
}

// EncryptBytes seals raw bytes under the shared key with a fresh random
// nonce and returns the serialized [PackedNonce] envelope. Nonces are
// generated here and never accepted from the caller.
//
// The only failure is a *MarshalError when the envelope cannot be
// serialized.
func (k *SharedSecretKey) EncryptBytes(plaintext []byte) ([]byte, error) {
	nonce := crypto.NewNonce()
	sealed := crypto.SealWithSharedKey(*k.key, nonce, plaintext)

	data, err := json.Marshal(packNonce(nonce, sealed))
	if err != nil {
		return nil, &MarshalError{Err: err}
	}
	return data, nil
}

// Decrypt opens a serialized [PackedNonce] envelope and deserializes the
// payload into v.
//
// It fails with a *UnmarshalError when the envelope or the opened payload
// cannot be deserialized, and with ErrDecryptVerify when the ciphertext
// does not authenticate under this key.
func (k *SharedSecretKey) Decrypt(data []byte, v any) error {
	payload, err := k.DecryptBytes(data)
	if err != nil {
		return err
	}
	return unmarshalPayload(payload, v)
}

// DecryptBytes opens a serialized [PackedNonce] envelope.
//
// It fails with a *UnmarshalError when the envelope cannot be deserialized
// and with ErrDecryptVerify when the ciphertext does not authenticate under
// this key. The two cases never mix: malformed envelopes are rejected
// before any cryptographic work.
func (k *SharedSecretKey) DecryptBytes(data []byte) ([]byte, error) {
	nonce, ciphertext, err := unpackNonce(data)
	if err != nil {
		return nil, err
	}

	plaintext, err := crypto.OpenWithSharedKey(*k.key, nonce, ciphertext)
	if err != nil {
		return nil, wrapCryptoError(err)
	}
	return plaintext, nil
}

// Equal reports whether two shared keys hold identical key material. The
// comparison is constant time.
func (k *SharedSecretKey) Equal(other *SharedSecretKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	return subtle.ConstantTimeCompare(k.key[:], other.key[:]) == 1
}

// String redacts the key material.
func (k *SharedSecretKey) String() string {
	return "SharedSecretKey(redacted)"
}
