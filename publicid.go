package peerseal

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/peerseal/peerseal-go/internal/crypto"
)

// PublicIDSize is the size of a binary-encoded public identity in bytes:
// the signing public key followed by the encryption public key.
const PublicIDSize = crypto.SignPublicKeySize + crypto.BoxPublicKeySize

// fingerprintPrefix versions the fingerprint format.
const fingerprintPrefix = "seal1"

// PublicID is the public half of an identity: an Ed25519 signing public key
// and an X25519 encryption public key. It is a plain value: copy it, compare
// it with ==, and use it as a map key. Ordering compares the signing key
// first and breaks ties with the encryption key.
type PublicID struct {
	sign    [crypto.SignPublicKeySize]byte
	encrypt [crypto.BoxPublicKeySize]byte
}

// Compare orders two identities byte-lexicographically, signing key first.
// It returns -1 if id sorts before other, 0 if they are equal, and 1 if id
// sorts after other.
func (id PublicID) Compare(other PublicID) int {
	if c := bytes.Compare(id.sign[:], other.sign[:]); c != 0 {
		return c
	}
	return bytes.Compare(id.encrypt[:], other.encrypt[:])
}

// Fingerprint returns a short human-shareable form of the identity:
// a versioned prefix followed by the base58-encoded BLAKE2b-256 digest of
// the binary encoding. It is stable and one-way.
func (id PublicID) Fingerprint() string {
	digest := crypto.Digest256(id.appendBinary(nil))
	return fingerprintPrefix + base58.Encode(digest[:])
}

// String returns the identity fingerprint.
func (id PublicID) String() string {
	return id.Fingerprint()
}

// VerifyDetached reports whether sig is a valid detached signature over
// data produced by this identity's SecretID.
func (id PublicID) VerifyDetached(sig Signature, data []byte) bool {
	return crypto.Verify(id.sign, data, sig.data)
}

// EncryptAnonymous serializes v and seals it to this identity. Only the
// matching SecretID can decrypt the result, and the ciphertext carries no
// information about the sender.
//
// The only failure is a *MarshalError when v cannot be serialized.
func (id PublicID) EncryptAnonymous(v any) ([]byte, error) {
	payload, err := marshalPayload(v)
	if err != nil {
		return nil, err
	}
	return crypto.SealAnonymous(id.encrypt, payload), nil
}

// EncryptAnonymousBytes seals raw bytes to this identity. The result is
// SealedOverhead bytes longer than the plaintext and differs between calls
// because each seal uses a fresh ephemeral keypair.
func (id PublicID) EncryptAnonymousBytes(plaintext []byte) []byte {
	return crypto.SealAnonymous(id.encrypt, plaintext)
}

// SealedOverhead is the ciphertext expansion of EncryptAnonymousBytes.
const SealedOverhead = crypto.SealedOverhead

// MarshalBinary encodes the identity as the signing public key followed by
// the encryption public key. It never fails.
func (id PublicID) MarshalBinary() ([]byte, error) {
	return id.appendBinary(make([]byte, 0, PublicIDSize)), nil
}

// UnmarshalBinary decodes an identity from its binary encoding.
func (id *PublicID) UnmarshalBinary(data []byte) error {
	if len(data) != PublicIDSize {
		return &UnmarshalError{Err: fmt.Errorf("public id must be %d bytes, got %d", PublicIDSize, len(data))}
	}
	copy(id.sign[:], data[:crypto.SignPublicKeySize])
	copy(id.encrypt[:], data[crypto.SignPublicKeySize:])
	return nil
}

// publicIDJSON is the JSON shape of a PublicID. Keys are base64url without
// padding.
type publicIDJSON struct {
	Sign    string `json:"sign"`
	Encrypt string `json:"encrypt"`
}

// MarshalJSON encodes the identity as {"sign": ..., "encrypt": ...} with
// base64url key values.
func (id PublicID) MarshalJSON() ([]byte, error) {
	return json.Marshal(publicIDJSON{
		Sign:    crypto.ToBase64URL(id.sign[:]),
		Encrypt: crypto.ToBase64URL(id.encrypt[:]),
	})
}

// UnmarshalJSON decodes an identity from its JSON encoding.
func (id *PublicID) UnmarshalJSON(data []byte) error {
	var raw publicIDJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return &UnmarshalError{Err: err}
	}

	sign, err := crypto.FromBase64URL(raw.Sign)
	if err != nil {
		return &UnmarshalError{Err: fmt.Errorf("decode sign key: %w", err)}
	}
	if len(sign) != crypto.SignPublicKeySize {
		return &UnmarshalError{Err: fmt.Errorf("sign key must be %d bytes, got %d", crypto.SignPublicKeySize, len(sign))}
	}

	encrypt, err := crypto.FromBase64URL(raw.Encrypt)
	if err != nil {
		return &UnmarshalError{Err: fmt.Errorf("decode encrypt key: %w", err)}
	}
	if len(encrypt) != crypto.BoxPublicKeySize {
		return &UnmarshalError{Err: fmt.Errorf("encrypt key must be %d bytes, got %d", crypto.BoxPublicKeySize, len(encrypt))}
	}

	copy(id.sign[:], sign)
	copy(id.encrypt[:], encrypt)
	return nil
}

func (id PublicID) appendBinary(dst []byte) []byte {
	dst = append(dst, id.sign[:]...)
	return append(dst, id.encrypt[:]...)
}
