package peerseal

import (
	"fmt"

	"github.com/peerseal/peerseal-go/internal/crypto"
)

// secretKeys holds the private key material behind a SecretID. It always
// sits behind a pointer, so copies of the handle share one backing
// allocation and the keys are never duplicated across the heap.
type secretKeys struct {
	sign    [crypto.SignSecretKeySize]byte
	encrypt [crypto.BoxSecretKeySize]byte
}

// SecretID is the secret half of an identity: the Ed25519 signing private
// key and the X25519 encryption private key, plus the precomputed public
// counterpart. It signs, decrypts anonymous messages addressed to it, and
// derives shared keys with peers.
//
// A SecretID is never serialized. Its String form redacts all key material.
type SecretID struct {
	keys   *secretKeys
	public PublicID
}

// NewSecretID generates a fresh identity from the platform CSPRNG. The
// signing and encryption keypairs are independent.
func NewSecretID() (*SecretID, error) {
	signPub, signPriv, err := crypto.GenerateSignKeypair()
	if err != nil {
		return nil, fmt.Errorf("generate signing key: %w", err)
	}

	boxPub, boxPriv, err := crypto.GenerateBoxKeypair()
	if err != nil {
		return nil, fmt.Errorf("generate encryption key: %w", err)
	}

	return newSecretID(signPub, signPriv, boxPub, boxPriv), nil
}

func newSecretID(
	signPub [crypto.SignPublicKeySize]byte,
	signPriv [crypto.SignSecretKeySize]byte,
	boxPub [crypto.BoxPublicKeySize]byte,
	boxPriv [crypto.BoxSecretKeySize]byte,
) *SecretID {
	return &SecretID{
		keys: &secretKeys{
			sign:    signPriv,
			encrypt: boxPriv,
		},
		public: PublicID{
			sign:    signPub,
			encrypt: boxPub,
		},
	}
}

// PublicID returns the shareable public identity. It is precomputed at
// construction and this accessor never recomputes it.
func (s *SecretID) PublicID() PublicID {
	return s.public
}

// SignDetached produces a detached signature over data. Verify it with
// [PublicID.VerifyDetached].
func (s *SecretID) SignDetached(data []byte) Signature {
	return Signature{data: crypto.Sign(s.keys.sign, data)}
}

// DecryptAnonymous opens a sealed message produced by
// [PublicID.EncryptAnonymous] and deserializes the payload into v.
//
// It fails with ErrDecryptVerify when the ciphertext was not sealed to this
// identity or has been modified, and with a *UnmarshalError when the opened
// payload cannot be deserialized.
func (s *SecretID) DecryptAnonymous(ciphertext []byte, v any) error {
	payload, err := s.DecryptAnonymousBytes(ciphertext)
	if err != nil {
		return err
	}
	return unmarshalPayload(payload, v)
}

// DecryptAnonymousBytes opens a sealed message produced by
// [PublicID.EncryptAnonymousBytes].
//
// The only failure is ErrDecryptVerify; truncation, tampering, and
// wrong-recipient ciphertexts are indistinguishable.
func (s *SecretID) DecryptAnonymousBytes(ciphertext []byte) ([]byte, error) {
	plaintext, err := crypto.OpenAnonymous(s.public.encrypt, s.keys.encrypt, ciphertext)
	if err != nil {
		return nil, wrapCryptoError(err)
	}
	return plaintext, nil
}

// SharedKey precomputes the shared secret key for this identity and a peer.
// Deriving from either end of the pair yields identical key material, so
// both sides can encrypt to and decrypt from each other with one key.
// Derive once per peer and reuse the result across messages.
func (s *SecretID) SharedKey(peer PublicID) *SharedSecretKey {
	key := crypto.Precompute(peer.encrypt, s.keys.encrypt)
	return &SharedSecretKey{key: &key}
}

// String identifies the owner without exposing key material.
func (s *SecretID) String() string {
	return "SecretID(" + s.public.Fingerprint() + ")"
}
