package crypto

import (
	"io"

	"golang.org/x/crypto/nacl/box"
)

// Precompute derives the shared key for a peer's public key and a local
// secret key. Both ends of a peer pair derive identical key material.
func Precompute(peerPublicKey [BoxPublicKeySize]byte, secretKey [BoxSecretKeySize]byte) [SharedKeySize]byte {
	var shared [SharedKeySize]byte
	box.Precompute(&shared, &peerPublicKey, &secretKey)
	return shared
}

// NewNonce returns a fresh random nonce.
func NewNonce() [NonceSize]byte {
	var nonce [NonceSize]byte
	if _, err := io.ReadFull(reader(), nonce[:]); err != nil {
		// crypto/rand does not fail on supported platforms.
		panic("crypto: nonce generation: " + err.Error())
	}
	return nonce
}

// SealWithSharedKey encrypts plaintext under a precomputed shared key.
// The ciphertext is BoxOverhead bytes longer than the plaintext.
func SealWithSharedKey(sharedKey [SharedKeySize]byte, nonce [NonceSize]byte, plaintext []byte) []byte {
	return box.SealAfterPrecomputation(nil, plaintext, &nonce, &sharedKey)
}

// OpenWithSharedKey decrypts ciphertext under a precomputed shared key.
// All failure causes collapse into ErrDecryptionFailed.
func OpenWithSharedKey(sharedKey [SharedKeySize]byte, nonce [NonceSize]byte, ciphertext []byte) ([]byte, error) {
	plaintext, ok := box.OpenAfterPrecomputation(nil, ciphertext, &nonce, &sharedKey)
	if !ok {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}
