package crypto

import "golang.org/x/crypto/nacl/box"

// SealAnonymous encrypts plaintext to the recipient's public key using a
// fresh ephemeral keypair. The ciphertext carries no sender identity and
// is SealedOverhead bytes longer than the plaintext.
func SealAnonymous(recipient [BoxPublicKeySize]byte, plaintext []byte) []byte {
	sealed, err := box.SealAnonymous(nil, plaintext, &recipient, reader())
	if err != nil {
		// The only failure source is the random reader, and crypto/rand
		// does not fail on supported platforms.
		panic("crypto: sealed box ephemeral key generation: " + err.Error())
	}
	return sealed
}

// OpenAnonymous decrypts a sealed box addressed to the given keypair.
// All failure causes collapse into ErrDecryptionFailed.
func OpenAnonymous(publicKey [BoxPublicKeySize]byte, secretKey [BoxSecretKeySize]byte, ciphertext []byte) ([]byte, error) {
	plaintext, ok := box.OpenAnonymous(nil, ciphertext, &publicKey, &secretKey)
	if !ok {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}
