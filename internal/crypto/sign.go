package crypto

import "github.com/cloudflare/circl/sign/ed25519"

// Sign produces a detached Ed25519 signature over message.
func Sign(secretKey [SignSecretKeySize]byte, message []byte) [SignatureSize]byte {
	var sig [SignatureSize]byte
	copy(sig[:], ed25519.Sign(ed25519.PrivateKey(secretKey[:]), message))
	return sig
}

// Verify reports whether signature is a valid detached Ed25519 signature
// over message under publicKey.
func Verify(publicKey [SignPublicKeySize]byte, message []byte, signature [SignatureSize]byte) bool {
	return ed25519.Verify(ed25519.PublicKey(publicKey[:]), message, signature[:])
}
