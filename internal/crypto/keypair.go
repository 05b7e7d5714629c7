package crypto

import (
	"bytes"
	"crypto/rand"
	"io"

	"github.com/cloudflare/circl/sign/ed25519"
	"golang.org/x/crypto/nacl/box"
)

// randReader is the random source used for key and nonce generation.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

func reader() io.Reader {
	if randReader != nil {
		return randReader
	}
	return rand.Reader
}

// GenerateSignKeypair creates a new Ed25519 signing keypair.
func GenerateSignKeypair() (pub [SignPublicKeySize]byte, priv [SignSecretKeySize]byte, err error) {
	pubKey, privKey, err := ed25519.GenerateKey(reader())
	if err != nil {
		return pub, priv, err
	}
	copy(pub[:], pubKey)
	copy(priv[:], privKey)
	return pub, priv, nil
}

// GenerateBoxKeypair creates a new X25519 encryption keypair.
func GenerateBoxKeypair() (pub [BoxPublicKeySize]byte, priv [BoxSecretKeySize]byte, err error) {
	pubKey, privKey, err := box.GenerateKey(reader())
	if err != nil {
		return pub, priv, err
	}
	return *pubKey, *privKey, nil
}

// SignKeypairFromSeed derives an Ed25519 keypair from a seed.
// The derivation is deterministic.
func SignKeypairFromSeed(seed [SeedSize]byte) (pub [SignPublicKeySize]byte, priv [SignSecretKeySize]byte) {
	privKey := ed25519.NewKeyFromSeed(seed[:])
	copy(priv[:], privKey)
	copy(pub[:], privKey.Public().(ed25519.PublicKey))
	return pub, priv
}

// BoxKeypairFromSeed derives an X25519 keypair from a seed.
// The derivation is deterministic.
func BoxKeypairFromSeed(seed [SeedSize]byte) (pub [BoxPublicKeySize]byte, priv [BoxSecretKeySize]byte) {
	// GenerateKey reads exactly SeedSize bytes, so a full reader cannot fail.
	pubKey, privKey, _ := box.GenerateKey(bytes.NewReader(seed[:]))
	return *pubKey, *privKey
}
