package peerseal

import (
	"fmt"

	"github.com/peerseal/peerseal-go/internal/crypto"
)

// GenerateMnemonic returns a fresh 24-word BIP-39 English mnemonic drawn
// from 256 bits of CSPRNG entropy. Feed it to [NewSecretIDFromMnemonic] to
// build a recoverable identity.
func GenerateMnemonic() (string, error) {
	mnemonic, err := crypto.NewMnemonic()
	if err != nil {
		return "", fmt.Errorf("generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// NewSecretIDFromMnemonic deterministically derives an identity from a
// BIP-39 mnemonic and passphrase. The same inputs always reproduce the same
// identity; different passphrases yield unrelated identities. The signing
// and encryption keys are expanded from the mnemonic seed with
// domain-separated HKDF info strings, so the two roles stay independent.
//
// It fails with ErrInvalidMnemonic when the mnemonic does not pass word
// list and checksum validation.
func NewSecretIDFromMnemonic(mnemonic, passphrase string) (*SecretID, error) {
	seed, err := crypto.SeedFromMnemonic(mnemonic, passphrase)
	if err != nil {
		return nil, wrapCryptoError(err)
	}

	signSeed, boxSeed, err := crypto.DeriveIdentitySeeds(seed)
	if err != nil {
		return nil, fmt.Errorf("derive identity: %w", err)
	}

	signPub, signPriv := crypto.SignKeypairFromSeed(signSeed)
	boxPub, boxPriv := crypto.BoxKeypairFromSeed(boxSeed)
	return newSecretID(signPub, signPriv, boxPub, boxPriv), nil
}
