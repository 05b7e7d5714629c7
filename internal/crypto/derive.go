package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/hkdf"
)

// NewMnemonic generates a fresh BIP-39 English mnemonic from
// MnemonicEntropyBits of CSPRNG entropy.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(MnemonicEntropyBits)
	if err != nil {
		return "", fmt.Errorf("generate entropy: %w", err)
	}
	return bip39.NewMnemonic(entropy)
}

// SeedFromMnemonic converts a BIP-39 mnemonic and passphrase into a master
// seed. The mnemonic is validated against the English word list and its
// checksum before use.
func SeedFromMnemonic(mnemonic, passphrase string) ([]byte, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	return bip39.NewSeed(mnemonic, passphrase), nil
}

// DeriveIdentitySeeds expands a master seed into independent signing and
// encryption key seeds using HKDF-SHA-256 with domain-separated info
// strings. The derivation is deterministic.
func DeriveIdentitySeeds(seed []byte) (signSeed, boxSeed [SeedSize]byte, err error) {
	if err = hkdfExpand(signSeed[:], seed, HKDFInfoSigning); err != nil {
		return signSeed, boxSeed, err
	}
	if err = hkdfExpand(boxSeed[:], seed, HKDFInfoEncryption); err != nil {
		return signSeed, boxSeed, err
	}
	return signSeed, boxSeed, nil
}

func hkdfExpand(dst []byte, secret []byte, info string) error {
	r := hkdf.New(sha256.New, secret, nil, []byte(info))
	if _, err := io.ReadFull(r, dst); err != nil {
		return fmt.Errorf("derive %q: %w", info, err)
	}
	return nil
}

// Digest256 computes the BLAKE2b-256 digest of data.
func Digest256(data []byte) [DigestSize]byte {
	return blake2b.Sum256(data)
}
