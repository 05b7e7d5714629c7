package crypto

import "errors"

var (
	// ErrDecryptionFailed is returned when authenticated decryption fails.
	// It deliberately carries no detail about the cause: wrong keys,
	// truncation, and tampering are indistinguishable.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidMnemonic is returned when a mnemonic fails word list or
	// checksum validation.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
)
