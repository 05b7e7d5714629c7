package peerseal

import (
	"errors"
	"fmt"

	"github.com/peerseal/peerseal-go/internal/crypto"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrDecryptVerify is returned when decryption or verification fails.
	// It deliberately carries no detail: wrong recipients, wrong shared
	// keys, truncation, and tampering are indistinguishable, so callers
	// cannot be turned into a decryption oracle.
	ErrDecryptVerify = errors.New("decrypt/verify failed")

	// ErrMarshal is returned when a payload or envelope cannot be serialized.
	ErrMarshal = errors.New("serialization failed")

	// ErrUnmarshal is returned when a payload or envelope cannot be deserialized.
	ErrUnmarshal = errors.New("deserialization failed")

	// ErrInvalidMnemonic is returned when a mnemonic fails word list or
	// checksum validation.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")

	// ErrInvalidCard is returned when an identity card is structurally invalid.
	ErrInvalidCard = errors.New("invalid identity card")

	// ErrCardSignature is returned when an identity card's self-signature
	// does not verify under its embedded public identity.
	ErrCardSignature = errors.New("identity card signature verification failed")

	// ErrUnknownPeer is returned when a keyring operation references a peer
	// that has not been registered.
	ErrUnknownPeer = errors.New("unknown peer")
)

// PeerSealError is implemented by all typed library errors.
type PeerSealError interface {
	error
	PeerSealError() // marker method
}

// MarshalError wraps a serialization failure.
type MarshalError struct {
	Err error
}

func (e *MarshalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("serialization failed: %v", e.Err)
	}
	return "serialization failed"
}

// Unwrap returns the underlying error.
func (e *MarshalError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *MarshalError) Is(target error) bool {
	return target == ErrMarshal
}

// PeerSealError implements the PeerSealError interface.
func (e *MarshalError) PeerSealError() {}

// UnmarshalError wraps a deserialization failure.
type UnmarshalError struct {
	Err error
}

func (e *UnmarshalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("deserialization failed: %v", e.Err)
	}
	return "deserialization failed"
}

// Unwrap returns the underlying error.
func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *UnmarshalError) Is(target error) bool {
	return target == ErrUnmarshal
}

// PeerSealError implements the PeerSealError interface.
func (e *UnmarshalError) PeerSealError() {}

// wrapCryptoError converts internal crypto errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapCryptoError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, crypto.ErrDecryptionFailed) {
		return ErrDecryptVerify
	}
	if errors.Is(err, crypto.ErrInvalidMnemonic) {
		return ErrInvalidMnemonic
	}
	return err
}
