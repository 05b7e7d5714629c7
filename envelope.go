package peerseal

import (
	"encoding/json"
	"fmt"

	"github.com/peerseal/peerseal-go/internal/crypto"
)

// NonceSize is the size of an envelope nonce in bytes.
const NonceSize = crypto.NonceSize

// PackedNonce is the wire envelope for shared-key messages: the random
// nonce and the ciphertext it protects, serialized as one unit. Values are
// base64url without padding.
type PackedNonce struct {
	// Nonce is the 24-byte message nonce (base64url-encoded).
	Nonce string `json:"nonce"`
	// Ciphertext is the sealed payload (base64url-encoded).
	Ciphertext string `json:"ciphertext"`
}

// packNonce builds the envelope for a freshly sealed message.
func packNonce(nonce [crypto.NonceSize]byte, ciphertext []byte) PackedNonce {
	return PackedNonce{
		Nonce:      crypto.ToBase64URL(nonce[:]),
		Ciphertext: crypto.ToBase64URL(ciphertext),
	}
}

// unpackNonce deserializes an envelope and validates the nonce length.
// Validation happens before any cryptographic work, so a malformed envelope
// is always a *UnmarshalError and never ErrDecryptVerify.
func unpackNonce(data []byte) ([crypto.NonceSize]byte, []byte, error) {
	var nonce [crypto.NonceSize]byte

	var env PackedNonce
	if err := json.Unmarshal(data, &env); err != nil {
		return nonce, nil, &UnmarshalError{Err: err}
	}

	rawNonce, err := crypto.FromBase64URL(env.Nonce)
	if err != nil {
		return nonce, nil, &UnmarshalError{Err: fmt.Errorf("decode nonce: %w", err)}
	}
	if len(rawNonce) != crypto.NonceSize {
		return nonce, nil, &UnmarshalError{Err: fmt.Errorf("nonce must be %d bytes, got %d", crypto.NonceSize, len(rawNonce))}
	}

	ciphertext, err := crypto.FromBase64URL(env.Ciphertext)
	if err != nil {
		return nonce, nil, &UnmarshalError{Err: fmt.Errorf("decode ciphertext: %w", err)}
	}

	copy(nonce[:], rawNonce)
	return nonce, ciphertext, nil
}
