package peerseal

import (
	"encoding/binary"
	"fmt"
	"time"
)

// CardVersion is the current identity card format version.
const CardVersion = 1

// IdentityCard is a self-signed introduction of an identity: the public keys
// together with an optional display name and the issue time, signed by the
// identity's own signing key. Cards are how peers hand their identity to
// each other over untrusted channels; a card that verifies proves the sender
// holds the matching SecretID and chose exactly these fields.
type IdentityCard struct {
	// Version is the card format version. MUST be CardVersion.
	Version int `json:"version"`
	// Name is an optional display name chosen by the issuer. It is attested
	// by the issuer alone and carries no global meaning.
	Name string `json:"name,omitempty"`
	// PublicID is the identity the card introduces.
	PublicID PublicID `json:"publicId"`
	// IssuedAt is the card issue timestamp (ISO 8601 in JSON).
	IssuedAt time.Time `json:"issuedAt"`
	// Signature is the issuer's detached signature over the other fields.
	Signature Signature `json:"signature"`
}

// IssueCard creates a self-signed card introducing this identity under the
// given display name. name may be empty.
func (s *SecretID) IssueCard(name string) IdentityCard {
	card := IdentityCard{
		Version:  CardVersion,
		Name:     name,
		PublicID: s.public,
		IssuedAt: time.Now().UTC(),
	}
	card.Signature = s.SignDetached(card.signingBytes())
	return card
}

// signingBytes returns the canonical byte string the card signature covers:
// version, name, a zero separator, the binary public id, and the issue time
// as a big-endian UnixNano. The fixed-size tail keeps the encoding
// unambiguous for arbitrary names, and UnixNano survives the JSON timestamp
// round trip.
func (c *IdentityCard) signingBytes() []byte {
	buf := make([]byte, 0, 1+len(c.Name)+1+PublicIDSize+8)
	buf = append(buf, byte(c.Version))
	buf = append(buf, c.Name...)
	buf = append(buf, 0)
	buf = c.PublicID.appendBinary(buf)
	return binary.BigEndian.AppendUint64(buf, uint64(c.IssuedAt.UnixNano()))
}

// Validate checks that the card is structurally complete: a supported
// version, a non-zero public id, an issue time, and a signature. It does not
// check the signature itself; Verify does that.
func (c *IdentityCard) Validate() error {
	if c.Version != CardVersion {
		return fmt.Errorf("%w: unsupported version %d, expected %d", ErrInvalidCard, c.Version, CardVersion)
	}
	if c.PublicID == (PublicID{}) {
		return fmt.Errorf("%w: publicId is required", ErrInvalidCard)
	}
	if c.IssuedAt.IsZero() {
		return fmt.Errorf("%w: issuedAt is required", ErrInvalidCard)
	}
	if c.Signature == (Signature{}) {
		return fmt.Errorf("%w: signature is required", ErrInvalidCard)
	}
	return nil
}

// Verify checks the card end to end: structural validity first, then the
// self-signature against the card's own public id. It returns an error
// wrapping ErrInvalidCard for incomplete cards and ErrCardSignature when any
// signed field was altered after issue.
func (c *IdentityCard) Verify() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !c.PublicID.VerifyDetached(c.Signature, c.signingBytes()) {
		return ErrCardSignature
	}
	return nil
}
