package peerseal

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestSignatureFromBytes(t *testing.T) {
	raw := make([]byte, SignatureSize)
	for i := range raw {
		raw[i] = byte(i)
	}

	sig, err := SignatureFromBytes(raw)
	if err != nil {
		t.Fatalf("SignatureFromBytes() error = %v", err)
	}

	got := sig.Bytes()
	for i := range raw {
		if got[i] != raw[i] {
			t.Fatalf("Bytes()[%d] = %d, want %d", i, got[i], raw[i])
		}
	}

	// Bytes returns a copy, not a view of the signature.
	got[0] ^= 0xff
	if sig.Bytes()[0] != raw[0] {
		t.Error("mutating Bytes() result should not affect the signature")
	}
}

func TestSignatureFromBytes_WrongSize(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"too short", make([]byte, SignatureSize-1)},
		{"too long", make([]byte, SignatureSize+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SignatureFromBytes(tt.data)
			if !errors.Is(err, ErrUnmarshal) {
				t.Errorf("SignatureFromBytes() error = %v, want ErrUnmarshal", err)
			}
		})
	}
}

func TestSignature_Compare(t *testing.T) {
	low := make([]byte, SignatureSize)
	high := make([]byte, SignatureSize)
	high[SignatureSize-1] = 1

	a, err := SignatureFromBytes(low)
	if err != nil {
		t.Fatalf("SignatureFromBytes() error = %v", err)
	}
	b, err := SignatureFromBytes(high)
	if err != nil {
		t.Fatalf("SignatureFromBytes() error = %v", err)
	}

	if got := a.Compare(a); got != 0 {
		t.Errorf("Compare(self) = %d, want 0", got)
	}
	if got := a.Compare(b); got != -1 {
		t.Errorf("Compare(low, high) = %d, want -1", got)
	}
	if got := b.Compare(a); got != 1 {
		t.Errorf("Compare(high, low) = %d, want 1", got)
	}
}

func TestSignature_BinaryRoundTrip(t *testing.T) {
	alice, err := NewSecretID()
	if err != nil {
		t.Fatalf("NewSecretID() error = %v", err)
	}
	original := alice.SignDetached([]byte("signed message"))

	data, err := original.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() error = %v", err)
	}
	if len(data) != SignatureSize {
		t.Errorf("encoded length = %d, want %d", len(data), SignatureSize)
	}

	var decoded Signature
	if err := decoded.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary() error = %v", err)
	}
	if decoded != original {
		t.Error("decoded signature does not match original")
	}
}

func TestSignature_JSONRoundTrip(t *testing.T) {
	alice, err := NewSecretID()
	if err != nil {
		t.Fatalf("NewSecretID() error = %v", err)
	}
	original := alice.SignDetached([]byte("signed message"))

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	// The JSON form is a base64url string matching String().
	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		t.Fatalf("json.Unmarshal() into string error = %v", err)
	}
	if asString != original.String() {
		t.Errorf("JSON string = %q, want %q", asString, original.String())
	}

	var decoded Signature
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if decoded != original {
		t.Error("decoded signature does not match original")
	}
}

func TestParseSignature_RoundTrip(t *testing.T) {
	alice, err := NewSecretID()
	if err != nil {
		t.Fatalf("NewSecretID() error = %v", err)
	}
	original := alice.SignDetached([]byte("signed message"))

	parsed, err := ParseSignature(original.String())
	if err != nil {
		t.Fatalf("ParseSignature() error = %v", err)
	}
	if parsed != original {
		t.Error("parsed signature does not match original")
	}
}

func TestParseSignature_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"not base64url", "!!!"},
		{"wrong length", "AAAA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSignature(tt.input); !errors.Is(err, ErrUnmarshal) {
				t.Errorf("ParseSignature() error = %v, want ErrUnmarshal", err)
			}
		})
	}
}

func TestSignature_UnmarshalJSON_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not a string", `42`},
		{"not base64url", `"!!!"`},
		{"wrong length", `"AAAA"`},
		{"padded base64", `"YQ=="`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sig Signature
			err := json.Unmarshal([]byte(tt.data), &sig)
			if !errors.Is(err, ErrUnmarshal) {
				t.Errorf("json.Unmarshal() error = %v, want ErrUnmarshal", err)
			}
		})
	}
}
