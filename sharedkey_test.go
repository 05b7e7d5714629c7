package peerseal

import (
	"bytes"
	"errors"
	"testing"
)

func TestSharedKey_Symmetric(t *testing.T) {
	alice := newTestIdentity(t)
	bob := newTestIdentity(t)

	aliceKey := alice.SharedKey(bob.PublicID())
	bobKey := bob.SharedKey(alice.PublicID())

	if !aliceKey.Equal(bobKey) {
		t.Fatal("both sides should derive the same shared key")
	}
}

func TestSharedKey_DistinctPerPeer(t *testing.T) {
	alice := newTestIdentity(t)
	bob := newTestIdentity(t)
	carol := newTestIdentity(t)

	withBob := alice.SharedKey(bob.PublicID())
	withCarol := alice.SharedKey(carol.PublicID())

	if withBob.Equal(withCarol) {
		t.Error("shared keys for different peers should differ")
	}
}

func TestSharedKey_Equal_Nil(t *testing.T) {
	alice := newTestIdentity(t)
	bob := newTestIdentity(t)
	key := alice.SharedKey(bob.PublicID())

	if key.Equal(nil) {
		t.Error("Equal(nil) = true, want false")
	}
	var nilKey *SharedSecretKey
	if !nilKey.Equal(nil) {
		t.Error("nil.Equal(nil) = false, want true")
	}
}

func TestSharedKey_EncryptBytes_RoundTrip(t *testing.T) {
	alice := newTestIdentity(t)
	bob := newTestIdentity(t)
	plaintext := []byte("shared channel message")

	// Encrypted by one side, decrypted by the other.
	envelope, err := alice.SharedKey(bob.PublicID()).EncryptBytes(plaintext)
	if err != nil {
		t.Fatalf("EncryptBytes() error = %v", err)
	}

	decrypted, err := bob.SharedKey(alice.PublicID()).DecryptBytes(envelope)
	if err != nil {
		t.Fatalf("DecryptBytes() error = %v", err)
	}
	if !bytes.Equal(decrypted, plaintext) {
		t.Errorf("decrypted = %q, want %q", decrypted, plaintext)
	}
}

func TestSharedKey_EncryptBytes_EmptyPlaintext(t *testing.T) {
	alice := newTestIdentity(t)
	bob := newTestIdentity(t)
	key := alice.SharedKey(bob.PublicID())

	envelope, err := key.EncryptBytes(nil)
	if err != nil {
		t.Fatalf("EncryptBytes() error = %v", err)
	}
	decrypted, err := key.DecryptBytes(envelope)
	if err != nil {
		t.Fatalf("DecryptBytes() error = %v", err)
	}
	if len(decrypted) != 0 {
		t.Errorf("decrypted length = %d, want 0", len(decrypted))
	}
}

func TestSharedKey_Encrypt_TypedRoundTrip(t *testing.T) {
	alice := newTestIdentity(t)
	bob := newTestIdentity(t)
	sent := testMessage{From: "alice", Body: "typed payload", Serial: 12}

	envelope, err := alice.SharedKey(bob.PublicID()).Encrypt(sent)
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}

	var received testMessage
	if err := bob.SharedKey(alice.PublicID()).Decrypt(envelope, &received); err != nil {
		t.Fatalf("Decrypt() error = %v", err)
	}
	if received != sent {
		t.Errorf("received = %+v, want %+v", received, sent)
	}
}

func TestSharedKey_EncryptBytes_FreshNonces(t *testing.T) {
	alice := newTestIdentity(t)
	bob := newTestIdentity(t)
	key := alice.SharedKey(bob.PublicID())
	plaintext := []byte("same plaintext every time")

	seen := make(map[string]bool)
	for i := 0; i < 16; i++ {
		envelope, err := key.EncryptBytes(plaintext)
		if err != nil {
			t.Fatalf("EncryptBytes() error = %v", err)
		}
		if seen[string(envelope)] {
			t.Fatal("two encryptions produced an identical envelope")
		}
		seen[string(envelope)] = true
	}
}

func TestSharedKey_DecryptBytes_WrongKey(t *testing.T) {
	alice := newTestIdentity(t)
	bob := newTestIdentity(t)
	carol := newTestIdentity(t)
	dave := newTestIdentity(t)

	envelope, err := alice.SharedKey(bob.PublicID()).EncryptBytes([]byte("secret"))
	if err != nil {
		t.Fatalf("EncryptBytes() error = %v", err)
	}

	_, err = carol.SharedKey(dave.PublicID()).DecryptBytes(envelope)
	if !errors.Is(err, ErrDecryptVerify) {
		t.Errorf("DecryptBytes() error = %v, want ErrDecryptVerify", err)
	}
}

func TestSharedKey_DecryptBytes_Tampered(t *testing.T) {
	alice := newTestIdentity(t)
	bob := newTestIdentity(t)
	key := alice.SharedKey(bob.PublicID())

	envelope, err := key.EncryptBytes([]byte("integrity protected"))
	if err != nil {
		t.Fatalf("EncryptBytes() error = %v", err)
	}

	// Flip one character inside the base64 ciphertext value. The envelope
	// stays well formed, so the failure must come from authentication.
	tampered := make([]byte, len(envelope))
	copy(tampered, envelope)
	idx := bytes.Index(tampered, []byte(`"ciphertext":"`)) + len(`"ciphertext":"`)
	if tampered[idx] == 'A' {
		tampered[idx] = 'B'
	} else {
		tampered[idx] = 'A'
	}

	_, err = key.DecryptBytes(tampered)
	if !errors.Is(err, ErrDecryptVerify) {
		t.Errorf("DecryptBytes() error = %v, want ErrDecryptVerify", err)
	}
}

func TestSharedKey_DecryptBytes_MalformedEnvelope(t *testing.T) {
	alice := newTestIdentity(t)
	bob := newTestIdentity(t)
	key := alice.SharedKey(bob.PublicID())

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"not JSON", []byte("not json")},
		{"nonce not base64url", []byte(`{"nonce":"!!!","ciphertext":"AAAA"}`)},
		{"nonce wrong length", []byte(`{"nonce":"AAAA","ciphertext":"AAAA"}`)},
		{"ciphertext not base64url", []byte(`{"nonce":"AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA","ciphertext":"!!!"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := key.DecryptBytes(tt.data)
			if !errors.Is(err, ErrUnmarshal) {
				t.Errorf("DecryptBytes() error = %v, want ErrUnmarshal", err)
			}
			// Malformed input is a format error, never a crypto failure.
			if errors.Is(err, ErrDecryptVerify) {
				t.Error("malformed envelope should not report ErrDecryptVerify")
			}
		})
	}
}

func TestSharedKey_String_Redacted(t *testing.T) {
	alice := newTestIdentity(t)
	bob := newTestIdentity(t)
	key := alice.SharedKey(bob.PublicID())

	if got := key.String(); got != "SharedSecretKey(redacted)" {
		t.Errorf("String() = %q, want %q", got, "SharedSecretKey(redacted)")
	}
}
