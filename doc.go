// Package peerseal provides compact identity and message security on top of
// the NaCl construction set: detached Ed25519 signatures, anonymous
// sealed-box encryption, and precomputed shared-secret encryption.
//
// A [SecretID] owns an identity's signing and encryption private keys; its
// [PublicID] is the shareable counterpart. Anyone holding a PublicID can
// encrypt to it anonymously and verify its signatures. Two identities derive
// one [SharedSecretKey] (the same key material from either side) and use it
// for fast symmetric messaging with a fresh random nonce per message.
//
// Basic usage:
//
//	alice, err := peerseal.NewSecretID()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	bob, err := peerseal.NewSecretID()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Anonymous one-way message to Bob.
//	sealed := bob.PublicID().EncryptAnonymousBytes([]byte("hello"))
//	plain, err := bob.DecryptAnonymousBytes(sealed)
//
//	// Long-lived channel: derive once, reuse for many messages.
//	key := alice.SharedKey(bob.PublicID())
//	packed, err := key.EncryptBytes([]byte("hello again"))
//
// All decryption and verification failures collapse into a single
// [ErrDecryptVerify]; serialization problems surface separately as
// [MarshalError] and [UnmarshalError]. Every type in this package is safe
// for concurrent use.
package peerseal
