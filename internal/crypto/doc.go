// Package crypto provides the cryptographic primitives behind the peerseal
// identity and message-security API. It implements detached signatures,
// anonymous sealed-box encryption, and precomputed shared-key encryption
// using the NaCl construction set.
//
// # Algorithm Suite
//
// The package uses the following cryptographic algorithms:
//
//   - Ed25519 (RFC 8032): Detached digital signatures over arbitrary
//     messages and identity material. Provides 128-bit security.
//
//   - X25519 + XSalsa20-Poly1305 (NaCl box): Authenticated public-key
//     encryption. The shared key for a peer pair is precomputed once and
//     reused across messages.
//
//   - NaCl sealed boxes: Anonymous public-key encryption using a fresh
//     ephemeral X25519 keypair per message. The ciphertext reveals
//     nothing about the sender.
//
//   - HKDF-SHA-256 (RFC 5869): Expansion of BIP-39 master seeds into
//     independent signing and encryption key seeds with domain-separated
//     info strings.
//
//   - BLAKE2b-256 (RFC 7693): Digests for identity fingerprints.
//
// # Security Model
//
// The construction provides:
//
//   - Confidentiality: Only the holder of the recipient secret key can open
//     a sealed box; only the two ends of a peer pair can open shared-key
//     ciphertexts.
//   - Integrity: Poly1305 authentication causes decryption of tampered
//     ciphertext to fail.
//   - Sender anonymity: Sealed boxes are keyed by a per-message ephemeral
//     keypair and carry no sender identity.
//
// # Critical Security Notes
//
// Box nonces MUST be unique for each encryption with the same shared key.
// [NewNonce] draws 24 random bytes from the CSPRNG for every message;
// callers never supply nonces.
//
// Decryption failures are deliberately indistinguishable. Wrong keys,
// truncation, and tampering all surface as [ErrDecryptionFailed], so a
// caller relaying results cannot be used as a decryption oracle.
//
// # Base64 Encoding
//
// [ToBase64URL] and [FromBase64URL] implement URL-safe base64 without
// padding (RFC 4648 §5), used for all protocol values (keys, nonces,
// ciphertexts, signatures).
package crypto
