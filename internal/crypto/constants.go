package crypto

const (
	// HKDFInfoSigning is the HKDF info string for deriving the signing key
	// seed from a master seed.
	HKDFInfoSigning = "peerseal/identity/signing/v1"
	// HKDFInfoEncryption is the HKDF info string for deriving the encryption
	// key seed from a master seed.
	HKDFInfoEncryption = "peerseal/identity/encryption/v1"

	// SignPublicKeySize is the size of an Ed25519 public key in bytes.
	SignPublicKeySize = 32
	// SignSecretKeySize is the size of an Ed25519 secret key in bytes.
	SignSecretKeySize = 64
	// SignatureSize is the size of a detached Ed25519 signature in bytes.
	SignatureSize = 64
	// SeedSize is the size of a key derivation seed in bytes.
	SeedSize = 32

	// BoxPublicKeySize is the size of an X25519 public key in bytes.
	BoxPublicKeySize = 32
	// BoxSecretKeySize is the size of an X25519 secret key in bytes.
	BoxSecretKeySize = 32
	// SharedKeySize is the size of a precomputed shared key in bytes.
	SharedKeySize = 32

	// NonceSize is the size of a box nonce in bytes.
	NonceSize = 24
	// BoxOverhead is the ciphertext expansion of a box seal in bytes.
	BoxOverhead = 16
	// SealedOverhead is the ciphertext expansion of a sealed box in bytes:
	// an ephemeral X25519 public key plus the box overhead.
	SealedOverhead = BoxPublicKeySize + BoxOverhead

	// DigestSize is the size of a BLAKE2b-256 digest in bytes.
	DigestSize = 32

	// MnemonicEntropyBits is the entropy drawn for new mnemonics,
	// producing 24 English words.
	MnemonicEntropyBits = 256
)

// AlgsCiphersuite is the canonical string representation of the algorithm suite.
var AlgsCiphersuite = "Ed25519:X25519-XSalsa20-Poly1305:HKDF-SHA-256:BLAKE2b-256"
