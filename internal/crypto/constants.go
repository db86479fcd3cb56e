package crypto

import (
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/box"

	"tonsecurity/internal/domain"
)

const (
	// PublicKeySize is the size of a box public key in bytes.
	PublicKeySize = domain.PublicKeySize
	// SecretKeySize is the size of a box secret key in bytes.
	SecretKeySize = domain.SecretKeySize
	// NonceSize is the size of the XSalsa20 nonce prepended to sealed messages.
	NonceSize = 24
	// TagSize is the size of the Poly1305 authenticator.
	TagSize = box.Overhead
	// SealOverhead is how much longer a sealed message is than its plaintext.
	SealOverhead = NonceSize + TagSize

	// Algorithm is the fixed password hashing variant.
	Algorithm = "argon2id"
	// Argon2Version is the Argon2 version implemented by golang.org/x/crypto.
	Argon2Version = argon2.Version
	// MinSaltSize is the shortest salt DeriveKey accepts.
	MinSaltSize = 16
	// MaxOutputLength is the longest derived key DeriveKey produces.
	MaxOutputLength = 1024
	// MinMemoryPerLane is the Argon2 minimum of 8 KiB per lane.
	MinMemoryPerLane = 8
	// DefaultMaxMemoryKiB is the default memory budget of 4 GiB.
	DefaultMaxMemoryKiB = 4 << 20
)
