package crypto

import (
	"golang.org/x/crypto/argon2"

	"tonsecurity/internal/domain"
)

// Argon2 derives keys with Argon2id. It holds no mutable state and is safe
// for concurrent use.
type Argon2 struct {
	maxMemoryKiB uint32
}

// NewArgon2 returns a hasher that refuses derivations needing more than
// maxMemoryKiB of working memory. Zero selects DefaultMaxMemoryKiB.
func NewArgon2(maxMemoryKiB uint32) *Argon2 {
	if maxMemoryKiB == 0 {
		maxMemoryKiB = DefaultMaxMemoryKiB
	}
	return &Argon2{maxMemoryKiB: maxMemoryKiB}
}

// MaxMemoryKiB reports the hasher's memory budget.
func (a *Argon2) MaxMemoryKiB() uint32 { return a.maxMemoryKiB }

// DeriveKey runs Argon2id (version 0x13) over password and salt and returns
// exactly params.OutputLength bytes. Identical inputs always give identical
// output.
//
// It fails with ErrInvalidInput for an empty password or a salt shorter than
// MinSaltSize, ErrInvalidParameters for costs outside the Argon2 limits, and
// ErrResourceExhausted when the memory cost exceeds the budget or the memory
// the host has available.
func (a *Argon2) DeriveKey(password, salt []byte, params domain.HashParams) ([]byte, error) {
	const op = "argon2.derive"

	if len(password) == 0 {
		return nil, domain.Ef(op, domain.KindInvalidInput, "empty password")
	}
	if len(salt) == 0 {
		return nil, domain.Ef(op, domain.KindInvalidInput, "empty salt")
	}
	if len(salt) < MinSaltSize {
		return nil, domain.Ef(op, domain.KindInvalidInput, "salt: want at least %d bytes, got %d", MinSaltSize, len(salt))
	}
	if err := ValidateParams(params); err != nil {
		return nil, domain.E(op, domain.KindInvalidParameters, err)
	}
	if uint64(params.MemoryCost) > uint64(a.maxMemoryKiB) {
		return nil, domain.Ef(op, domain.KindResourceExhausted,
			"memory cost %d KiB exceeds budget of %d KiB", params.MemoryCost, a.maxMemoryKiB)
	}

	// The Go runtime cannot recover from running out of memory, so the
	// request is checked against what the host can still provide.
	if avail := hostAvailableKiB(); avail != 0 && uint64(params.MemoryCost) > avail {
		return nil, domain.Ef(op, domain.KindResourceExhausted,
			"memory cost %d KiB exceeds the %d KiB available to the process", params.MemoryCost, avail)
	}

	key := argon2.IDKey(
		password,
		salt,
		uint32(params.TimeCost),
		uint32(params.MemoryCost),
		uint8(params.Parallelism),
		uint32(params.OutputLength),
	)
	return key, nil
}

var defaultArgon2 = NewArgon2(0)

// DeriveKey derives with the default memory budget.
func DeriveKey(password, salt []byte, params domain.HashParams) ([]byte, error) {
	return defaultArgon2.DeriveKey(password, salt, params)
}

// Compile-time assertion that Argon2 implements domain.PasswordHasher.
var _ domain.PasswordHasher = (*Argon2)(nil)
