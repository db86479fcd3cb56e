package app

import (
	"github.com/rs/zerolog"

	"tonsecurity"
	"tonsecurity/internal/crypto"
	"tonsecurity/internal/domain"
	passcodesvc "tonsecurity/internal/services/passcode"
	"tonsecurity/internal/store"
)

// Wire bundles all stores and services for the CLI.
type Wire struct {
	Engine    *tonsecurity.Engine
	Hasher    domain.PasswordHasher
	Box       domain.Box
	Passcodes domain.PasscodeService
	KeyPairs  *store.KeyPairFileStore
	Verifiers domain.VerifierStore
}

// NewWire constructs the dependency graph from cfg. The engine is built
// first since it runs crypto.Init, so no command can reach an unchecked
// primitive. Commands that act as a host of the call boundary use Engine; the
// stores and services use the core types directly.
func NewWire(cfg Config, log zerolog.Logger) (*Wire, error) {
	engine, err := tonsecurity.New(
		tonsecurity.WithLogger(log),
		tonsecurity.WithMaxMemoryKiB(cfg.MaxMemoryKiB),
	)
	if err != nil {
		return nil, err
	}

	hasher := crypto.NewArgon2(cfg.MaxMemoryKiB)
	box := crypto.NewBox(nil)

	// High-level services
	passcodes := passcodesvc.New(hasher,
		passcodesvc.WithLogger(log.With().Str("package", "passcode").Logger()))

	// File-based stores
	keyPairs := store.NewKeyPairFileStore(hasher)
	verifiers := store.NewVerifierFileStore()

	return &Wire{
		Engine:    engine,
		Hasher:    hasher,
		Box:       box,
		Passcodes: passcodes,
		KeyPairs:  keyPairs,
		Verifiers: verifiers,
	}, nil
}
