package domain

import (
	interfaces "tonsecurity/internal/domain/interfaces"
	types "tonsecurity/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Fingerprint  = types.Fingerprint
	PublicKey    = types.PublicKey
	SecretKey    = types.SecretKey
	KeyPair      = types.KeyPair
	HashParams   = types.HashParams
	PasscodeType = types.PasscodeType
	Verifier     = types.Verifier
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	PasswordHasher  = interfaces.PasswordHasher
	Box             = interfaces.Box
	PasscodeService = interfaces.PasscodeService
	KeyPairStore    = interfaces.KeyPairStore
	VerifierStore   = interfaces.VerifierStore
)

// Re-exported constants.
const (
	PublicKeySize = types.PublicKeySize
	SecretKeySize = types.SecretKeySize
	KeyPairSize   = types.KeyPairSize

	Pin4 = types.Pin4
	Pin6 = types.Pin6
)

// SplitKeyPair parses a combined public||secret buffer.
func SplitKeyPair(b []byte) (KeyPair, error) { return types.SplitKeyPair(b) }
