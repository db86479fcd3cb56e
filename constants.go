package tonsecurity

import "tonsecurity/internal/crypto"

// Buffer sizes and algorithm identifiers. Callers can size buffers and
// validate lengths against these before calling.
const (
	PublicKeySize   = crypto.PublicKeySize
	SecretKeySize   = crypto.SecretKeySize
	NonceSize       = crypto.NonceSize
	TagSize         = crypto.TagSize
	KeyPairSize     = PublicKeySize + SecretKeySize
	SealOverhead    = crypto.SealOverhead
	MinSaltSize     = crypto.MinSaltSize
	MaxOutputLength = crypto.MaxOutputLength
	Algorithm       = crypto.Algorithm
	Argon2Version   = crypto.Argon2Version
)
