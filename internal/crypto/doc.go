// Package crypto is the cryptographic engine of tonsecurity.
//
// Contents
//
//   - Argon2id password hashing with validated cost parameters (Argon2,
//     DeriveKey, ValidateParams)
//   - NaCl box: X25519 key agreement with XSalsa20-Poly1305 (Box: key
//     generation, Seal, Open, SelfTest)
//   - Idempotent process-wide initialization with known-answer tests (Init)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Sealed message layout
//
//	| nonce (24) | Poly1305 tag (16) | XSalsa20 ciphertext (len(message)) |
//
// This is crypto_box_easy output with the nonce prepended.
//
// # Notes
//
// Every failure is a *domain.Error carrying a domain.Kind; use errors.Is with
// the domain sentinels or domain.KindOf. Secrets handled here (shared keys,
// precomputed keys, copies of secret keys) are wiped with memzero before
// returning, on error paths too. The package does no logging and no I/O
// beyond reading its random source.
package crypto
