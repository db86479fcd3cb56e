// Package store provides file-based persistence for the CLI host.
//
// Files are JSON, written through a temp file and an atomic rename with
// 0600 permissions. Every store serialises access with an internal mutex.
//
// The package includes stores for:
//   - Box keypairs, optionally sealed under a passphrase (KeyPairFileStore)
//   - Passcode verifiers (VerifierFileStore)
package store
