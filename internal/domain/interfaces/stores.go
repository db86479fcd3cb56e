package interfaces

import domaintypes "tonsecurity/internal/domain/types"

// KeyPairStore persists a box keypair for the CLI host. An empty passphrase
// stores the secret key unprotected.
type KeyPairStore interface {
	SaveKeyPair(path, passphrase string, kp domaintypes.KeyPair) error
	LoadKeyPair(path, passphrase string) (domaintypes.KeyPair, error)
}

// VerifierStore persists a passcode verifier for the CLI host.
type VerifierStore interface {
	SaveVerifier(path string, v domaintypes.Verifier) error
	LoadVerifier(path string) (domaintypes.Verifier, error)
}
