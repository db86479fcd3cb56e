package interfaces

import domaintypes "tonsecurity/internal/domain/types"

// PasswordHasher derives keys and verifiers from low-entropy passwords.
type PasswordHasher interface {
	DeriveKey(password, salt []byte, params domaintypes.HashParams) ([]byte, error)
}

// Box is public-key authenticated encryption between two keypairs.
type Box interface {
	GenerateKeyPair() (domaintypes.KeyPair, error)
	KeyPairFromSecret(secret []byte) (domaintypes.KeyPair, error)
	Seal(message, recipientPublicKey, senderSecretKey []byte) ([]byte, error)
	Open(sealed, senderPublicKey, recipientSecretKey []byte) ([]byte, error)
	SelfTest(message, publicKey1, secretKey1, publicKey2, secretKey2 []byte) error
}
