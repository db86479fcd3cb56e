package types

import "fmt"

const (
	// PublicKeySize is the length of an X25519 public key in bytes.
	PublicKeySize = 32
	// SecretKeySize is the length of an X25519 secret key in bytes.
	SecretKeySize = 32
	// KeyPairSize is the length of a combined public||secret key.
	KeyPairSize = PublicKeySize + SecretKeySize
)

// PublicKey is a Curve25519 public key.
type PublicKey [PublicKeySize]byte

// Slice returns the key as a []byte.
func (p PublicKey) Slice() []byte { return p[:] }

// SecretKey is a Curve25519 secret key.
type SecretKey [SecretKeySize]byte

// Slice returns the key as a []byte.
func (k SecretKey) Slice() []byte { return k[:] }

// KeyPair is a box keypair. Public is derived from Secret.
type KeyPair struct {
	Public PublicKey `json:"public"`
	Secret SecretKey `json:"secret"`
}

// Combined returns public||secret as a fresh 64-byte slice.
func (kp KeyPair) Combined() []byte {
	out := make([]byte, 0, KeyPairSize)
	out = append(out, kp.Public[:]...)
	return append(out, kp.Secret[:]...)
}

// SplitKeyPair parses a combined public||secret buffer.
func SplitKeyPair(b []byte) (KeyPair, error) {
	if len(b) != KeyPairSize {
		return KeyPair{}, fmt.Errorf("keypair: want %d bytes, got %d", KeyPairSize, len(b))
	}
	var kp KeyPair
	copy(kp.Public[:], b[:PublicKeySize])
	copy(kp.Secret[:], b[PublicKeySize:])
	return kp, nil
}
