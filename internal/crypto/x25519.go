package crypto

import (
	"fmt"

	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/salsa20/salsa"

	"tonsecurity/internal/domain"
	"tonsecurity/internal/util/memzero"
)

var hsalsaZeroInput [16]byte

// publicFromSecret multiplies the (clamped) secret by the base point.
func publicFromSecret(sec *domain.SecretKey) (pub domain.PublicKey, err error) {
	pb, err := curve25519.X25519(sec[:], curve25519.Basepoint)
	if err != nil {
		return pub, err
	}
	copy(pub[:], pb)
	return pub, nil
}

// precompute derives the XSalsa20-Poly1305 key for a keypair pairing, the
// same value as box.Precompute. Unlike box.Precompute it rejects low-order
// public keys, which would otherwise yield an all-zero shared secret.
func precompute(sec *domain.SecretKey, pub *domain.PublicKey) (*[32]byte, error) {
	dh, err := curve25519.X25519(sec[:], pub[:])
	if err != nil {
		return nil, err
	}
	var s [32]byte
	copy(s[:], dh)
	memzero.Zero(dh)

	k := new([32]byte)
	salsa.HSalsa20(k, &hsalsaZeroInput, &s, &salsa.Sigma)
	memzero.Zero(s[:])
	return k, nil
}

func parsePublicKey(b []byte, name string) (pub domain.PublicKey, err error) {
	if len(b) != PublicKeySize {
		return pub, fmt.Errorf("%s: want %d bytes, got %d", name, PublicKeySize, len(b))
	}
	copy(pub[:], b)
	return pub, nil
}

func parseSecretKey(b []byte, name string) (sec domain.SecretKey, err error) {
	if len(b) != SecretKeySize {
		return sec, fmt.Errorf("%s: want %d bytes, got %d", name, SecretKeySize, len(b))
	}
	copy(sec[:], b)
	return sec, nil
}
