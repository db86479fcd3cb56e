package crypto

import (
	"crypto/subtle"
	"errors"

	"github.com/cloudflare/circl/dh/x25519"
	"golang.org/x/crypto/curve25519"

	"tonsecurity/internal/domain"
	"tonsecurity/internal/util/memzero"
)

// SelfTest seals message with (publicKey2, secretKey1), opens it with
// (publicKey1, secretKey2) and requires the round trip to reproduce message.
// It also checks keypair 1 and the key agreement against an independent
// X25519 implementation. It is a diagnostic for installation and startup,
// not a data path.
func (b *Box) SelfTest(message, publicKey1, secretKey1, publicKey2, secretKey2 []byte) error {
	const op = "box.selftest"

	sealed, err := b.Seal(message, publicKey2, secretKey1)
	if err != nil {
		return err
	}
	opened, err := b.Open(sealed, publicKey1, secretKey2)
	if err != nil {
		if domain.KindOf(err) == domain.KindInvalidKey {
			return err
		}
		return domain.E(op, domain.KindSelfTestFailed, err)
	}
	defer memzero.Zero(opened)

	if len(opened) != len(message) || subtle.ConstantTimeCompare(opened, message) != 1 {
		return domain.Ef(op, domain.KindSelfTestFailed, "round trip does not reproduce the message")
	}
	if err := crossCheckX25519(publicKey1, secretKey1, publicKey2, secretKey2); err != nil {
		return domain.E(op, domain.KindSelfTestFailed, err)
	}
	return nil
}

var (
	errPublicKeyMismatch = errors.New("public key 1 does not belong to secret key 1")
	errAgreementMismatch = errors.New("x25519 implementations disagree on the shared secret")
	errLowOrderPoint     = errors.New("low-order public key")
)

// crossCheckX25519 recomputes keypair 1 and the shared secret with circl and
// compares against golang.org/x/crypto. Key lengths are already validated by
// Seal and Open.
func crossCheckX25519(pub1, sec1, pub2, sec2 []byte) error {
	var s1, p1, p2, derived, shared x25519.Key
	copy(s1[:], sec1)
	copy(p2[:], pub2)
	defer memzero.ZeroAll(s1[:], shared[:])

	x25519.KeyGen(&derived, &s1)
	copy(p1[:], pub1)
	if subtle.ConstantTimeCompare(derived[:], p1[:]) != 1 {
		return errPublicKeyMismatch
	}

	if !x25519.Shared(&shared, &s1, &p2) {
		return errLowOrderPoint
	}
	ref, err := curve25519.X25519(sec2, pub1)
	if err != nil {
		return err
	}
	defer memzero.Zero(ref)
	if subtle.ConstantTimeCompare(shared[:], ref) != 1 {
		return errAgreementMismatch
	}
	return nil
}
