package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/box"

	"tonsecurity/internal/domain"
	"tonsecurity/internal/util/memzero"
)

// Box implements NaCl crypto_box (X25519, XSalsa20-Poly1305) with the nonce
// carried in front of the ciphertext. A Box is safe for concurrent use as
// long as its random source is.
type Box struct {
	rand io.Reader
}

// NewBox returns a Box drawing keys and nonces from r. A nil r selects
// crypto/rand.Reader.
func NewBox(r io.Reader) *Box {
	if r == nil {
		r = rand.Reader
	}
	return &Box{rand: r}
}

// GenerateKeyPair draws a fresh secret key and derives its public key.
func (b *Box) GenerateKeyPair() (domain.KeyPair, error) {
	const op = "box.keypair"

	var sec domain.SecretKey
	defer memzero.Zero(sec[:])
	if _, err := io.ReadFull(b.rand, sec[:]); err != nil {
		return domain.KeyPair{}, domain.E(op, domain.KindRandomnessUnavailable, err)
	}
	pub, err := publicFromSecret(&sec)
	if err != nil {
		return domain.KeyPair{}, domain.E(op, domain.KindInvalidKey, err)
	}
	return domain.KeyPair{Public: pub, Secret: sec}, nil
}

// KeyPairFromSecret rebuilds the keypair for an existing secret key. The
// public key is a pure function of the secret.
func (b *Box) KeyPairFromSecret(secret []byte) (domain.KeyPair, error) {
	const op = "box.keypair"

	sec, err := parseSecretKey(secret, "secret key")
	defer memzero.Zero(sec[:])
	if err != nil {
		return domain.KeyPair{}, domain.E(op, domain.KindInvalidKey, err)
	}
	pub, err := publicFromSecret(&sec)
	if err != nil {
		return domain.KeyPair{}, domain.E(op, domain.KindInvalidKey, err)
	}
	return domain.KeyPair{Public: pub, Secret: sec}, nil
}

// Seal encrypts and authenticates message from the holder of senderSecretKey
// to the holder of recipientPublicKey. The result is nonce || tag ||
// ciphertext with a fresh random nonce. message may be empty.
func (b *Box) Seal(message, recipientPublicKey, senderSecretKey []byte) ([]byte, error) {
	const op = "box.seal"

	pub, err := parsePublicKey(recipientPublicKey, "recipient public key")
	if err != nil {
		return nil, domain.E(op, domain.KindInvalidKey, err)
	}
	sec, err := parseSecretKey(senderSecretKey, "sender secret key")
	defer memzero.Zero(sec[:])
	if err != nil {
		return nil, domain.E(op, domain.KindInvalidKey, err)
	}
	key, err := precompute(&sec, &pub)
	if err != nil {
		return nil, domain.E(op, domain.KindInvalidKey, fmt.Errorf("recipient public key: %w", err))
	}
	defer memzero.Zero(key[:])

	var nonce [NonceSize]byte
	if _, err := io.ReadFull(b.rand, nonce[:]); err != nil {
		return nil, domain.E(op, domain.KindRandomnessUnavailable, err)
	}

	out := make([]byte, NonceSize, SealOverhead+len(message))
	copy(out, nonce[:])
	return box.SealAfterPrecomputation(out, message, &nonce, key), nil
}

// Open verifies and decrypts a message produced by Seal. The tag is checked
// before any plaintext is produced; on failure no bytes are returned.
func (b *Box) Open(sealed, senderPublicKey, recipientSecretKey []byte) ([]byte, error) {
	const op = "box.open"

	pub, err := parsePublicKey(senderPublicKey, "sender public key")
	if err != nil {
		return nil, domain.E(op, domain.KindInvalidKey, err)
	}
	sec, err := parseSecretKey(recipientSecretKey, "recipient secret key")
	defer memzero.Zero(sec[:])
	if err != nil {
		return nil, domain.E(op, domain.KindInvalidKey, err)
	}
	if len(sealed) < SealOverhead {
		return nil, domain.Ef(op, domain.KindAuthenticationFailed,
			"sealed message: want at least %d bytes, got %d", SealOverhead, len(sealed))
	}
	key, err := precompute(&sec, &pub)
	if err != nil {
		return nil, domain.E(op, domain.KindInvalidKey, fmt.Errorf("sender public key: %w", err))
	}
	defer memzero.Zero(key[:])

	var nonce [NonceSize]byte
	copy(nonce[:], sealed[:NonceSize])
	message, ok := box.OpenAfterPrecomputation(nil, sealed[NonceSize:], &nonce, key)
	if !ok {
		return nil, domain.E(op, domain.KindAuthenticationFailed, nil)
	}
	if message == nil {
		message = []byte{}
	}
	return message, nil
}

// Compile-time assertion that Box implements domain.Box.
var _ domain.Box = (*Box)(nil)
