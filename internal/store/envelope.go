package store

import (
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	"tonsecurity/internal/domain"
	"tonsecurity/internal/util/memzero"
)

const envelopeFormatVersion = 1

// EnvelopeParams are the Argon2id costs for the passphrase key: 3 passes over
// 64 MiB with one lane.
var EnvelopeParams = domain.HashParams{
	TimeCost:     3,
	MemoryCost:   64 << 10,
	Parallelism:  1,
	OutputLength: chacha20poly1305.KeySize,
}

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the
	// envelope has been modified.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted key file")

	// ErrPassphraseRequired is returned when loading a protected key file
	// without a passphrase.
	ErrPassphraseRequired = errors.New("key file is passphrase protected")
)

// envelope is the on-disk JSON structure holding a sealed secret and its KDF
// parameters.
type envelope struct {
	V      int               `json:"v"`
	Salt   []byte            `json:"salt"`
	Nonce  []byte            `json:"nonce"`
	Params domain.HashParams `json:"params"`
	Cipher []byte            `json:"cipher"`
}

// sealer wraps secrets under a passphrase-derived XChaCha20-Poly1305 key.
type sealer struct {
	hasher domain.PasswordHasher
	params domain.HashParams
	rand   io.Reader
}

func (s sealer) seal(passphrase string, secret, ad []byte) (*envelope, error) {
	salt := make([]byte, 16)
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := io.ReadFull(s.random(), salt); err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(s.random(), nonce); err != nil {
		return nil, err
	}

	aead, err := s.aead(passphrase, salt, s.params)
	if err != nil {
		return nil, err
	}
	return &envelope{
		V:      envelopeFormatVersion,
		Salt:   salt,
		Nonce:  nonce,
		Params: s.params,
		Cipher: aead.Seal(nil, nonce, secret, ad),
	}, nil
}

func (s sealer) open(passphrase string, env *envelope, ad []byte) ([]byte, error) {
	if env.V > envelopeFormatVersion {
		return nil, fmt.Errorf("unsupported key file version %d", env.V)
	}
	if len(env.Nonce) != chacha20poly1305.NonceSizeX {
		return nil, ErrWrongPassphrase
	}
	aead, err := s.aead(passphrase, env.Salt, env.Params)
	if err != nil {
		return nil, err
	}
	pt, err := aead.Open(nil, env.Nonce, env.Cipher, ad)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

func (s sealer) aead(passphrase string, salt []byte, params domain.HashParams) (cipher.AEAD, error) {
	pw := []byte(passphrase)
	defer memzero.Zero(pw)

	key, err := s.hasher.DeriveKey(pw, salt, params)
	if err != nil {
		return nil, fmt.Errorf("deriving key file key: %w", err)
	}
	defer memzero.Zero(key)
	return chacha20poly1305.NewX(key)
}

func (s sealer) random() io.Reader {
	if s.rand == nil {
		return rand.Reader
	}
	return s.rand
}
