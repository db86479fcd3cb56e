package store

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"tonsecurity/internal/domain"
	"tonsecurity/internal/util/memzero"
)

// keyPairFile is the on-disk form of a keypair. Exactly one of Secret and
// Envelope is set.
type keyPairFile struct {
	V        int       `json:"v"`
	Public   []byte    `json:"public"`
	Secret   []byte    `json:"secret,omitempty"`
	Envelope *envelope `json:"envelope,omitempty"`
}

// KeyPairFileStore persists box keypairs as JSON files.
type KeyPairFileStore struct {
	mu     sync.Mutex
	sealer sealer
}

// KeyPairOption configures a KeyPairFileStore.
type KeyPairOption func(*KeyPairFileStore)

// WithEnvelopeParams overrides EnvelopeParams for newly protected files.
func WithEnvelopeParams(p domain.HashParams) KeyPairOption {
	return func(s *KeyPairFileStore) { s.sealer.params = p }
}

// WithRand sets the randomness source for envelope salts and nonces.
func WithRand(r io.Reader) KeyPairOption {
	return func(s *KeyPairFileStore) { s.sealer.rand = r }
}

// NewKeyPairFileStore returns a store that derives passphrase keys with h.
func NewKeyPairFileStore(h domain.PasswordHasher, opts ...KeyPairOption) *KeyPairFileStore {
	s := &KeyPairFileStore{sealer: sealer{hasher: h, params: EnvelopeParams}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SaveKeyPair writes kp to path. A non-empty passphrase seals the secret key
// with the public key as associated data.
func (s *KeyPairFileStore) SaveKeyPair(path, passphrase string, kp domain.KeyPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	secret := kp.Secret.Slice()
	defer memzero.Zero(secret)

	f := keyPairFile{V: envelopeFormatVersion, Public: kp.Public.Slice()}
	if passphrase == "" {
		f.Secret = secret
	} else {
		env, err := s.sealer.seal(passphrase, secret, f.Public)
		if err != nil {
			return fmt.Errorf("sealing key file: %w", err)
		}
		f.Envelope = env
	}
	if err := writeJSON(path, f, 0o600); err != nil {
		return fmt.Errorf("writing key file: %w", err)
	}
	return nil
}

// LoadKeyPair reads the keypair at path, opening the envelope with
// passphrase when the file is protected.
func (s *KeyPairFileStore) LoadKeyPair(path, passphrase string) (domain.KeyPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var f keyPairFile
	if err := readJSON(path, &f); err != nil {
		return domain.KeyPair{}, err
	}

	secret := f.Secret
	if f.Envelope != nil {
		if passphrase == "" {
			return domain.KeyPair{}, ErrPassphraseRequired
		}
		pt, err := s.sealer.open(passphrase, f.Envelope, f.Public)
		if err != nil {
			return domain.KeyPair{}, err
		}
		secret = pt
	}
	defer memzero.Zero(secret)

	if len(f.Public) != domain.PublicKeySize || len(secret) != domain.SecretKeySize {
		return domain.KeyPair{}, errors.New("key file: malformed key lengths")
	}
	var kp domain.KeyPair
	copy(kp.Public[:], f.Public)
	copy(kp.Secret[:], secret)
	return kp, nil
}

// Protected reports whether the key file at path is passphrase protected.
func (s *KeyPairFileStore) Protected(path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var f keyPairFile
	if err := readJSON(path, &f); err != nil {
		return false, err
	}
	return f.Envelope != nil, nil
}

// PublicKey reads only the public key of the key file at path. It never needs
// the passphrase.
func (s *KeyPairFileStore) PublicKey(path string) (domain.PublicKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var f keyPairFile
	if err := readJSON(path, &f); err != nil {
		return domain.PublicKey{}, err
	}
	if len(f.Public) != domain.PublicKeySize {
		return domain.PublicKey{}, errors.New("key file: malformed public key")
	}
	var pub domain.PublicKey
	copy(pub[:], f.Public)
	return pub, nil
}

// Compile-time assertion that KeyPairFileStore implements domain.KeyPairStore.
var _ domain.KeyPairStore = (*KeyPairFileStore)(nil)
