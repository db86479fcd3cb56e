package store

import (
	"errors"
	"sync"

	"tonsecurity/internal/domain"
)

// VerifierFileStore persists passcode verifiers as JSON files.
type VerifierFileStore struct {
	mu sync.Mutex
}

// NewVerifierFileStore returns a VerifierFileStore.
func NewVerifierFileStore() *VerifierFileStore { return &VerifierFileStore{} }

// SaveVerifier writes v to path.
func (s *VerifierFileStore) SaveVerifier(path string, v domain.Verifier) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(path, v, 0o600)
}

// LoadVerifier reads the verifier at path.
func (s *VerifierFileStore) LoadVerifier(path string) (domain.Verifier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var v domain.Verifier
	if err := readJSON(path, &v); err != nil {
		return domain.Verifier{}, err
	}
	if !v.Type.Valid() || len(v.Salt) == 0 || len(v.Hash) == 0 {
		return domain.Verifier{}, errors.New("verifier file: incomplete verifier")
	}
	return v, nil
}

// Compile-time assertion that VerifierFileStore implements domain.VerifierStore.
var _ domain.VerifierStore = (*VerifierFileStore)(nil)
