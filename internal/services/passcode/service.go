package passcode

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"unicode"

	"github.com/rs/zerolog"

	"tonsecurity/internal/domain"
	"tonsecurity/internal/util/memzero"
)

// SaltSize is the size of the random salt drawn for every verifier.
const SaltSize = 16

// WalletParams are the wallet's passcode costs: 10000 passes over 2^12 KiB
// with one lane and a 32-byte hash.
var WalletParams = domain.HashParams{
	TimeCost:     10000,
	MemoryCost:   1 << 12,
	Parallelism:  1,
	OutputLength: 32,
}

var (
	// ErrInvalidPasscode is returned when the passcode does not match its type.
	ErrInvalidPasscode = errors.New("passcode must be 4 or 6 digits matching its type")

	// ErrInvalidVerifier is returned when a stored verifier is incomplete.
	ErrInvalidVerifier = errors.New("invalid passcode verifier")
)

// Service creates and checks passcode verifiers with a backing hasher.
type Service struct {
	hasher domain.PasswordHasher
	params domain.HashParams
	rand   io.Reader
	log    zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithParams overrides WalletParams for new verifiers.
func WithParams(p domain.HashParams) Option { return func(s *Service) { s.params = p } }

// WithRand sets the salt source. Defaults to crypto/rand.Reader.
func WithRand(r io.Reader) Option { return func(s *Service) { s.rand = r } }

// WithLogger sets the service logger.
func WithLogger(l zerolog.Logger) Option { return func(s *Service) { s.log = l } }

// New returns a passcode service backed by h.
func New(h domain.PasswordHasher, opts ...Option) *Service {
	s := &Service{
		hasher: h,
		params: WalletParams,
		rand:   rand.Reader,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create draws a fresh salt and hashes passcode into a new verifier.
func (s *Service) Create(passcode string, kind domain.PasscodeType) (domain.Verifier, error) {
	if !validPasscode(passcode, kind) {
		return domain.Verifier{}, ErrInvalidPasscode
	}

	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(s.rand, salt); err != nil {
		return domain.Verifier{}, domain.E("passcode.create", domain.KindRandomnessUnavailable, err)
	}

	pw := []byte(passcode)
	defer memzero.Zero(pw)
	hash, err := s.hasher.DeriveKey(pw, salt, s.params)
	if err != nil {
		return domain.Verifier{}, fmt.Errorf("hashing passcode: %w", err)
	}

	s.log.Debug().
		Str("type", kind.String()).
		Int("time_cost", s.params.TimeCost).
		Int("memory_cost", s.params.MemoryCost).
		Msg("passcode verifier created")
	return domain.Verifier{Type: kind, Salt: salt, Hash: hash, Params: s.params}, nil
}

// Check reports whether passcode matches v. The comparison is constant time
// and the recomputed hash is wiped before returning.
func (s *Service) Check(passcode string, v domain.Verifier) (bool, error) {
	if len(v.Salt) == 0 || len(v.Hash) == 0 || v.Params.OutputLength != len(v.Hash) {
		return false, ErrInvalidVerifier
	}
	if passcode == "" {
		return false, nil
	}

	pw := []byte(passcode)
	defer memzero.Zero(pw)
	got, err := s.hasher.DeriveKey(pw, v.Salt, v.Params)
	if err != nil {
		return false, fmt.Errorf("hashing passcode: %w", err)
	}
	defer memzero.Zero(got)

	ok := subtle.ConstantTimeCompare(got, v.Hash) == 1
	s.log.Debug().Bool("match", ok).Msg("passcode checked")
	return ok, nil
}

// validPasscode enforces the digit policy of the passcode type.
func validPasscode(passcode string, kind domain.PasscodeType) bool {
	if !kind.Valid() || len(passcode) != int(kind) {
		return false
	}
	for _, r := range passcode {
		if !unicode.IsDigit(r) || r > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// Compile-time assertion that Service implements domain.PasscodeService.
var _ domain.PasscodeService = (*Service)(nil)
