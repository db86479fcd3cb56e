package crypto

import (
	"crypto/rand"
	"io"
	"sync"

	"tonsecurity/internal/domain"
	"tonsecurity/internal/util/memzero"
)

var (
	initOnce sync.Once
	initErr  error
)

// Init prepares the package for use: it registers the parameter validation
// rules, probes crypto/rand and runs the box and Argon2id known-answer tests.
// Init is idempotent and safe to call from several goroutines; every call
// returns the result of the first.
func Init() error {
	initOnce.Do(func() { initErr = initialize() })
	return initErr
}

func initialize() error {
	const op = "crypto.init"

	paramsValidator()

	var probe [32]byte
	if _, err := io.ReadFull(rand.Reader, probe[:]); err != nil {
		return domain.E(op, domain.KindRandomnessUnavailable, err)
	}
	memzero.Zero(probe[:])

	if err := knownAnswerBox(); err != nil {
		return domain.E(op, domain.KindSelfTestFailed, err)
	}
	if err := knownAnswerArgon2(); err != nil {
		return domain.E(op, domain.KindSelfTestFailed, err)
	}
	return nil
}
