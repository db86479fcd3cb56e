package tonsecurity

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"

	"tonsecurity/internal/crypto"
	"tonsecurity/internal/domain"
	"tonsecurity/internal/util/memzero"
)

// Engine is the call boundary over the crypto core. It is safe for
// concurrent use.
type Engine struct {
	hasher domain.PasswordHasher
	box    domain.Box
	log    zerolog.Logger
}

type options struct {
	log          zerolog.Logger
	maxMemoryKiB uint32
	rand         io.Reader
}

// Option configures an Engine.
type Option func(*options)

// WithLogger sets the logger failures are reported to. Defaults to a no-op
// logger.
func WithLogger(l zerolog.Logger) Option { return func(o *options) { o.log = l } }

// WithMaxMemoryKiB caps the Argon2 memory cost HashPassword accepts. Zero
// keeps the default of 4 GiB.
func WithMaxMemoryKiB(kib uint32) Option { return func(o *options) { o.maxMemoryKiB = kib } }

// WithRandom replaces crypto/rand as the source of keys and nonces.
func WithRandom(r io.Reader) Option { return func(o *options) { o.rand = r } }

// New runs the process-wide crypto initialisation and returns an Engine.
// Initialisation happens once; later calls reuse its outcome.
func New(opts ...Option) (*Engine, error) {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := crypto.Init(); err != nil {
		o.log.Error().Err(err).Str("kind", domain.KindOf(err).String()).Msg("crypto initialisation failed")
		return nil, err
	}
	return &Engine{
		hasher: crypto.NewArgon2(o.maxMemoryKiB),
		box:    crypto.NewBox(o.rand),
		log:    o.log.With().Str("package", "tonsecurity").Logger(),
	}, nil
}

// HashPassword derives hashLen bytes from password and salt with Argon2id.
// memoryCost is in KiB.
func (e *Engine) HashPassword(password, salt []byte, timeCost, memoryCost, parallelism, hashLen int) Result {
	params := domain.HashParams{
		TimeCost:     timeCost,
		MemoryCost:   memoryCost,
		Parallelism:  parallelism,
		OutputLength: hashLen,
	}
	key, err := e.hasher.DeriveKey(password, salt, params)
	if err != nil {
		return e.fail("hash_password", err, func(ev *zerolog.Event) {
			ev.Int("time_cost", timeCost).
				Int("memory_cost", memoryCost).
				Int("parallelism", parallelism).
				Int("hash_len", hashLen).
				Int("salt_len", len(salt))
		})
	}
	return success(key)
}

// GenerateKeyPair returns a fresh keypair as public||secret, KeyPairSize
// bytes.
func (e *Engine) GenerateKeyPair() Result {
	kp, err := e.box.GenerateKeyPair()
	if err != nil {
		return e.fail("generate_keypair", err, nil)
	}
	out := kp.Combined()
	memzero.Zero(kp.Secret[:])
	return success(out)
}

// SealMessage encrypts and authenticates message from the holder of
// senderSecretKey to recipientPublicKey.
func (e *Engine) SealMessage(message, recipientPublicKey, senderSecretKey []byte) Result {
	sealed, err := e.box.Seal(message, recipientPublicKey, senderSecretKey)
	if err != nil {
		return e.fail("seal_message", err, func(ev *zerolog.Event) {
			ev.Int("message_len", len(message)).
				Str("recipient", fingerprint(recipientPublicKey))
		})
	}
	return success(sealed)
}

// OpenMessage verifies and decrypts sealedMessage sent by senderPublicKey.
func (e *Engine) OpenMessage(sealedMessage, senderPublicKey, recipientSecretKey []byte) Result {
	msg, err := e.box.Open(sealedMessage, senderPublicKey, recipientSecretKey)
	if err != nil {
		return e.fail("open_message", err, func(ev *zerolog.Event) {
			ev.Int("sealed_len", len(sealedMessage)).
				Str("sender", fingerprint(senderPublicKey))
		})
	}
	return success(msg)
}

// SelfTest seals message from keypair 1 to keypair 2 and opens it again. The
// Result carries no value; it fails with KindSelfTestFailed on a mismatch.
func (e *Engine) SelfTest(message, publicKey1, secretKey1, publicKey2, secretKey2 []byte) Result {
	if err := e.box.SelfTest(message, publicKey1, secretKey1, publicKey2, secretKey2); err != nil {
		return e.fail("self_test", err, nil)
	}
	e.log.Debug().Msg("self-test passed")
	return success(nil)
}

// fail logs err under a fresh operation ID and collapses it to a Result.
func (e *Engine) fail(op string, err error, fields func(*zerolog.Event)) Result {
	kind := domain.KindOf(err)
	ev := e.log.Warn().
		Str("op", op).
		Str("op_id", ksuid.New().String()).
		Str("kind", kind.String()).
		Err(err)
	if fields != nil {
		fields(ev)
	}
	ev.Msg("operation failed")
	return failure(kind)
}

// fingerprint names a public key in logs without printing it.
func fingerprint(pub []byte) string {
	if len(pub) != PublicKeySize {
		return "invalid"
	}
	return string(crypto.Fingerprint(pub))
}
