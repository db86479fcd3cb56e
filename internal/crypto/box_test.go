package crypto_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"tonsecurity/internal/crypto"
	"tonsecurity/internal/domain"
)

// NaCl tests/box.c vector.
var (
	aliceSecret = fromHex("77076d0a7318a57d3c16c17251b26645df4c2f87ebc0992ab177fba51db92c2a")
	alicePublic = fromHex("8520f0098930a754748b7ddcb43ef75a0dbf3a0d26381af4eba4a98eaa9b4e6a")
	bobSecret   = fromHex("5dab087e624a8a4b79e17f8b83800ee66f3bb1292618b6fd1c2f8b27ff88e0eb")
	bobPublic   = fromHex("de9edb7d7b7dc1b4d35b61c2ece435373f8343c85b78674dadfc7e146f882b4f")
	boxNonce    = fromHex("69696ee955b62b73cd62bda875fc73d68219e0036b7a0b37")
	boxMessage  = fromHex(`
		be075fc53c81f2d5cf141316ebeb0c7b5228c52a4c62cbd44b66849b64244ffc
		e5ecbaaf33bd751a1ac728d45e6c61296cdc3c01233561f41db66cce314adb31
		0e3be8250c46f06dceea3a7fa1348057e2f6556ad6b1318a024a838f21af1fde
		048977eb48f59ffd4924ca1c60902e52f0a089bc76897040e082f93776384864
		5e0705`)
	boxSealed = fromHex(`
		69696ee955b62b73cd62bda875fc73d68219e0036b7a0b37f3ffc7703f9400e5
		2a7dfb4b3d3305d98e993b9f48681273c29650ba32fc76ce48332ea7164d96a4
		476fb8c531a1186ac0dfc17c98dce87b4da7f011ec48c97271d2c20f9b928fe2
		270d6fb863d51738b48eeee314a7cc8ab932164548e526ae90224368517acfea
		bd6bb3732bc0e9da99832b61ca01b6de56244a9e88d5f9b37973f622a43d14a6
		599b1f654cb45a74e355a5`)
	boxSealedEmpty = fromHex("69696ee955b62b73cd62bda875fc73d68219e0036b7a0b372539121d8e234e652d651fa4c8cff880")
)

func fromHex(s string) []byte {
	b, err := hex.DecodeString(strings.Join(strings.Fields(s), ""))
	if err != nil {
		panic(err)
	}
	return b
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy source closed") }

func newKeyPair(t *testing.T) domain.KeyPair {
	t.Helper()
	kp, err := crypto.NewBox(nil).GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	return kp
}

func TestSeal_KnownAnswer(t *testing.T) {
	b := crypto.NewBox(bytes.NewReader(boxNonce))
	got, err := b.Seal(boxMessage, bobPublic, aliceSecret)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if !bytes.Equal(got, boxSealed) {
		t.Fatalf("Seal mismatch:\n got %x\nwant %x", got, boxSealed)
	}

	opened, err := crypto.NewBox(nil).Open(boxSealed, alicePublic, bobSecret)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !bytes.Equal(opened, boxMessage) {
		t.Fatal("Open did not reproduce the vector message")
	}
}

func TestSeal_KnownAnswerEmpty(t *testing.T) {
	got, err := crypto.NewBox(bytes.NewReader(boxNonce)).Seal(nil, bobPublic, aliceSecret)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if !bytes.Equal(got, boxSealedEmpty) {
		t.Fatalf("Seal(empty) = %x, want %x", got, boxSealedEmpty)
	}
	if len(got) != crypto.SealOverhead {
		t.Fatalf("len = %d, want %d", len(got), crypto.SealOverhead)
	}
}

func TestKeyPairFromSecret(t *testing.T) {
	b := crypto.NewBox(nil)
	for _, tc := range []struct{ sec, pub []byte }{
		{aliceSecret, alicePublic},
		{bobSecret, bobPublic},
	} {
		kp, err := b.KeyPairFromSecret(tc.sec)
		if err != nil {
			t.Fatalf("KeyPairFromSecret: %v", err)
		}
		if !bytes.Equal(kp.Public.Slice(), tc.pub) {
			t.Errorf("public = %x, want %x", kp.Public, tc.pub)
		}
		if !bytes.Equal(kp.Secret.Slice(), tc.sec) {
			t.Error("secret was altered")
		}
	}

	if _, err := b.KeyPairFromSecret(make([]byte, 31)); !errors.Is(err, domain.ErrInvalidKey) {
		t.Fatalf("short secret: error = %v, want ErrInvalidKey", err)
	}
}

func TestGenerateKeyPair_PublicIsFunctionOfSecret(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, 32)
	a, err := crypto.NewBox(bytes.NewReader(seed)).GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	b, err := crypto.NewBox(bytes.NewReader(seed)).GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	if a != b {
		t.Fatal("same seed gave different keypairs")
	}
	again, err := crypto.NewBox(nil).KeyPairFromSecret(a.Secret.Slice())
	if err != nil {
		t.Fatalf("KeyPairFromSecret: %v", err)
	}
	if again.Public != a.Public {
		t.Fatal("re-derived public key differs")
	}
}

func TestGenerateKeyPair_Uniqueness(t *testing.T) {
	a := newKeyPair(t)
	b := newKeyPair(t)
	if a.Secret == b.Secret || a.Public == b.Public {
		t.Fatal("two generated keypairs collide")
	}
}

func TestGenerateKeyPair_RandomnessUnavailable(t *testing.T) {
	_, err := crypto.NewBox(failingReader{}).GenerateKeyPair()
	if !errors.Is(err, domain.ErrRandomnessUnavailable) {
		t.Fatalf("error = %v, want ErrRandomnessUnavailable", err)
	}

	_, err = crypto.NewBox(bytes.NewReader(make([]byte, 10))).GenerateKeyPair()
	if !errors.Is(err, domain.ErrRandomnessUnavailable) {
		t.Fatalf("short read: error = %v, want ErrRandomnessUnavailable", err)
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	alice := newKeyPair(t)
	bob := newKeyPair(t)
	b := crypto.NewBox(nil)

	messages := map[string][]byte{
		"empty":  {},
		"nil":    nil,
		"short":  []byte("hi"),
		"binary": {0x00, 0xff, 0x00, 0xff},
		"large":  bytes.Repeat([]byte("ton connect "), 10000),
	}
	for name, m := range messages {
		t.Run(name, func(t *testing.T) {
			sealed, err := b.Seal(m, bob.Public.Slice(), alice.Secret.Slice())
			if err != nil {
				t.Fatalf("Seal: %v", err)
			}
			if len(sealed) != len(m)+crypto.SealOverhead {
				t.Fatalf("sealed len = %d, want %d", len(sealed), len(m)+crypto.SealOverhead)
			}
			got, err := b.Open(sealed, alice.Public.Slice(), bob.Secret.Slice())
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			if got == nil {
				t.Fatal("Open returned nil for a valid message")
			}
			if !bytes.Equal(got, m) {
				t.Fatalf("round trip = %q, want %q", got, m)
			}
		})
	}
}

func TestSealOpen_Concurrent(t *testing.T) {
	b := crypto.NewBox(nil)
	const workers = 16

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			msg := []byte(strings.Repeat("m", i*7))
			sealed, err := b.Seal(msg, bobPublic, aliceSecret)
			if err != nil {
				errs <- err
				return
			}
			opened, err := b.Open(sealed, alicePublic, bobSecret)
			if err != nil {
				errs <- err
				return
			}
			if !bytes.Equal(opened, msg) {
				errs <- errors.New("concurrent round trip differs")
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestSeal_FreshNonce(t *testing.T) {
	alice := newKeyPair(t)
	bob := newKeyPair(t)
	b := crypto.NewBox(nil)
	m := []byte("same message")

	s1, err := b.Seal(m, bob.Public.Slice(), alice.Secret.Slice())
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	s2, err := b.Seal(m, bob.Public.Slice(), alice.Secret.Slice())
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if bytes.Equal(s1[:crypto.NonceSize], s2[:crypto.NonceSize]) {
		t.Fatal("nonce reused")
	}
	if bytes.Equal(s1, s2) {
		t.Fatal("identical plaintexts gave identical sealed messages")
	}
}

func TestOpen_TamperDetection(t *testing.T) {
	alice := newKeyPair(t)
	bob := newKeyPair(t)
	b := crypto.NewBox(nil)

	sealed, err := b.Seal([]byte("transfer 1 TON"), bob.Public.Slice(), alice.Secret.Slice())
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	for i := 0; i < len(sealed)*8; i++ {
		tampered := append([]byte(nil), sealed...)
		tampered[i/8] ^= 1 << (i % 8)
		got, err := b.Open(tampered, alice.Public.Slice(), bob.Secret.Slice())
		if !errors.Is(err, domain.ErrAuthenticationFailed) {
			t.Fatalf("bit %d: error = %v, want ErrAuthenticationFailed", i, err)
		}
		if got != nil {
			t.Fatalf("bit %d: plaintext released on failure", i)
		}
	}
}

func TestOpen_Truncated(t *testing.T) {
	alice := newKeyPair(t)
	bob := newKeyPair(t)
	b := crypto.NewBox(nil)

	for _, n := range []int{0, 1, crypto.NonceSize, crypto.SealOverhead - 1} {
		_, err := b.Open(make([]byte, n), alice.Public.Slice(), bob.Secret.Slice())
		if !errors.Is(err, domain.ErrAuthenticationFailed) {
			t.Errorf("len %d: error = %v, want ErrAuthenticationFailed", n, err)
		}
	}
}

func TestOpen_WrongParties(t *testing.T) {
	alice := newKeyPair(t)
	bob := newKeyPair(t)
	carol := newKeyPair(t)
	b := crypto.NewBox(nil)

	// Bob seals for Alice.
	sealed, err := b.Seal([]byte("from bob"), alice.Public.Slice(), bob.Secret.Slice())
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	tests := []struct {
		name   string
		sender []byte
		secret []byte
	}{
		{"claimed sender is carol", carol.Public.Slice(), alice.Secret.Slice()},
		{"recipient secret is carol's", bob.Public.Slice(), carol.Secret.Slice()},
		{"recipient opens with own keypair", alice.Public.Slice(), alice.Secret.Slice()},
		{"sender keypair only", bob.Public.Slice(), bob.Secret.Slice()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Open(sealed, tt.sender, tt.secret)
			if !errors.Is(err, domain.ErrAuthenticationFailed) {
				t.Fatalf("error = %v, want ErrAuthenticationFailed", err)
			}
			if got != nil {
				t.Fatal("plaintext released on failure")
			}
		})
	}

	got, err := b.Open(sealed, bob.Public.Slice(), alice.Secret.Slice())
	if err != nil || string(got) != "from bob" {
		t.Fatalf("legitimate open = %q, %v", got, err)
	}
}

func TestSealOpen_InvalidKeys(t *testing.T) {
	kp := newKeyPair(t)
	b := crypto.NewBox(nil)
	lowOrder := make([]byte, crypto.PublicKeySize)

	sealTests := []struct {
		name string
		pub  []byte
		sec  []byte
	}{
		{"short public", kp.Public.Slice()[:31], kp.Secret.Slice()},
		{"long public", append(kp.Public.Slice(), 0), kp.Secret.Slice()},
		{"nil secret", kp.Public.Slice(), nil},
		{"short secret", kp.Public.Slice(), kp.Secret.Slice()[:16]},
		{"low-order public", lowOrder, kp.Secret.Slice()},
	}
	for _, tt := range sealTests {
		t.Run("seal "+tt.name, func(t *testing.T) {
			got, err := b.Seal([]byte("m"), tt.pub, tt.sec)
			if !errors.Is(err, domain.ErrInvalidKey) {
				t.Fatalf("error = %v, want ErrInvalidKey", err)
			}
			if got != nil {
				t.Fatal("output returned on failure")
			}
		})
		t.Run("open "+tt.name, func(t *testing.T) {
			_, err := b.Open(make([]byte, 64), tt.pub, tt.sec)
			if !errors.Is(err, domain.ErrInvalidKey) {
				t.Fatalf("error = %v, want ErrInvalidKey", err)
			}
		})
	}
}

func TestSeal_RandomnessUnavailable(t *testing.T) {
	alice := newKeyPair(t)
	bob := newKeyPair(t)
	_, err := crypto.NewBox(failingReader{}).Seal([]byte("m"), bob.Public.Slice(), alice.Secret.Slice())
	if !errors.Is(err, domain.ErrRandomnessUnavailable) {
		t.Fatalf("error = %v, want ErrRandomnessUnavailable", err)
	}
}

func TestSeal_DoesNotAliasInputs(t *testing.T) {
	alice := newKeyPair(t)
	bob := newKeyPair(t)
	sec := alice.Secret.Slice()
	before := append([]byte(nil), sec...)

	if _, err := crypto.NewBox(nil).Seal([]byte("m"), bob.Public.Slice(), sec); err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if !bytes.Equal(sec, before) {
		t.Fatal("Seal modified the caller's secret key")
	}
}

var _ io.Reader = failingReader{}
