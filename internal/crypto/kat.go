package crypto

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"

	"tonsecurity/internal/domain"
)

// Known-answer vectors checked by Init. The box vector is the one from the
// NaCl distribution (tests/box.c); the Argon2id vector was produced with the
// RFC 9106 reference implementation.
var (
	katAliceSecret = mustHex("77076d0a7318a57d3c16c17251b26645df4c2f87ebc0992ab177fba51db92c2a")
	katBobSecret   = mustHex("5dab087e624a8a4b79e17f8b83800ee66f3bb1292618b6fd1c2f8b27ff88e0eb")
	katBoxNonce    = mustHex("69696ee955b62b73cd62bda875fc73d68219e0036b7a0b37")
	katBoxMessage  = mustHex(`
		be075fc53c81f2d5cf141316ebeb0c7b5228c52a4c62cbd44b66849b64244ffc
		e5ecbaaf33bd751a1ac728d45e6c61296cdc3c01233561f41db66cce314adb31
		0e3be8250c46f06dceea3a7fa1348057e2f6556ad6b1318a024a838f21af1fde
		048977eb48f59ffd4924ca1c60902e52f0a089bc76897040e082f93776384864
		5e0705`)
	katBoxSealed = mustHex(`
		69696ee955b62b73cd62bda875fc73d68219e0036b7a0b37f3ffc7703f9400e5
		2a7dfb4b3d3305d98e993b9f48681273c29650ba32fc76ce48332ea7164d96a4
		476fb8c531a1186ac0dfc17c98dce87b4da7f011ec48c97271d2c20f9b928fe2
		270d6fb863d51738b48eeee314a7cc8ab932164548e526ae90224368517acfea
		bd6bb3732bc0e9da99832b61ca01b6de56244a9e88d5f9b37973f622a43d14a6
		599b1f654cb45a74e355a5`)

	katArgon2Password = []byte("password")
	katArgon2Salt     = []byte("somesaltsomesalt")
	katArgon2Params   = domain.HashParams{TimeCost: 1, MemoryCost: 64, Parallelism: 1, OutputLength: 32}
	katArgon2Key      = mustHex("e793d64ef75d58f503d4631b2b149f7f80127c5f3993d89b1c9b781e51d0b413")
)

var (
	errKATBox    = errors.New("box known-answer test failed")
	errKATArgon2 = errors.New("argon2id known-answer test failed")
)

func mustHex(s string) []byte {
	s = strings.Join(strings.Fields(s), "")
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func knownAnswerBox() error {
	alice, err := NewBox(nil).KeyPairFromSecret(katAliceSecret)
	if err != nil {
		return err
	}
	bob, err := NewBox(nil).KeyPairFromSecret(katBobSecret)
	if err != nil {
		return err
	}
	sealed, err := NewBox(bytes.NewReader(katBoxNonce)).Seal(katBoxMessage, bob.Public.Slice(), alice.Secret.Slice())
	if err != nil {
		return err
	}
	if !bytes.Equal(sealed, katBoxSealed) {
		return errKATBox
	}
	opened, err := NewBox(nil).Open(katBoxSealed, alice.Public.Slice(), bob.Secret.Slice())
	if err != nil {
		return err
	}
	if !bytes.Equal(opened, katBoxMessage) {
		return errKATBox
	}
	return nil
}

func knownAnswerArgon2() error {
	key, err := DeriveKey(katArgon2Password, katArgon2Salt, katArgon2Params)
	if err != nil {
		return err
	}
	if !bytes.Equal(key, katArgon2Key) {
		return errKATArgon2
	}
	return nil
}
