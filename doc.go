// Package tonsecurity exposes the wallet's password hashing and
// authenticated box primitives behind a narrow call boundary.
//
// Every entry point of Engine returns a Result instead of an error. A failed
// Result carries only a Kind; no partial output and no error text crosses the
// boundary. Failures are logged inside the package with an operation ID.
//
//	eng, err := tonsecurity.New(tonsecurity.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	kp := eng.GenerateKeyPair()
//	if !kp.OK() {
//		return fmt.Errorf("keygen: %s", kp.Kind())
//	}
//
// Sealed messages are laid out as nonce(24) || tag(16) || ciphertext.
package tonsecurity
