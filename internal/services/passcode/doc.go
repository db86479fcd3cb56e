// Package passcode creates and checks wallet passcode verifiers.
//
// A verifier is a random 16-byte salt plus the Argon2id hash of the passcode
// under that salt. Hosts persist the verifier and later recompute the hash to
// check a candidate passcode; the passcode itself is never stored.
package passcode
