package types

import "fmt"

// PasscodeType is the shape of a wallet passcode.
type PasscodeType int

const (
	// Pin4 is a four digit passcode.
	Pin4 PasscodeType = 4
	// Pin6 is a six digit passcode.
	Pin6 PasscodeType = 6
)

// String returns the human name of the passcode type.
func (t PasscodeType) String() string {
	switch t {
	case Pin4:
		return "pin4"
	case Pin6:
		return "pin6"
	default:
		return fmt.Sprintf("PasscodeType(%d)", int(t))
	}
}

// Valid reports whether t is a known passcode type.
func (t PasscodeType) Valid() bool { return t == Pin4 || t == Pin6 }

// Verifier is what a host keeps to check a passcode later. Salt and Hash are
// encoded as standard base64 in JSON.
type Verifier struct {
	Type   PasscodeType `json:"type"`
	Salt   []byte       `json:"salt"`
	Hash   []byte       `json:"hash"`
	Params HashParams   `json:"params"`
}
