package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a failure. It is the only detail allowed to cross the
// foreign-call boundary.
type Kind uint8

const (
	// KindUnknown is an unclassified failure.
	KindUnknown Kind = iota
	// KindInvalidInput is empty or malformed caller data.
	KindInvalidInput
	// KindInvalidParameters is a cost parameter outside algorithm limits.
	KindInvalidParameters
	// KindInvalidKey is wrong-length or unusable key material.
	KindInvalidKey
	// KindAuthenticationFailed is a tag that did not verify on open.
	KindAuthenticationFailed
	// KindRandomnessUnavailable is a failing entropy source.
	KindRandomnessUnavailable
	// KindResourceExhausted is a memory budget the host cannot satisfy.
	KindResourceExhausted
	// KindSelfTestFailed is a diagnostic round trip that did not match.
	KindSelfTestFailed
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidInput is returned when a password, salt or message is empty or malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidParameters is returned when hash cost parameters violate Argon2 constraints.
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrInvalidKey is returned when key material has the wrong length or is a low-order point.
	ErrInvalidKey = errors.New("invalid key")

	// ErrAuthenticationFailed is returned when a sealed message does not verify.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrRandomnessUnavailable is returned when the secure random source fails.
	ErrRandomnessUnavailable = errors.New("randomness unavailable")

	// ErrResourceExhausted is returned when the hashing memory budget cannot be allocated.
	ErrResourceExhausted = errors.New("resource exhausted")

	// ErrSelfTestFailed is returned when a self-test round trip does not reproduce its input.
	ErrSelfTestFailed = errors.New("self-test failed")
)

var kindNames = [...]string{
	KindUnknown:               "Unknown",
	KindInvalidInput:          "InvalidInput",
	KindInvalidParameters:     "InvalidParameters",
	KindInvalidKey:            "InvalidKey",
	KindAuthenticationFailed:  "AuthenticationFailed",
	KindRandomnessUnavailable: "RandomnessUnavailable",
	KindResourceExhausted:     "ResourceExhausted",
	KindSelfTestFailed:        "SelfTestFailed",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidInput:
		return ErrInvalidInput
	case KindInvalidParameters:
		return ErrInvalidParameters
	case KindInvalidKey:
		return ErrInvalidKey
	case KindAuthenticationFailed:
		return ErrAuthenticationFailed
	case KindRandomnessUnavailable:
		return ErrRandomnessUnavailable
	case KindResourceExhausted:
		return ErrResourceExhausted
	case KindSelfTestFailed:
		return ErrSelfTestFailed
	}
	return nil
}

// Error is a classified failure from a crypto operation.
type Error struct {
	Op   string // operation, e.g. "box.seal"
	Kind Kind
	Err  error // underlying cause, may be nil
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if s := e.Kind.sentinel(); s != nil {
		msg = s.Error()
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Op != "" {
		return e.Op + ": " + msg
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Is implements errors.Is for sentinel error matching.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// E builds a classified error. A nil cause is allowed.
func E(op string, kind Kind, cause error) error {
	return &Error{Op: op, Kind: kind, Err: cause}
}

// Ef builds a classified error with a formatted cause.
func Ef(op string, kind Kind, format string, args ...any) error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
