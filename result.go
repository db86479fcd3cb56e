package tonsecurity

import "tonsecurity/internal/domain"

// Kind classifies a failed Result.
type Kind = domain.Kind

// Failure kinds.
const (
	KindUnknown               = domain.KindUnknown
	KindInvalidInput          = domain.KindInvalidInput
	KindInvalidParameters     = domain.KindInvalidParameters
	KindInvalidKey            = domain.KindInvalidKey
	KindAuthenticationFailed  = domain.KindAuthenticationFailed
	KindRandomnessUnavailable = domain.KindRandomnessUnavailable
	KindResourceExhausted     = domain.KindResourceExhausted
	KindSelfTestFailed        = domain.KindSelfTestFailed
)

// Result is the outcome of an Engine call: a value on success, a Kind on
// failure. The zero Result is a failure of KindUnknown.
type Result struct {
	value []byte
	kind  Kind
	ok    bool
}

func success(v []byte) Result { return Result{value: v, ok: true} }

func failure(k Kind) Result { return Result{kind: k} }

// OK reports whether the call succeeded.
func (r Result) OK() bool { return r.ok }

// Bytes returns the value of a successful call and nil otherwise. The caller
// owns the returned slice.
func (r Result) Bytes() []byte {
	if !r.ok {
		return nil
	}
	return r.value
}

// Kind returns the failure kind. It is KindUnknown for a success.
func (r Result) Kind() Kind { return r.kind }

// String implements fmt.Stringer without exposing the value.
func (r Result) String() string {
	if r.ok {
		return "ok"
	}
	return "failed: " + r.kind.String()
}
