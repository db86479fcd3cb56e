package interfaces

import domaintypes "tonsecurity/internal/domain/types"

// PasscodeService creates and checks wallet passcode verifiers.
type PasscodeService interface {
	Create(passcode string, kind domaintypes.PasscodeType) (domaintypes.Verifier, error)
	Check(passcode string, verifier domaintypes.Verifier) (bool, error)
}
