package crypto

// SetHostMemoryForTesting replaces the host memory probe and returns a
// function restoring the original.
func SetHostMemoryForTesting(availKiB func() uint64) (restore func()) {
	orig := hostAvailableKiB
	hostAvailableKiB = availKiB
	return func() { hostAvailableKiB = orig }
}
