package crypto

import (
	"math"
	"os"
	"runtime/debug"
	"runtime/metrics"
	"strconv"
	"strings"
	"sync"

	"github.com/pbnjay/memory"
)

// Cgroup memory limit files, v2 then v1.
var cgroupLimitFiles = []string{
	"/sys/fs/cgroup/memory.max",
	"/sys/fs/cgroup/memory/memory.limit_in_bytes",
}

// hostCeiling is the fixed upper bound on process memory in bytes: the
// smallest of physical memory and the cgroup limit. Zero means unknown.
var hostCeiling = sync.OnceValue(func() uint64 {
	ceiling := memory.TotalMemory()
	for _, path := range cgroupLimitFiles {
		if limit := readCgroupLimit(path); limit != 0 && (ceiling == 0 || limit < ceiling) {
			ceiling = limit
		}
	}
	return ceiling
})

func readCgroupLimit(path string) uint64 {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	s := strings.TrimSpace(string(b))
	if s == "max" {
		return 0
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n >= math.MaxInt64/2 { // v1 reports "unlimited" as a huge page-aligned value
		return 0
	}
	return n
}

// hostAvailableKiB reports how much memory a derivation may still allocate,
// in KiB: the host ceiling, or the Go memory limit when it is lower, minus
// what the process already holds. Zero means unknown.
var hostAvailableKiB = func() uint64 {
	ceiling := hostCeiling()
	if limit := debug.SetMemoryLimit(-1); limit != math.MaxInt64 && limit > 0 &&
		(ceiling == 0 || uint64(limit) < ceiling) {
		ceiling = uint64(limit)
	}
	if ceiling == 0 {
		return 0
	}

	sample := []metrics.Sample{{Name: "/memory/classes/total:bytes"}}
	metrics.Read(sample)
	var used uint64
	if sample[0].Value.Kind() == metrics.KindUint64 {
		used = sample[0].Value.Uint64()
	}
	if used >= ceiling {
		return 1
	}
	return (ceiling - used) >> 10
}
