package advisorylock

import "hash/fnv"

// Key maps a logical resource name onto the 64-bit advisory lock key space
// using FNV-1a. The mapping depends only on the name, so the same resource
// contends on the same lock across processes and restarts.
func Key(name string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return int64(h.Sum64())
}
