package request

import (
	"fmt"
	"hash/fnv"
)

// fingerprint hashes a request's stable identity fields with FNV-1a. The
// same hash family the teacher's consistent-hash ring uses for placement is
// repurposed here for request fingerprinting: fast, good distribution, and
// no reason to reach for anything heavier for an in-process cache key.
//
// typeTag must be unique per request variant so that, e.g., a LevelRequest
// and a UserRequest that happen to carry the same numeric id never collide.
func fingerprint(typeTag string, fields ...any) uint64 {
	h := fnv.New64a()
	h.Write([]byte(typeTag))
	for _, f := range fields {
		h.Write([]byte{0})
		fmt.Fprintf(h, "%v", f)
	}
	return h.Sum64()
}
