package shape

import (
	"bytes"
	"encoding/json"

	"github.com/go-faster/city"
)

// Canonical returns the deterministic encoding used for equality and hashing.
// Members appear in declaration order; absent members are omitted
func Canonical(v any) ([]byte, error) { return json.Marshal(v) }

// Equal reports member-wise equality: absent and present differ, sequences compare in order.
// Values that cannot be encoded (NaN scores) are never equal
func Equal[T any](a, b T) bool {
	ab, err := Canonical(a)
	if err != nil {
		return false
	}
	bb, err := Canonical(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ab, bb)
}

// Hash is a stable 64-bit hash consistent with Equal
func Hash(v any) uint64 {
	b, err := Canonical(v)
	if err != nil {
		return 0
	}
	return city.Hash64(b)
}
