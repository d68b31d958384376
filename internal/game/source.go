package game

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// Source picks uniform random indexes. Implementations need not be safe for
// concurrent use; each Engine owns its own Source.
type Source interface {
	// Intn returns a uniform value in [0, n). n is always > 0.
	Intn(n int) int
}

// NewSource returns a ChaCha-backed generator. A zero seed draws the key from
// the system entropy pool; any other seed yields a reproducible sequence.
func NewSource(seed uint64) Source {
	if seed == 0 {
		return frand.New()
	}
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return frand.NewCustom(key[:], 1024, 12)
}
