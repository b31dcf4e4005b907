package generators

import (
	"math/rand"

	"github.com/google/uuid"
)

// UUIDs returns count+1 version 4 UUIDs whose bits come from rng.
func UUIDs(rng *rand.Rand, count int) ([]string, error) {
	if err := checkCommon(rng, count); err != nil {
		return nil, err
	}
	out := make([]string, 0, count+1)
	for i := 0; i <= count; i++ {
		var b [16]byte
		rng.Read(b[:])
		b[6] = (b[6] & 0x0f) | 0x40
		b[8] = (b[8] & 0x3f) | 0x80
		u, err := uuid.FromBytes(b[:])
		if err != nil {
			return nil, err
		}
		out = append(out, u.String())
	}
	return out, nil
}
