package deepnote

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is a seedable source of frequencies, safe for concurrent use.
type Rand struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// NewRand returns a Rand seeded with seed, or with the current time if seed
// is 0.
func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{rand: rand.New(rand.NewSource(seed))}
}

// Float32In returns a uniformly distributed value in r.
func (r *Rand) Float32In(rg Range) float32 {
	r.mu.Lock()
	x := r.rand.Float32()
	r.mu.Unlock()
	return rg.Low() + x*rg.Length()
}
