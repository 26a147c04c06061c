package engine

// Rand is a source of uniformly distributed integers in [0, n). It is satisfied by
// *math/rand.Rand, *frand.RNG and *PseudoRand.
type Rand interface {
	Intn(n int) int
}

const defaultSeed uint64 = 0x9E3779B97F4A7C15

// PseudoRand is a xorshift64* generator. It is deterministic for a given seed and not
// safe for concurrent use.
type PseudoRand struct {
	s uint64
}

func NewPseudoRand(seed uint64) *PseudoRand {
	r := &PseudoRand{}
	r.Seed(seed)
	return r
}

// Seed resets the generator. A zero seed would lock xorshift at zero, so it is replaced.
func (r *PseudoRand) Seed(seed uint64) {
	if seed == 0 {
		seed = defaultSeed
	}
	r.s = seed
}

func (r *PseudoRand) Uint64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

func (r *PseudoRand) Intn(n int) int {
	if n <= 0 {
		panic("engine: invalid argument to Intn")
	}
	return int(r.Uint64() % uint64(n))
}
