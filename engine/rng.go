package engine

// RNG abstracts random number generation so deals and reshuffles are
// deterministic in tests.
type RNG interface {
	// Intn returns a non-negative random int in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// Xorshift64 is a small, fast RNG suitable as the default shuffle source.
type Xorshift64 struct {
	state uint64
}

// NewXorshift64 seeds a new generator. A zero seed is remapped because
// xorshift cannot leave the zero state.
func NewXorshift64(seed uint64) *Xorshift64 {
	if seed == 0 {
		seed = 1
	}
	return &Xorshift64{state: seed}
}

func (x *Xorshift64) next() uint64 {
	v := x.state
	v ^= v << 13
	v ^= v >> 7
	v ^= v << 17
	x.state = v
	return v
}

// Intn returns a random int in [0, n).
func (x *Xorshift64) Intn(n int) int {
	if n <= 0 {
		panic("engine: Intn called with n <= 0")
	}
	return int(x.next() % uint64(n))
}
