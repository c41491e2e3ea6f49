package gallery

// Rand is the game's deterministic random source (splitmix64). It only
// staggers turret timers, so a seed always reproduces the same volleys.
type Rand struct {
	state uint64
}

// NewRand seeds a generator. Every seed, zero included, is valid.
func NewRand(seed int64) *Rand {
	return &Rand{state: uint64(seed)} //#nosec G115 -- seed bits are reinterpreted, not converted
}

// Uint64 returns the next 64 random bits.
func (r *Rand) Uint64() uint64 {
	r.state += 0x9e3779b97f4a7c15
	z := r.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Float64 returns a number in [0, 1).
func (r *Rand) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// Range returns a number in [lo, hi).
func (r *Rand) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// State returns the generator state for snapshots.
func (r *Rand) State() uint64 {
	return r.state
}
