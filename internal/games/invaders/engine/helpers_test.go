package engine

// fixedRand is a deterministic Rand. With f=1 no alien ever fires;
// with f=0 every alien with a positive probability fires.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }

func (r fixedRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.n % n
}

var (
	quietRand = fixedRand{f: 1}
	noisyRand = fixedRand{f: 0}
)
