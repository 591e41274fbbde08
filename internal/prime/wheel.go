package prime

// wheelBasisSize is the number of leading primes the wheel is built from.
// Four primes give a wheel of 210 with 48 coprime spokes, so about 23% of the
// integers remain trial candidates.
const wheelBasisSize = 4

var defaultWheel = newWheel(wheelBasisSize)

type wheel struct {
	basis    []uint64
	size     uint64
	coprimes []uint64 // coprimes of the basis in [0, size), ascending; coprimes[0] == 1
}

func newWheel(basisSize int) *wheel {
	basis := firstNPrimes(basisSize)
	size := uint64(1)
	for _, p := range basis {
		size *= p
	}
	var coprimes []uint64
	for i := uint64(0); i < size; i++ {
		if coprimeWith(i, basis) {
			coprimes = append(coprimes, i)
		}
	}
	return &wheel{basis: basis, size: size, coprimes: coprimes}
}

func (w *wheel) findFirstFactor(n uint64) uint64 {
	for _, p := range w.basis {
		if f, ok := firstFactorMaybe(n, p); ok {
			return f
		}
	}
	// Spoke 1 of the first turn is not a candidate.
	for _, p := range w.coprimes[1:] {
		if f, ok := firstFactorMaybe(n, p); ok {
			return f
		}
	}
	for turn := w.size; turn < n; turn += w.size {
		for _, p := range w.coprimes {
			if f, ok := firstFactorMaybe(n, turn+p); ok {
				return f
			}
		}
		if turn > ^uint64(0)-w.size {
			break
		}
	}
	return n
}

func coprimeWith(n uint64, basis []uint64) bool {
	for _, p := range basis {
		if n%p == 0 {
			return false
		}
	}
	return true
}

func isPrimeByTrialDivision(n uint64) bool {
	if n < 2 {
		return false
	}
	for f := uint64(2); f <= n/f; f += 1 + f%2 {
		if n%f == 0 {
			return false
		}
	}
	return true
}

func firstNPrimes(n int) []uint64 {
	primes := make([]uint64, 0, n)
	for c := uint64(2); len(primes) < n; c++ {
		if isPrimeByTrialDivision(c) {
			primes = append(primes, c)
		}
	}
	return primes
}
