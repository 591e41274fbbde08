package prime

import (
	"fmt"
	"math/big"
	"sort"
	"sync"
)

// Factor is one prime power of a factorization.
type Factor struct {
	Prime        uint64
	Multiplicity int64
}

// Strategy selects how the first factor of an integer is searched for.
type Strategy int

const (
	// TrialDivision tries 2 and then every odd candidate.
	TrialDivision Strategy = iota
	// Wheel skips candidates that share a factor with the first few primes.
	Wheel
	// WheelWithPrimalityTest runs a probable-prime test before the wheel search
	// so large primes do not pay for a full trial division.
	WheelWithPrimalityTest
)

func (s Strategy) String() string {
	switch s {
	case TrialDivision:
		return "trial-division"
	case Wheel:
		return "wheel"
	case WheelWithPrimalityTest:
		return "wheel-with-primality-test"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy is the inverse of Strategy.String.
func ParseStrategy(s string) (Strategy, error) {
	for _, st := range []Strategy{TrialDivision, Wheel, WheelWithPrimalityTest} {
		if st.String() == s {
			return st, nil
		}
	}
	return 0, fmt.Errorf("unsupported factorization strategy: %q", s)
}

// Factorizer decomposes positive integers into prime powers.
type Factorizer interface {
	// Factorize returns the prime factors of n in ascending order. n must be positive.
	Factorize(n uint64) []Factor
	// FirstFactor returns the smallest prime factor of n > 1.
	FirstFactor(n uint64) uint64
}

// NewFactorizer returns the factorizer for the given strategy.
func NewFactorizer(strategy Strategy) (Factorizer, error) {
	switch strategy {
	case TrialDivision:
		return &trialDivision{}, nil
	case Wheel:
		return &wheelFactorizer{wheel: defaultWheel}, nil
	case WheelWithPrimalityTest:
		return &wheelFactorizer{wheel: defaultWheel, primalityThreshold: DefaultPrimalityThreshold}, nil
	default:
		return nil, fmt.Errorf("unsupported factorization strategy: %v", strategy)
	}
}

// DefaultPrimalityThreshold is the smallest n for which WheelWithPrimalityTest
// consults ProbablyPrime before searching.
const DefaultPrimalityThreshold uint64 = 1 << 32

// NewWheelFactorizer returns a wheel factorizer that runs the primality test
// for every n >= threshold. A zero threshold disables the test.
func NewWheelFactorizer(threshold uint64) Factorizer {
	return &wheelFactorizer{wheel: defaultWheel, primalityThreshold: threshold}
}

var (
	knownFirstFactorsMu sync.RWMutex
	knownFirstFactors   = map[uint64]uint64{}
)

// RegisterFirstFactor records the smallest prime factor of n so the search can
// be skipped. A wrong factor yields a wrong factorization; it is not checked.
// Registration is meant to happen before any magnitude is built.
func RegisterFirstFactor(n, factor uint64) {
	knownFirstFactorsMu.Lock()
	defer knownFirstFactorsMu.Unlock()
	knownFirstFactors[n] = factor
}

// Override pairs an integer with its registered first factor.
type Override struct {
	N      uint64
	Factor uint64
}

// KnownFirstFactors returns the registered overrides sorted by N.
func KnownFirstFactors() []Override {
	knownFirstFactorsMu.RLock()
	defer knownFirstFactorsMu.RUnlock()
	out := make([]Override, 0, len(knownFirstFactors))
	for n, f := range knownFirstFactors {
		out = append(out, Override{N: n, Factor: f})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].N < out[j].N })
	return out
}

func knownFirstFactor(n uint64) (uint64, bool) {
	knownFirstFactorsMu.RLock()
	defer knownFirstFactorsMu.RUnlock()
	f, ok := knownFirstFactors[n]
	return f, ok
}

var defaultFactorizer Factorizer = &wheelFactorizer{wheel: defaultWheel, primalityThreshold: DefaultPrimalityThreshold}

// Default returns the factorizer used by the package-level helpers.
func Default() Factorizer { return defaultFactorizer }

// Factorize factors n with the default factorizer.
func Factorize(n uint64) []Factor {
	return defaultFactorizer.Factorize(n)
}

// IsPrime reports whether n is prime.
func IsPrime(n uint64) bool {
	return n > 1 && defaultFactorizer.FirstFactor(n) == n
}

// factorize divides out the first factor with its full multiplicity and
// repeats on the remainder.
func factorize(n uint64, first func(uint64) uint64) []Factor {
	if n == 0 {
		panic("prime: cannot factorize 0")
	}
	var out []Factor
	for n > 1 {
		p, ok := knownFirstFactor(n)
		if !ok {
			p = first(n)
		}
		var mult int64
		for n%p == 0 {
			n /= p
			mult++
		}
		out = append(out, Factor{Prime: p, Multiplicity: mult})
	}
	return out
}

type trialDivision struct{}

func (t *trialDivision) Factorize(n uint64) []Factor {
	return factorize(n, t.FirstFactor)
}

func (t *trialDivision) FirstFactor(n uint64) uint64 {
	if n%2 == 0 {
		return 2
	}
	for k := uint64(3); ; k += 2 {
		if f, ok := firstFactorMaybe(n, k); ok {
			return f
		}
	}
}

type wheelFactorizer struct {
	wheel              *wheel
	primalityThreshold uint64
}

func (w *wheelFactorizer) Factorize(n uint64) []Factor {
	return factorize(n, w.FirstFactor)
}

func (w *wheelFactorizer) FirstFactor(n uint64) uint64 {
	if f, ok := knownFirstFactor(n); ok {
		return f
	}
	if w.primalityThreshold > 0 && n >= w.primalityThreshold &&
		new(big.Int).SetUint64(n).ProbablyPrime(20) {
		return n
	}
	return w.wheel.findFirstFactor(n)
}

// firstFactorMaybe returns k if it divides n, or n if no factor up to k
// remains possible. It assumes nothing below k divides n.
func firstFactorMaybe(n, k uint64) (uint64, bool) {
	if n%k == 0 {
		return k, true
	}
	if k > n/k {
		return n, true
	}
	return 0, false
}
