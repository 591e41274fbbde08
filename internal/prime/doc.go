// Package prime factors the positive integers found in magnitudes.
//
// Three strategies are available: plain trial division, a wheel that skips
// multiples of the first primes, and the wheel preceded by a probable-prime
// test. First factors of integers too large for any of them can be
// registered with RegisterFirstFactor.
package prime
