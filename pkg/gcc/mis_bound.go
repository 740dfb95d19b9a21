package gcc

import "math"

// schiermeyerMISBound computes the Schiermeyer upper bound on the size of
// a maximum independent set of a graph with n vertices and m edges:
//
//	α(R) <= floor(0.5 + sqrt(0.25 + n^2 - n - 2m))
//
// Valid for 0 <= n and 0 <= 2m <= n(n-1); callers are expected to stay
// within that range since outside it the graph is not simple.
func schiermeyerMISBound(n, m int) int {
	if n == 0 {
		return 0
	}
	radicand := 0.25 + float64(n)*float64(n) - float64(n) - 2*float64(m)
	if radicand < 0 {
		radicand = 0
	}
	return int(math.Floor(0.5 + math.Sqrt(radicand)))
}
