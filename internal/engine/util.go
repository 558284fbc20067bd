package engine

import "golang.org/x/exp/constraints"

// abs returns the absolute value of x.
func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// scanSquare reads a square name (file letter followed by rank digits)
// from the start of s and returns it with the number of bytes consumed,
// or 0 if s does not start with one.
func scanSquare(s string) (string, int) {
	if len(s) < 2 || s[0] < 'a' || s[0] > 'z' {
		return "", 0
	}
	n := 1
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n == 1 {
		return "", 0
	}
	return s[:n], n
}
