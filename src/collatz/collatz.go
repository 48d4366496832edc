// Package collatz counts the steps a number takes to reach 1 under the 3n+1 map.
package collatz

import (
	"math"
	"os"

	"github.com/pkg/errors"
)

// Targets are the numbers examined when none are given.
var Targets = []int{27, 871, 6171}

var ErrOverflow = errors.New("collatz: sequence overflows int")

// Steps returns how many applications of n/2 (even) or 3n+1 (odd) it takes for n to
// reach 1. n must be positive.
func Steps(n int) (int, error) {
	if n < 1 {
		return 0, errors.Wrapf(os.ErrInvalid, "collatz: %d is not positive", n)
	}
	start, steps := n, 0
	for n > 1 {
		if n%2 == 0 {
			n = n / 2
		} else {
			if n > (math.MaxInt-1)/3 {
				return steps, errors.Wrapf(ErrOverflow, "collatz: %d at step %d", start, steps)
			}
			n = 3*n + 1
		}
		steps++
	}
	return steps, nil
}

// Sequence returns every value visited from n down to 1, inclusive.
func Sequence(n int) ([]int, error) {
	if n < 1 {
		return nil, errors.Wrapf(os.ErrInvalid, "collatz: %d is not positive", n)
	}
	seq := []int{n}
	for n > 1 {
		if n%2 == 0 {
			n = n / 2
		} else {
			if n > (math.MaxInt-1)/3 {
				return seq, errors.Wrapf(ErrOverflow, "collatz: %d at step %d", seq[0], len(seq)-1)
			}
			n = 3*n + 1
		}
		seq = append(seq, n)
	}
	return seq, nil
}
