// Package fizzbuzz implements the children's counting game.
package fizzbuzz

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// MaxRange bounds how many answers Range collects at once. Each streams any range.
const MaxRange = 1 << 20

// Say returns "Fizz" for multiples of 3, "Buzz" for multiples of 5, "FizzBuzz" for
// multiples of both and the decimal number otherwise.
func Say(n int) string {
	switch {
	case n%15 == 0:
		return "FizzBuzz"
	case n%3 == 0:
		return "Fizz"
	case n%5 == 0:
		return "Buzz"
	}
	return strconv.Itoa(n)
}

// Each calls fn with Say(i) for every i in [from, to], stopping at the first error.
func Each(from, to int, fn func(string) error) error {
	if from > to {
		return errors.Wrapf(os.ErrInvalid, "fizzbuzz: range %d..%d is empty", from, to)
	}
	for i := from; ; i++ {
		if err := fn(Say(i)); err != nil {
			return err
		}
		// to may be math.MaxInt, so i <= to would never turn false
		if i == to {
			return nil
		}
	}
}

// Range returns Say(i) for every i in [from, to].
func Range(from, to int) ([]string, error) {
	if from > to {
		return nil, errors.Wrapf(os.ErrInvalid, "fizzbuzz: range %d..%d is empty", from, to)
	}
	// the difference of two ints always fits in a uint64
	if span := uint64(to) - uint64(from); span >= MaxRange {
		return nil, errors.Wrapf(os.ErrInvalid, "fizzbuzz: range %d..%d holds more than %d numbers", from, to, MaxRange)
	}
	out := make([]string, 0, to-from+1)
	err := Each(from, to, func(s string) error {
		out = append(out, s)
		return nil
	})
	return out, err
}
