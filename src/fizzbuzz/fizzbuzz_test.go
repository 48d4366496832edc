package fizzbuzz

import (
	"math"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSay(t *testing.T) {
	assert.Equal(t, "1", Say(1))
	assert.Equal(t, "7", Say(7))
	assert.Equal(t, "Fizz", Say(9))
	assert.Equal(t, "Buzz", Say(10))
	assert.Equal(t, "FizzBuzz", Say(15))
	assert.Equal(t, "FizzBuzz", Say(30))
	assert.Equal(t, "Fizz", Say(-3))
}

func TestRange(t *testing.T) {
	out, err := Range(1, 30)
	require.NoError(t, err)
	require.Len(t, out, 30)
	assert.Equal(t, []string{"1", "2", "Fizz", "4", "Buzz"}, out[:5])
	assert.Equal(t, "FizzBuzz", out[14])
	assert.Equal(t, "FizzBuzz", out[29])

	out, err = Range(5, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"Buzz"}, out)

	_, err = Range(3, 2)
	assert.True(t, errors.Is(err, os.ErrInvalid))
}

func TestRangeLimits(t *testing.T) {
	_, err := Range(math.MinInt, 0)
	assert.True(t, errors.Is(err, os.ErrInvalid))

	_, err = Range(math.MinInt, math.MaxInt)
	assert.True(t, errors.Is(err, os.ErrInvalid))

	_, err = Range(1, MaxRange+1)
	assert.True(t, errors.Is(err, os.ErrInvalid))

	out, err := Range(1, MaxRange)
	require.NoError(t, err)
	assert.Len(t, out, MaxRange)

	out, err = Range(math.MaxInt-1, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fizz", "9223372036854775807"}, out)
}

func TestEach(t *testing.T) {
	var got []string
	err := Each(math.MaxInt-2, math.MaxInt, func(s string) error {
		got = append(got, s)
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, got, 3)

	stop := errors.New("stop")
	n := 0
	err = Each(1, math.MaxInt, func(string) error {
		n++
		if n == 5 {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err)
	assert.Equal(t, 5, n)
}
