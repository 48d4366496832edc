package collatz

import (
	"math"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteps(t *testing.T) {
	cases := []struct {
		n, steps int
	}{
		{1, 0},
		{2, 1},
		{6, 8},
		{27, 111},
		{871, 178},
		{6171, 261},
	}
	for _, c := range cases {
		steps, err := Steps(c.n)
		require.NoError(t, err)
		assert.Equal(t, c.steps, steps, "n=%d", c.n)
	}
}

func TestStepsInvalid(t *testing.T) {
	for _, n := range []int{0, -5} {
		_, err := Steps(n)
		assert.True(t, errors.Is(err, os.ErrInvalid), "n=%d", n)
	}
}

func TestStepsOverflow(t *testing.T) {
	_, err := Steps(math.MaxInt)
	assert.True(t, errors.Is(err, ErrOverflow))
	assert.Contains(t, err.Error(), "9223372036854775807")

	seq, err := Sequence(math.MaxInt)
	assert.True(t, errors.Is(err, ErrOverflow))
	assert.Contains(t, err.Error(), "9223372036854775807")
	assert.Equal(t, []int{math.MaxInt}, seq)
}

func TestSequence(t *testing.T) {
	seq, err := Sequence(6)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 3, 10, 5, 16, 8, 4, 2, 1}, seq)

	seq, err = Sequence(27)
	require.NoError(t, err)
	assert.Len(t, seq, 112)

	_, err = Sequence(0)
	assert.Error(t, err)
}
