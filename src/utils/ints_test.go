package utils

import (
	"strconv"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInts(t *testing.T) {
	a, err := ParseInts([]string{"64", "34 25", " -12 "})
	require.NoError(t, err)
	assert.Equal(t, []int{64, 34, 25, -12}, a)

	a, err = ParseInts(nil)
	require.NoError(t, err)
	assert.Empty(t, a)

	_, err = ParseInts([]string{"1", "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parse argument "x"`)
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
}

func TestReadInts(t *testing.T) {
	a, err := ReadInts(strings.NewReader("5 4\n3\t2\n\n1\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{5, 4, 3, 2, 1}, a)

	_, err = ReadInts(strings.NewReader("1 two"))
	assert.EqualError(t, err, `parse input "two": strconv.Atoi: parsing "two": invalid syntax`)
}

func TestJoinInts(t *testing.T) {
	assert.Equal(t, "", JoinInts(nil))
	assert.Equal(t, "7", JoinInts([]int{7}))
	assert.Equal(t, "1 2 3", JoinInts([]int{1, 2, 3}))
}
