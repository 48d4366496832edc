package utils

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseInts converts every field of args to an int.
func ParseInts(args []string) ([]int, error) {
	a := make([]int, 0, len(args))
	for _, arg := range args {
		for _, f := range strings.Fields(arg) {
			i, err := strconv.Atoi(f)
			if err != nil {
				return nil, errors.Wrapf(err, "parse argument %q", f)
			}
			a = append(a, i)
		}
	}
	return a, nil
}

// ReadInts reads whitespace separated integers until EOF.
func ReadInts(r io.Reader) ([]int, error) {
	var a []int
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		i, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return nil, errors.Wrapf(err, "parse input %q", scanner.Text())
		}
		a = append(a, i)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read input")
	}
	return a, nil
}

// JoinInts formats a as space separated text.
func JoinInts(a []int) string {
	var b strings.Builder
	for i, v := range a {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
