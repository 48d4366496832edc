// Package wordcount counts whitespace separated words.
package wordcount

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

const Sample = "WebAssembly is a binary instruction format for a stack-based virtual machine"

// Count returns the number of words in text, where a word is a maximal run of
// non-space characters.
func Count(text string) int {
	return len(strings.Fields(text))
}

// CountReader counts the words read from r until EOF. Words of any length are
// accepted; only the current rune is held in memory.
func CountReader(r io.Reader) (int, error) {
	br := bufio.NewReader(r)
	n := 0
	inWord := false
	for {
		c, _, err := br.ReadRune()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, errors.Wrap(err, "count words")
		}
		if unicode.IsSpace(c) {
			inWord = false
		} else if !inWord {
			inWord = true
			n++
		}
	}
}
