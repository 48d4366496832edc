package cmd

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"toybox/src/wordcount"
)

func CmdWordCount() *cli.Command {
	return &cli.Command{
		Name:      "wordcount",
		Aliases:   []string{"wc"},
		Action:    countWords,
		Category:  "TOOL",
		Usage:     "count whitespace separated words",
		ArgsUsage: "[TEXT...]",
		Description: `
Counts the words of the arguments joined by spaces, of standard input with --stdin,
or of a built-in sample sentence when neither is given.

Examples:
$ toybox wordcount "the quick brown fox"
$ cat README.md | toybox wc --stdin`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "stdin",
				Usage: "count the words of standard input",
			},
		},
	}
}

func countWords(ctx *cli.Context) error {
	setup(ctx)

	var n int
	switch {
	case ctx.Bool("stdin"):
		var err error
		if n, err = wordcount.CountReader(ctx.App.Reader); err != nil {
			return err
		}
	case ctx.NArg() > 0:
		n = wordcount.Count(strings.Join(ctx.Args().Slice(), " "))
	default:
		logger.Debugf("text: %s", wordcount.Sample)
		n = wordcount.Count(wordcount.Sample)
	}

	_, err := fmt.Fprintf(ctx.App.Writer, "Word Count: %d\n", n)
	return err
}
