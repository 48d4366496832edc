package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"toybox/src/sort"
	"toybox/src/utils"
)

var sampleInts = []int{64, 34, 25, 12, 22, 11, 90, 88, 15, 76}

func CmdSort() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Action:    sortInts,
		Category:  "TOOL",
		Usage:     "sort integers with bubble sort",
		ArgsUsage: "[INT...]",
		Description: `
Sorts the given integers in non-decreasing order and prints them space separated.
Without arguments a built-in sample sequence is sorted.

Examples:
$ toybox sort 5 4 3 2 1
# negative numbers must follow "--"
$ toybox sort -- -3 7 0
$ echo "3 1 2" | toybox sort --stdin`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "stdin",
				Usage: "read whitespace separated integers from standard input",
			},
			&cli.BoolFlag{
				Name:  "fixed",
				Usage: "always run n-1 passes instead of stopping at the first pass without exchanges",
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "log the number of passes, comparisons and exchanges",
			},
		},
	}
}

func sortInts(ctx *cli.Context) error {
	setup(ctx)

	var a []int
	var err error
	switch {
	case ctx.Bool("stdin"):
		a, err = utils.ReadInts(ctx.App.Reader)
	case ctx.NArg() > 0:
		a, err = utils.ParseInts(ctx.Args().Slice())
	default:
		a = append([]int(nil), sampleInts...)
	}
	if err != nil {
		return err
	}
	logger.Debugf("original: %v", a)

	var st sort.Stats
	if ctx.Bool("fixed") {
		st = sort.SortFixed(sort.IntArray(a))
	} else {
		st = sort.Ints(a)
	}
	if ctx.Bool("stats") {
		logger.Infof("sorted %d values: %d passes, %d comparisons, %d swaps", len(a), st.Passes, st.Comparisons, st.Swaps)
	}

	_, err = fmt.Fprintln(ctx.App.Writer, utils.JoinInts(a))
	return err
}
