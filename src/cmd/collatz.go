package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"toybox/src/collatz"
	"toybox/src/utils"
)

func CmdCollatz() *cli.Command {
	return &cli.Command{
		Name:      "collatz",
		Action:    collatzSteps,
		Category:  "TOOL",
		Usage:     "count the steps of the Collatz sequence",
		ArgsUsage: "[N...]",
		Description: `
Prints how many steps every positive N takes to reach 1, where each step halves an
even number and maps an odd number n to 3n+1. Defaults to 27, 871 and 6171.

Examples:
$ toybox collatz 27
$ toybox collatz --sequence 6`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "sequence",
				Aliases: []string{"s"},
				Usage:   "also print every value of the sequence",
			},
		},
	}
}

func collatzSteps(ctx *cli.Context) error {
	setup(ctx)
	logger.Debugf("Running Collatz Conjecture...")

	targets := collatz.Targets
	if ctx.NArg() > 0 {
		var err error
		if targets, err = utils.ParseInts(ctx.Args().Slice()); err != nil {
			return err
		}
	}

	w := ctx.App.Writer
	for _, n := range targets {
		if !ctx.Bool("sequence") {
			steps, err := collatz.Steps(n)
			if err != nil {
				return err
			}
			if _, err = fmt.Fprintf(w, "Number: %d -> Steps: %d\n", n, steps); err != nil {
				return err
			}
			continue
		}

		seq, err := collatz.Sequence(n)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintf(w, "Number: %d -> Steps: %d\n%s\n", n, len(seq)-1, utils.JoinInts(seq)); err != nil {
			return err
		}
	}
	return nil
}
