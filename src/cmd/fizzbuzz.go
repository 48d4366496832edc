package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"toybox/src/fizzbuzz"
)

func CmdFizzBuzz() *cli.Command {
	return &cli.Command{
		Name:     "fizzbuzz",
		Action:   fizzBuzz,
		Category: "TOOL",
		Usage:    "play FizzBuzz",
		Description: `
Prints one line per number of the range: Fizz for multiples of 3, Buzz for multiples
of 5, FizzBuzz for multiples of both and the number itself otherwise.

Examples:
$ toybox fizzbuzz
$ toybox fizzbuzz --from 90 --to 100`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "from",
				Value: 1,
				Usage: "first number",
			},
			&cli.IntFlag{
				Name:  "to",
				Value: 30,
				Usage: "last number",
			},
		},
	}
}

func fizzBuzz(ctx *cli.Context) error {
	setup(ctx)

	return fizzbuzz.Each(ctx.Int("from"), ctx.Int("to"), func(s string) error {
		_, err := fmt.Fprintln(ctx.App.Writer, s)
		return err
	})
}
