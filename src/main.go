package main

import (
	"os"

	"toybox/src/cmd"
	"toybox/src/utils"
)

var logger = utils.GetLogger("toybox")

func main() {
	if err := cmd.Main(os.Args); err != nil {
		logger.Fatal(err)
	}
}
