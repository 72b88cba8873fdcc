// Package main is the navframe CLI command itself.
package main

import (
	"os"

	"go.viam.com/navframe/cli"
	"go.viam.com/navframe/logging"
)

func main() {
	logger := logging.NewLogger("navframe")
	app := cli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}
