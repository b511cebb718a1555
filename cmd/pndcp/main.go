package main

import (
	"fmt"
	"os"

	"pndcp/pkg/cli"
	"pndcp/pkg/errors"
	"pndcp/pkg/logging"
)

func main() {
	// Initialize logging from environment variables
	logging.SetLogLevel()

	app, err := cli.NewApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cli.ShowHelp("")
		os.Exit(2)
	}

	if err := app.Run(); err != nil {
		if errors.IsTimeout(err) {
			fmt.Println("timeout occurred, no response received")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Println("done")
}
