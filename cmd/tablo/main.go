package main

import (
	"os"

	"github.com/young1lin/tablo/internal/cli"
)

// exitFunc is the function to call for exiting (can be mocked for testing)
var exitFunc = os.Exit

func main() {
	if err := cli.Execute(); err != nil {
		exitFunc(1)
	}
}
