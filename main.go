// depthls - depth-limited recursive directory lister.
package main

import (
	"os"

	"github.com/depthls/depthls/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
