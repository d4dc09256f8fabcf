// Command ripple shows the ripple container in a window, in a terminal, or
// renders a single frame of it to a PNG file.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/ripple/cmd/ripple/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
