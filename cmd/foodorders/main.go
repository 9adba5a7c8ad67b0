// Command foodorders records food orders and reports revenue.
//
// Usage:
//
//	foodorders menu
//	foodorders order --customer Alice Pizza Burger
//	foodorders revenue
//	foodorders shell
//	foodorders serve --addr :8080
package main

import (
	"fmt"
	"os"

	"github.com/roach88/foodorders/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
