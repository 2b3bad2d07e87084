// Command primes generates primes and answers primality queries.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/primesieve/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
