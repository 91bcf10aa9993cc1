// Command csim replays memory-access traces against a simulated
// set-associative cache and reports hit, miss, and eviction counts.
package main

import (
	"github.com/tebeka/atexit"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
