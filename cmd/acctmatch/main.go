// Command acctmatch runs the record-linkage engine against a named input
// file: account <stem> resolves accounts, contact <stem> resolves the best
// contact within each resolved account.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
