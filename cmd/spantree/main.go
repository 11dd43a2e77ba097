// Command spantree reads a weighted adjacency matrix and prints its minimum
// spanning tree or a ranking of spanning trees by distinct total weight.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
