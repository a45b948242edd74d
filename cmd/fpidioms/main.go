// Command fpidioms runs the functional-programming idiom demonstrations.
package main

import "github.com/Pure-Company/fpidioms/internal/cli"

func main() {
	cli.Execute()
}
