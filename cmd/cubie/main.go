// cubie - CLI for the cubie Rubik's cube engine.
package main

import (
	"github.com/seamusw/cubie/internal/cli"
)

func main() {
	cli.Execute()
}
