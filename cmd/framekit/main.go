// Package main provides the framekit CLI.
// See docs/ARCHITECTURE.md § CLI.
package main

import (
	"github.com/mesh-intelligence/framekit/internal/cli"
)

func main() {
	cli.Execute()
}
