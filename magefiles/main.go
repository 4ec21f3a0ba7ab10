//go:build !mage

package main

import (
	"os"

	"github.com/magefile/mage/mage"
)

// main lets the targets run without a mage installation:
//
//	go run ./magefiles build
func main() { os.Exit(mage.Main()) }
