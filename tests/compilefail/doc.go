//go:build !compilefail

// Package compilefail is empty in normal builds. The real content is
// main.go, which is only built under the compilefail tag by the mage
// TestCompileFail target and is required to be rejected by the compiler.
package compilefail
