//go:build tools
// +build tools

// Package tools pins the code generators run by `go generate` (mockgen) in go.mod.
package tools

import (
	_ "go.uber.org/mock/mockgen"
)
