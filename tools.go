//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq (service mocks, see //go:generate lines in *_test.go)
// - github.com/pressly/goose/v3/cmd/goose (declared as a go.mod tool)
