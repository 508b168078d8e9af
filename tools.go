//go:build tools

package tools

// This file tracks the CLI tools used during development.
// It is not compiled into the binary.
//
// - github.com/pressly/goose/v3/cmd/goose: declared in the go.mod tool block,
//   run with `go tool goose -dir migrations postgres "$DATABASE_DSN" status`.
// - github.com/matryer/moq: regenerates the *_mock_test.go files from the
//   go:generate directives in each package's tests.
