// Package ports defines the core interfaces for the application.
package ports

import "context"

// Scanner reports the shared objects a binary cannot resolve at runtime.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type Scanner interface {
	// Scan returns the raw names of the missing libraries of the binary at binaryPath.
	//
	// A scanner that cannot run or exits abnormally returns an error wrapping
	// domain.ErrScanFailed.
	Scan(ctx context.Context, binaryPath string) ([]string, error)
}
