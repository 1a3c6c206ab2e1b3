// Package contracts holds the stable surface shared between the pipeline
// binary and its domain types.
package contracts

import (
	"fmt"
	"runtime"
)

const (
	// Version is the current version of the pipeline
	Version = "1.0.0"

	// DataFormatVersion is the version of the cleaned dataset layout.
	// Bump it when a column is added, removed, or reordered.
	DataFormatVersion = "v1"
)

// FullVersion returns the version with the Go runtime it was built with
func FullVersion() string {
	return fmt.Sprintf("%s (%s)", Version, runtime.Version())
}
