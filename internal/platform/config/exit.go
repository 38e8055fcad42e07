package config

import (
	"fmt"
	"os"
)

// Exitf writes a formatted message to stderr and terminates the process with
// exit code 1. Command entry points use it for unrecoverable startup errors.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
