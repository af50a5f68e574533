package config

import (
	"fmt"
	"log"
	"os"
)

// Exitf prints a startup failure to stderr behind the process log prefix and
// exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s%s\n", log.Prefix(), fmt.Sprintf(format, args...))
	os.Exit(1)
}
