// Command numcalc is a small command-line tool for exercising the decimal
// package's NUMERIC/BIGNUMERIC arithmetic from the shell. It carries no
// arithmetic logic of its own; every computation is delegated to the
// decimal package.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("numcalc failed", "error", err)
		os.Exit(1)
	}
}
