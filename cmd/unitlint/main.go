// Command unitlint checks the static unit catalog: symbol uniqueness
// against prefix+base combinations, duplicate symbols, and empirical
// conversion-factor hygiene. Run it at build time; a nonzero exit
// means the catalog itself needs fixing.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/quanta-dev/quanta/internal/lint"
	"github.com/quanta-dev/quanta/pkg/registry"
)

var (
	factors = flag.Bool("factors", true, "Check conversion factor ranges")
	symbols = flag.Bool("symbols", true, "Check symbol uniqueness")
	verbose = flag.Bool("v", false, "Verbose output")
)

func main() {
	flag.Parse()

	dims := registry.Default().Dimensions()
	failed := false

	if *symbols {
		failed = reportSymbols(dims) || failed
	}
	if *factors {
		failed = reportFactors(dims) || failed
	}

	if failed {
		os.Exit(1)
	}
	fmt.Println("catalog OK")
}

func reportSymbols(dims []*registry.Dimension) bool {
	conflicts := lint.SymbolConflicts(dims)
	for _, c := range conflicts {
		fmt.Printf("conflict: symbol %q of %s (%s) also reads as %s+%s (%s)\n",
			c.Symbol, c.Unit, c.Dimension, c.Prefix, c.Base, c.BaseDimension)
	}

	// Duplicates resolve first-wins at lookup time; report but don't fail.
	for _, d := range lint.DuplicateSymbols(dims) {
		fmt.Printf("warning: symbol %q claimed by multiple units:\n", d.Symbol)
		for _, u := range d.Units {
			fmt.Printf("  - %s\n", u)
		}
	}

	if *verbose {
		total := 0
		for _, d := range dims {
			for _, u := range d.Units {
				total += len(u.Symbols)
			}
		}
		fmt.Printf("checked %d symbols across %d dimensions\n", total, len(dims))
	}
	return len(conflicts) > 0
}

func reportFactors(dims []*registry.Dimension) bool {
	violations := lint.FactorViolations(dims)
	for _, v := range violations {
		switch v.Kind {
		case lint.FactorTooSmall:
			fmt.Printf("factor: %s (%s) conversion factor %.10g below minimum %.10g\n",
				v.Unit, v.Dimension, v.Factor, lint.MinFactor)
		case lint.FactorTooLarge:
			fmt.Printf("factor: %s (%s) conversion factor %.10g above maximum %.10g\n",
				v.Unit, v.Dimension, v.Factor, lint.MaxFactor)
		case lint.FactorExactlyRepresentable:
			fmt.Printf("factor: %s (%s) conversion factor %.10g is exactly %s; move it into the scale vector\n",
				v.Unit, v.Dimension, v.Factor, v.PrimeForm)
		}
	}
	return len(violations) > 0
}
