// tokensmith - a design-token authoring toolkit
//
// tokensmith derives shade ramps, contrast reports and type scales from a
// few brand choices and exports them for CSS, SCSS, JSON and Tailwind.
package main

import (
	"os"

	"github.com/jmylchreest/tokensmith/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
