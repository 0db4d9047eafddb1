// Command azmodels inspects the Azure model families: it decodes fixtures,
// checks round trips, follows recorded page sequences, renders JSON Schemas
// and regenerates the variant code from catalogs.
package main

import (
	"fmt"
	"os"

	"github.com/example/azmodels/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "azmodels:", err)
		os.Exit(1)
	}
}
