// Command lkecon cleans the Sri Lanka economy dataset, prints its summaries
// and renders the exploration charts.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
