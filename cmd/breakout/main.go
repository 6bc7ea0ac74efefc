// Command breakout generates breakout grid stylesheets and lints markup
// that uses them.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/yacobolo/breakout"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// lint already printed its issues
		if !errors.Is(err, errIssuesFound) {
			fmt.Fprintln(os.Stderr, breakout.RenderStyle(breakout.StyleRed, "Error: "+err.Error(), useColors()))
		}
		os.Exit(1)
	}
}
