package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "scmap",
	Short: "preprocess RTS map grids into chokes, borders and overlord spots",
	Long: `scmap is the command-line application accompanying go-scmap:
	- classify a map's pathing/placement/height grids into walkability,
	  borders and cliff climbability,
	- detect chokepoints and overlord vantage spots,
	- save/load build settings (YAML files),
	- print diagnostic information about a map's analysis result.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(); it only needs to happen
// once to RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
