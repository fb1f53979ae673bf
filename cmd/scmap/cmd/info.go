package cmd

import (
	"fmt"

	"github.com/arl/go-scmap"
	"github.com/spf13/cobra"
)

// infoCmd represents the info command.
var infoCmd = &cobra.Command{
	Use:   "info SETTINGSFILE",
	Short: "show the thresholds a build settings file carries",
	Long: `Read a build settings file (YAML) and print every threshold it
carries; thresholds the file does not set show the package defaults.`,
	Args: cobra.ExactArgs(1),
	Run:  doInfo,
}

func init() {
	RootCmd.AddCommand(infoCmd)
}

func doInfo(cmd *cobra.Command, args []string) {
	settings, err := scmap.LoadSettings(args[0])
	check(err)

	fmt.Printf("difference:                 %d\n", settings.Difference)
	fmt.Printf("choke distance:             [%.1f, %.1f]\n", settings.ChokeDistanceMin, settings.ChokeDistanceMax)
	fmt.Printf("choke border graph distance: %.1f\n", settings.ChokeBorderGraphDistance)
	fmt.Printf("climb low band:             [%d, %d)\n", settings.ClimbLowMin, settings.ClimbLowMax)
	fmt.Printf("climb high band:            [%d, %d]\n", settings.ClimbHighMin, settings.ClimbHighMax)
}
