package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arl/go-scmap"
	"github.com/spf13/cobra"
)

// mapInput is the on-disk JSON representation of the three grids and
// playable box NewMapWithSettings needs. encoding/json is used here rather
// than a corpus library, since no example repo ships a grid-of-integers
// serialization format and this is a trivial, boundary-only decode.
type mapInput struct {
	Pathing   [][]int `json:"pathing"`
	Placement [][]int `json:"placement"`
	Height    [][]int `json:"height"`
	XStart    int     `json:"x_start"`
	YStart    int     `json:"y_start"`
	XEnd      int     `json:"x_end"`
	YEnd      int     `json:"y_end"`
}

var analyzeCfgVal string

// analyzeCmd represents the analyze command.
var analyzeCmd = &cobra.Command{
	Use:   "analyze MAPFILE",
	Short: "analyze a map's pathing/placement/height grids",
	Long: `Read a map's pathing, placement and height grids from MAPFILE (JSON),
classify its tiles, detect chokepoints and overlord vantage spots, and print
a summary of the result.`,
	Args: cobra.ExactArgs(1),
	Run:  doAnalyze,
}

func init() {
	RootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVar(&analyzeCfgVal, "config", "", "build settings YAML file (optional, defaults built in)")
}

func doAnalyze(cmd *cobra.Command, args []string) {
	buf, err := os.ReadFile(args[0])
	check(err)

	var in mapInput
	check(json.Unmarshal(buf, &in))

	settings := scmap.NewSettings()
	if analyzeCfgVal != "" {
		check(unmarshalYAMLFile(analyzeCfgVal, &settings))
	}

	log := scmap.NewBuildLog()
	m, err := scmap.NewMapWithSettings(in.Pathing, in.Placement, in.Height,
		in.XStart, in.YStart, in.XEnd, in.YEnd, settings, log)
	check(err)

	fmt.Printf("map: %dx%d\n", m.Width, m.Height)
	fmt.Printf("borders: %d\n", len(m.Borders()))
	fmt.Printf("choke segments: %d\n", len(m.ChokeSegments))
	fmt.Printf("chokes (grouped): %d\n", len(m.Chokes))
	fmt.Printf("overlord spots: %d\n", len(m.OverlordSpots))
	for _, msg := range log.Messages() {
		fmt.Println(msg)
	}
}
