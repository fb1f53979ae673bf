package scmap

import (
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"
)

// Settings holds every tunable threshold of the preprocessing pipeline, so
// a caller can override the defaults without touching code (spec.md §3,
// glossary "Settings"), the same way the teacher's sample packages carry a
// Settings struct and cmd/recast/cmd/utils.go round-trips one through YAML.
type Settings struct {
	Difference int `yaml:"difference"`

	ChokeDistanceMin         float64 `yaml:"choke_distance_min"`
	ChokeDistanceMax         float64 `yaml:"choke_distance_max"`
	ChokeBorderGraphDistance float64 `yaml:"choke_border_graph_distance"`

	ClimbLowMin  int `yaml:"climb_low_min"`
	ClimbLowMax  int `yaml:"climb_low_max"`
	ClimbHighMin int `yaml:"climb_high_min"`
	ClimbHighMax int `yaml:"climb_high_max"`
}

// NewSettings returns a Settings struct filled with the package's default
// values (the same ones constants.go uses when no Settings is supplied).
func NewSettings() Settings {
	return Settings{
		Difference:               Difference,
		ChokeDistanceMin:         ChokeDistanceMin,
		ChokeDistanceMax:         ChokeDistanceMax,
		ChokeBorderGraphDistance: ChokeBorderGraphDistance,
		ClimbLowMin:              climbLowMin,
		ClimbLowMax:              climbLowMax,
		ClimbHighMin:             climbHighMin,
		ClimbHighMax:             climbHighMax,
	}
}

// LoadSettings reads a YAML-encoded Settings from path, starting from
// NewSettings' defaults so a partial file only overrides what it mentions.
func LoadSettings(path string) (Settings, error) {
	s := NewSettings()
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(buf, &s); err != nil {
		return s, err
	}
	return s, nil
}

// Save writes s to path as YAML.
func (s Settings) Save(path string) error {
	buf, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, buf, 0644)
}
