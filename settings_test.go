package scmap

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewSettingsMatchesPackageDefaults(t *testing.T) {
	s := NewSettings()
	if s.Difference != Difference {
		t.Errorf("Difference = %v, want %v", s.Difference, Difference)
	}
	if s.ChokeDistanceMax != ChokeDistanceMax {
		t.Errorf("ChokeDistanceMax = %v, want %v", s.ChokeDistanceMax, ChokeDistanceMax)
	}
}

func TestSettingsRoundTripsThroughYAML(t *testing.T) {
	s := NewSettings()
	s.ChokeDistanceMax = 20
	s.ClimbHighMax = 30

	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := s.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if loaded.ChokeDistanceMax != 20 {
		t.Errorf("ChokeDistanceMax = %v, want 20", loaded.ChokeDistanceMax)
	}
	if loaded.ClimbHighMax != 30 {
		t.Errorf("ClimbHighMax = %v, want 30", loaded.ClimbHighMax)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Fatal("expected an error loading a nonexistent settings file")
	}
	if !os.IsNotExist(err) {
		t.Errorf("got %v, want a not-exist error", err)
	}
}
