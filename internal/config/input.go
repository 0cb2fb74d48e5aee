package config

import (
	"fmt"
	"os"

	"github.com/covergap/covergap/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of profile input files. This is the
// boundary where malformed input surfaces as an error; everything past
// it is total.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a profile from a YAML (or JSON, which yaml.v3 also
// accepts) file and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Profile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse unmarshals and validates profile bytes.
func (ip *InputParser) Parse(data []byte) (*domain.Profile, error) {
	var profile domain.Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateProfile(&profile); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}

	return &profile, nil
}

// ValidateProfile validates the loaded profile. Unrecognized genders are
// deliberately let through (the standard lookup absorbs them); negative
// amounts and ages are rejected here so the engine never sees them.
func (ip *InputParser) ValidateProfile(profile *domain.Profile) error {
	if profile == nil {
		return fmt.Errorf("profile is required")
	}
	if err := profile.Validate(); err != nil {
		return err
	}
	if profile.Finance != nil {
		if err := ip.validateLifeEventIDs(profile.Finance.LifeEvents); err != nil {
			return fmt.Errorf("finance: %w", err)
		}
	}
	return nil
}

// validateLifeEventIDs rejects duplicate event IDs; deletion is by ID, so
// duplicates would make events undeletable.
func (ip *InputParser) validateLifeEventIDs(events []domain.LifeEvent) error {
	seen := make(map[string]bool, len(events))
	for i, ev := range events {
		if ev.ID == "" {
			return fmt.Errorf("life event %d (%s): id is required", i, ev.Name)
		}
		if seen[ev.ID] {
			return fmt.Errorf("life event %d (%s): duplicate id %q", i, ev.Name, ev.ID)
		}
		seen[ev.ID] = true
	}
	return nil
}
