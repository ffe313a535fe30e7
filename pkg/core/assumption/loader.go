package assumption

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// LoadFile reads a YAML assumption file and overlays it on Defaults().
// Keys absent from the file keep their default values. The merged set is
// validated before being returned.
func LoadFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("read assumptions file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML assumption overrides on top of Defaults().
func Parse(data []byte) (Set, error) {
	set := Defaults()
	if err := yaml.UnmarshalStrict(data, &set); err != nil {
		return Set{}, fmt.Errorf("parse assumptions file: %w", err)
	}
	if err := set.Validate(); err != nil {
		return Set{}, fmt.Errorf("invalid assumptions file: %w", err)
	}
	return set, nil
}
