package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"familyfinance/internal/service"
)

// LoadFile reads a YAML household scenario from path
func LoadFile(path string) (service.Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return service.Scenario{}, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}
	sc, err := Parse(b)
	if err != nil {
		return service.Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a YAML household scenario. Unknown fields are rejected.
func Parse(b []byte) (service.Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var dto Household
	if err := dec.Decode(&dto); err != nil {
		if errors.Is(err, io.EOF) {
			return service.Scenario{}, fmt.Errorf("%w: empty scenario", service.ErrInvalidScenario)
		}
		return service.Scenario{}, fmt.Errorf("%w: %w", service.ErrInvalidScenario, err)
	}
	return dto.ToScenario()
}
