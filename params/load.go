// SPDX-License-Identifier: MIT

package params

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML document over Default and validates the result.
// Keys absent from the document keep their default; unknown keys are
// rejected so a misspelled option never silently falls back.
func Parse(data []byte) (ParameterSet, error) {
	p := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return ParameterSet{}, fmt.Errorf("%w: decode yaml: %v", ErrInvalidConfig, err)
	}
	if err := p.Validate(); err != nil {
		return ParameterSet{}, err
	}

	return p, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (ParameterSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ParameterSet{}, fmt.Errorf("params: read %s: %w", path, err)
	}

	return Parse(data)
}
