package dataset

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Manifest is the YAML form of a Configuration:
//
//	classes: [road, background]
//	localized_error: kitti
//	training: kitti_train.tensor
//	testing: kitti_test.tensor
type Manifest struct {
	Classes        []string      `yaml:"classes"`
	LocalizedError ErrorFunction `yaml:"localized_error"`
	Training       string        `yaml:"training"`
	Testing        string        `yaml:"testing"`
}

// ParseManifest reads a YAML manifest. Unknown keys are rejected.
func ParseManifest(r io.Reader) (*Configuration, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDirective, err)
	}

	return &Configuration{
		Classes:       len(m.Classes),
		ClassNames:    m.Classes,
		ErrorFunction: m.LocalizedError,
		TrainingPath:  m.Training,
		TestingPath:   m.Testing,
	}, nil
}
