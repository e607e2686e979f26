package config

import (
	"os"

	"github.com/pkg/errors"
)

func LoadConfig(path string) (C, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	root, err := UnmarshallYamlRoot(content)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse configuration from '%s'", path)
	}

	return &config{root: root}, nil
}

func FromRoot(root *Root) C {
	return &config{root: root}
}

func FromYamlString(data string) (C, error) {
	root, err := UnmarshallYamlRoot([]byte(data))
	if err != nil {
		return nil, err
	}

	return &config{root: root}, nil
}
