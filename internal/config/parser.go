package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	inputkiterrors "github.com/alexisbeaulieu97/inputkit/pkg/errors"
)

var errEmptyDocument = errors.New("document is empty")

// ParseConfig reads the preview document at path.
func ParseConfig(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, inputkiterrors.NewParseError(path, 0, err)
	}
	return ParseDocument(path, data)
}

// ParseDocument decodes and validates a preview document. Keys the document
// model does not know are rejected, so a misspelt state flag or adornment
// field fails instead of silently rendering the idle input. Free-form input
// props are exempt. name is used in error messages only.
func ParseDocument(name string, data []byte) (*Document, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			err = errEmptyDocument
		}
		return nil, inputkiterrors.NewYAMLError(name, err)
	}

	if err := ValidateDocument(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
