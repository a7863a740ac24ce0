package parser

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/conorfennell/knoldue/internal/domain"
)

var errNullDocument = errors.New("document is null, expected a list of records")

// Format is the serialization of a deck file.
type Format int

const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	default:
		return "json"
	}
}

// FormatOf picks the format from the file extension. Anything that is not
// YAML is read as JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// ParseFile reads the deck at the given path and returns its records in file order.
func ParseFile(path string) ([]domain.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file, FormatOf(path))
}

// Parse decodes a top-level sequence of flashcard records from r.
func Parse(r io.Reader, format Format) ([]domain.Record, error) {
	switch format {
	case YAML:
		return parseYAML(r)
	default:
		return parseJSON(r)
	}
}

func parseJSON(r io.Reader) ([]domain.Record, error) {
	dec := json.NewDecoder(r)
	var records []domain.Record
	if err := dec.Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}
	if records == nil {
		return nil, errNullDocument
	}
	// Trailing content makes the document malformed.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after the list of records")
	}
	return records, nil
}

func parseYAML(r io.Reader) ([]domain.Record, error) {
	dec := yaml.NewDecoder(r)
	var records []domain.Record
	if err := dec.Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}
	if records == nil {
		return nil, errNullDocument
	}
	// A second document makes the file malformed.
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected document after the list of records")
	}
	return records, nil
}
