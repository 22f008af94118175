package layout

import (
	"bytes"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Parse validates data and decodes it into a Layout. source names the
// document in error messages. Validation failures are returned as
// *InvalidLayoutError.
func Parse(data []byte, source string) (*Layout, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating layout %s: %w", source, err)
	}
	if !result.Valid {
		return nil, &InvalidLayoutError{Source: source, Issues: result.Issues}
	}

	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing layout %s: %w", source, err)
	}
	return &l, nil
}

// Load reads and parses a layout file.
func Load(path string) (*Layout, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, path)
}

// Resolve returns the layout at path, or the built-in layout when path is
// empty.
func Resolve(path string) (*Layout, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Marshal encodes l as YAML with two-space indentation.
func Marshal(l *Layout) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return nil, fmt.Errorf("encoding layout %q: %w", l.Name, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding layout %q: %w", l.Name, err)
	}
	return buf.Bytes(), nil
}

// WriteFile writes l to path. An existing file is only replaced when force
// is set.
func WriteFile(path string, l *Layout, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists; use --force to overwrite", path)
		}
	}
	data, err := Marshal(l)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing layout %s: %w", path, err)
	}
	return nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
