package routes

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MacroPower/layoutfix/pkg/layouterrors"
)

// File is the on-disk form of a mapping file.
//
//	routes:
//	  - key: admin_products
//	    route: /admin/products
//	    title: Products
//
// A bare top-level list of entries is accepted as well.
type File struct {
	Routes Table `yaml:"routes"`
}

// LoadFile reads and validates a YAML mapping file.
func LoadFile(path string) (Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", layouterrors.ErrReadFile, err)
	}

	t, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// Parse decodes and validates YAML mapping data.
func Parse(data []byte) (Table, error) {
	var doc yaml.Node

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", layouterrors.ErrInvalidFormat, err)
	}

	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty mapping file", layouterrors.ErrInvalidFormat)
	}

	var t Table

	switch root := doc.Content[0]; root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&t); err != nil {
			return nil, fmt.Errorf("%w: %w", layouterrors.ErrInvalidFormat, err)
		}

	case yaml.MappingNode:
		var f File
		if err := root.Decode(&f); err != nil {
			return nil, fmt.Errorf("%w: %w", layouterrors.ErrInvalidFormat, err)
		}

		t = f.Routes

	default:
		return nil, fmt.Errorf("%w: expected a list or a routes map", layouterrors.ErrInvalidFormat)
	}

	if len(t) == 0 {
		return nil, fmt.Errorf("%w: no routes defined", layouterrors.ErrInvalidMapping)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// Marshal encodes a table as a mapping file. Derived titles are written out
// explicitly.
func Marshal(t Table) ([]byte, error) {
	f := File{Routes: make(Table, 0, len(t))}
	for _, e := range t {
		e.Title = e.DisplayTitle()
		f.Routes = append(f.Routes, e)
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("%w: %w", layouterrors.ErrYAMLMarshal, err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", layouterrors.ErrYAMLMarshal, err)
	}

	return buf.Bytes(), nil
}
