package layout

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// MaxFileSize bounds the size of a layout document.
const MaxFileSize = 1 << 20

type document struct {
	Tiles []Tile `yaml:"tiles"`
}

// Load decodes a YAML layout document:
//
//	tiles:
//	  - name: test_tile
//	    grid:
//	      - ["P1[0]", "P1[1]", "", ""]
//	    symbols:
//	      P1: PROPERTY_ONE
func Load(r io.Reader) ([]Tile, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("layout exceeds %d bytes", MaxFileSize)
	}

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode layout: %w", err)
	}

	seen := make(map[string]bool, len(doc.Tiles))
	for i, t := range doc.Tiles {
		if t.Name == "" {
			return nil, fmt.Errorf("tile %d has no name", i)
		}
		if seen[t.Name] {
			return nil, fmt.Errorf("duplicate tile %s", t.Name)
		}
		seen[t.Name] = true
	}
	return doc.Tiles, nil
}

// LoadFile is Load on the named file.
func LoadFile(path string) ([]Tile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layout: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// CompileAll compiles every tile, keyed by tile name.
func CompileAll(tiles []Tile) (map[string]*Tables, error) {
	out := make(map[string]*Tables, len(tiles))
	for i := range tiles {
		ts, err := tiles[i].Compile()
		if err != nil {
			return nil, err
		}
		out[ts.Name] = ts
	}
	return out, nil
}
