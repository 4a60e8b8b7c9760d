// Package tilemap reads and writes Tiled-style JSON maps and turns their
// "world" layer into a populated gridgraph.Grid.
//
// A map document looks like:
//
//	{"width": 4, "height": 2,
//	 "layers": [{"name": "world", "width": 4, "height": 2,
//	             "data": [8, -1, -1, 3, -1, 3, -1, 0]}]}
//
// data is row-major: element i is cell (i / width, i % width). Files ending
// in ".lz4", or starting with the lz4 frame magic, are decompressed first.
package tilemap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pierrec/lz4/v4"
)

// WorldLayer is the layer name holding terrain codes.
const WorldLayer = "world"

// lz4Ext selects lz4 framing on Load and Save.
const lz4Ext = ".lz4"

// lz4Magic is the little-endian lz4 frame magic number 0x184D2204.
var lz4Magic = []byte{0x04, 0x22, 0x4D, 0x18}

var (
	// ErrDecode indicates a malformed map document.
	ErrDecode = errors.New("tilemap: cannot decode map")
	// ErrLayerNotFound indicates the requested layer is absent.
	ErrLayerNotFound = errors.New("tilemap: layer not found")
)

// Map is a decoded map document.
type Map struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Layers []Layer `json:"layers"`
}

// Layer is one named layer of terrain codes.
type Layer struct {
	Name   string    `json:"name"`
	Width  int       `json:"width,omitempty"`
	Height int       `json:"height,omitempty"`
	Data   []float64 `json:"data"`
}

// Dims returns (rows, cols) of the layer, falling back to the map's size
// when the layer omits its own.
func (m *Map) Dims(l *Layer) (rows, cols int) {
	rows, cols = l.Height, l.Width
	if rows == 0 {
		rows = m.Height
	}
	if cols == 0 {
		cols = m.Width
	}
	return rows, cols
}

// Layer returns the first layer called name.
func (m *Map) Layer(name string) (*Layer, error) {
	for i := range m.Layers {
		if m.Layers[i].Name == name {
			return &m.Layers[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrLayerNotFound, name)
}

// World returns the "world" terrain layer.
func (m *Map) World() (*Layer, error) {
	return m.Layer(WorldLayer)
}

// Decode parses a JSON map document from r.
func Decode(r io.Reader) (*Map, error) {
	var m Map
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return &m, nil
}

// Encode writes m to w as JSON.
func Encode(w io.Writer, m *Map) error {
	return json.NewEncoder(w).Encode(m)
}

// Load reads and decodes the map at path, decompressing lz4 input.
func Load(path string) (*Map, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tilemap: %w", err)
	}
	if strings.HasSuffix(path, lz4Ext) || bytes.HasPrefix(raw, lz4Magic) {
		if raw, err = decompressLZ4(raw); err != nil {
			return nil, fmt.Errorf("tilemap: %s: %w", path, err)
		}
	}
	m, err := Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Save encodes m to path, lz4-compressed when path ends in ".lz4".
func Save(path string, m *Map) error {
	var buf bytes.Buffer
	if err := Encode(&buf, m); err != nil {
		return fmt.Errorf("tilemap: %w", err)
	}
	data := buf.Bytes()
	if strings.HasSuffix(path, lz4Ext) {
		var err error
		if data, err = compressLZ4(data); err != nil {
			return fmt.Errorf("tilemap: %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("tilemap: %w", err)
	}
	return nil
}

// compressLZ4 compresses data into one lz4 frame.
func compressLZ4(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer := lz4.NewWriter(&buf)

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// decompressLZ4 decompresses an lz4 frame.
func decompressLZ4(data []byte) ([]byte, error) {
	reader := lz4.NewReader(bytes.NewReader(data))

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
