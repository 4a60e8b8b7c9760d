package tilemap_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/navgrid/gridgraph"
	"github.com/katalvlaran/navgrid/tilemap"
)

const doc = `{
  "width": 3, "height": 3,
  "layers": [
    {"name": "decor", "data": [1, 1, 1, 1, 1, 1, 1, 1, 1]},
    {"name": "world", "width": 3, "height": 3,
     "data": [8, -1, -1, 3, 3, -1, -1, -1, 0]}
  ]
}`

func TestDecode_World(t *testing.T) {
	m, err := tilemap.Decode(strings.NewReader(doc))
	require.NoError(t, err)

	world, err := m.World()
	require.NoError(t, err)
	assert.Equal(t, []float64{8, -1, -1, 3, 3, -1, -1, -1, 0}, world.Data)
	rows, cols := m.Dims(world)
	assert.Equal(t, 3, rows)
	assert.Equal(t, 3, cols)

	decor, err := m.Layer("decor")
	require.NoError(t, err)
	rows, cols = m.Dims(decor)
	assert.Equal(t, 3, rows, "layer dims fall back to the map size")
	assert.Equal(t, 3, cols)

	_, err = m.Layer("missing")
	assert.ErrorIs(t, err, tilemap.ErrLayerNotFound)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := tilemap.Decode(strings.NewReader(`{"layers": [`))
	assert.ErrorIs(t, err, tilemap.ErrDecode)
}

func TestLocate(t *testing.T) {
	start, target, err := tilemap.Locate([]float64{-1, 8, 3, 0}, 2)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Coord{X: 0, Y: 1}, start)
	assert.Equal(t, gridgraph.Coord{X: 1, Y: 1}, target)

	cases := []struct {
		name  string
		codes []float64
		err   error
	}{
		{"NoStart", []float64{-1, 0}, tilemap.ErrNoStart},
		{"NoTarget", []float64{9, -1}, tilemap.ErrNoTarget},
		{"TwoStarts", []float64{8, 12, 0, -1}, tilemap.ErrDuplicateStart},
		{"TwoTargets", []float64{8, 0, 0, -1}, tilemap.ErrDuplicateTarget},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := tilemap.Locate(tc.codes, 2)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, _, err = tilemap.Locate([]float64{8, 0}, 0)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}

func TestBuild(t *testing.T) {
	g, err := tilemap.Build(1, 3, 3, []float64{8, -1, -1, 3, 3, -1, -1, -1, 0})
	require.NoError(t, err)
	assert.True(t, g.Populated())
	assert.Equal(t, gridgraph.Coord{}, g.Start().Coord)
	assert.Equal(t, gridgraph.Coord{X: 2, Y: 2}, g.Target().Coord)

	_, err = tilemap.Build(1, 3, 4, []float64{8, -1, -1, 3, 3, -1, -1, -1, 0})
	assert.ErrorIs(t, err, gridgraph.ErrSizeMismatch)

	_, err = tilemap.Build(1, 1, 3, []float64{8, 5, 0})
	assert.ErrorIs(t, err, gridgraph.ErrUnknownTerrain)

	_, err = tilemap.Build(1, 0, 3, nil)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	m, err := tilemap.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	dir := t.TempDir()

	for _, name := range []string{"map.json", "map.json.lz4"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, tilemap.Save(path, m))

			got, err := tilemap.Load(path)
			require.NoError(t, err)
			assert.Equal(t, m, got)
		})
	}
}

// TestLoad_DetectsLZ4Magic loads compressed data saved under a plain name.
func TestLoad_DetectsLZ4Magic(t *testing.T) {
	m, err := tilemap.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	dir := t.TempDir()

	packed := filepath.Join(dir, "map.lz4")
	require.NoError(t, tilemap.Save(packed, m))
	plain := filepath.Join(dir, "map.tmj")
	require.NoError(t, os.Rename(packed, plain))

	got, err := tilemap.Load(plain)
	require.NoError(t, err)
	world, err := got.World()
	require.NoError(t, err)
	assert.Len(t, world.Data, 9)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := tilemap.Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
