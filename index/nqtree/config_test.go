package nqtree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/nqtree/geom"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
name: sensors
capacity: 2
bounds: [[0, 100], [0, 100], [10, 200], [100, 300]]
searchParallelism: 4
`))
	require.NoError(t, err)
	assert.Equal(t, "sensors", cfg.Name)
	assert.Equal(t, 2, cfg.Capacity)
	assert.Equal(t, 4, cfg.SearchParallelism)
	assert.False(t, cfg.Metrics)

	bounds, err := cfg.AxisBounds()
	require.NoError(t, err)
	assert.Equal(t, sampleBounds, bounds)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("bounds: [[0, 1]]\n"))
	require.NoError(t, err)
	assert.Equal(t, defaultName, cfg.Name)
	assert.Equal(t, 4, cfg.Capacity)
	assert.Equal(t, 1, cfg.SearchParallelism)
}

func TestParseConfigInvalid(t *testing.T) {
	var testCases = []struct {
		description string
		yaml        string
		expectErr   error
	}{
		{description: "no bounds", yaml: "capacity: 3\n", expectErr: ErrInvalidBounds},
		{description: "short axis", yaml: "bounds: [[0, 1], [2]]\n", expectErr: ErrInvalidBounds},
		{description: "bad capacity", yaml: "capacity: -1\nbounds: [[0, 1]]\n", expectErr: ErrInvalidCapacity},
	}
	for _, testCase := range testCases {
		_, err := ParseConfig([]byte(testCase.yaml))
		assert.ErrorIs(t, err, testCase.expectErr, testCase.description)
	}

	_, err := ParseConfig([]byte("bounds: {not: a list}\n"))
	assert.Error(t, err)
}

func TestLoadConfigAndBuild(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: from_file
capacity: 2
bounds:
  - [0, 100]
  - [0, 100]
  - [10, 200]
  - [100, 300]
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	tr, err := NewFromConfig[string](cfg)
	require.NoError(t, err)
	assert.Equal(t, "from_file", tr.Name())
	assert.Equal(t, 4, tr.Dims())

	for _, p := range [][]float64{{15, 18, 20, 115}, {20, 20, 82, 123}, {30, 30, 30, 131}} {
		ok, err := tr.Insert("p", p...)
		require.NoError(t, err)
		require.True(t, ok)
	}
	assert.True(t, tr.Divided())
	found, err := tr.Search(geom.NewSphere(geom.NewPoint(20, 22, 23, 122), 20))
	require.NoError(t, err)
	assert.Len(t, found, 2)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseConfigKeepsInvertedAxis(t *testing.T) {
	cfg, err := ParseConfig([]byte("bounds: [[5, 1]]\n"))
	require.NoError(t, err)
	bounds, err := cfg.AxisBounds()
	require.NoError(t, err)
	assert.Equal(t, [][2]float64{{5, 1}}, bounds)
}

func TestNewFromConfigOptionOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bounds = [][]float64{{0, 1}}
	tr, err := NewFromConfig[int](&cfg, WithName("override"))
	require.NoError(t, err)
	assert.Equal(t, "override", tr.Name())
}
