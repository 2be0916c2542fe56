package physics

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/impulse/internal/core/vector"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(`
cell_size: 25
gravity: {x: 0, y: -3.7}
bounds:
  min_x: -100
  max_x: 100
  min_y: 0
`))
	require.NoError(t, err)
	assert.Equal(t, 25.0, cfg.CellSize)
	assert.Equal(t, vector.New(0, -3.7), cfg.Gravity)
	require.NotNil(t, cfg.Bounds.MinX)
	assert.Equal(t, -100.0, *cfg.Bounds.MinX)
	assert.Equal(t, 0.0, *cfg.Bounds.MinY)
	assert.Nil(t, cfg.Bounds.MaxY)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig(strings.NewReader("bounds: {min_y: -5}\n"))
	require.NoError(t, err)
	assert.Equal(t, 10.0, cfg.CellSize)
	assert.Equal(t, DefaultGravity, cfg.Gravity)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"unknown field", "cellsize: 3\n", nil},
		{"zero cell size", "cell_size: 0\n", ErrInvalidConfig},
		{"negative cell size", "cell_size: -1\n", ErrInvalidConfig},
		{"inverted bounds", "bounds: {min_x: 10, max_x: -10}\n", ErrInvalidBounds},
		{"empty y range", "bounds: {min_y: 3, max_y: 3}\n", ErrInvalidBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(strings.NewReader(tt.yaml))
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Gravity = vector.New(math.NaN(), 0)
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = DefaultConfig()
	cfg.Bounds.MaxX = Bound(math.Inf(1))
	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, ErrInvalidBounds)
}
