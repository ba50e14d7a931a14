package sector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/circlelayout/pkg/errors"
)

func TestComputeTiles(t *testing.T) {
	tests := []struct {
		name        string
		percentages []float64
		offset      float64
		angleRange  float64
	}{
		{"thirds", []float64{50, 25, 25}, 270, 360},
		{"single", []float64{100}, 0, 360},
		{"half range", []float64{10, 20, 30, 40}, 90, 180},
		{"negative offset", []float64{60, 40}, -45, 360},
		{"zero slice", []float64{0, 100, 0}, 12.5, 360},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sectors := Compute(tt.percentages, tt.offset, tt.angleRange)
			require.Len(t, sectors, len(tt.percentages))
			assert.Equal(t, tt.offset, sectors[0].Start)
			for i := 1; i < len(sectors); i++ {
				assert.Equal(t, sectors[i-1].End, sectors[i].Start, "gap between %d and %d", i-1, i)
			}
			for i, s := range sectors {
				assert.GreaterOrEqual(t, s.Sweep(), 0.0, "sector %d overlaps its predecessor", i)
			}
			assert.InDelta(t, tt.offset+tt.angleRange, sectors[len(sectors)-1].End, 1e-9)
			assert.InDelta(t, tt.angleRange, Total(sectors), 1e-9)
		})
	}
}

func TestComputeScenario(t *testing.T) {
	sectors := Compute([]float64{50, 25, 25}, 270, 360)
	want := []Sector{{270, 450}, {450, 540}, {540, 630}}
	assert.Equal(t, want, sectors)
	assert.Equal(t, 360.0, sectors[0].Center())
}

func TestComputeDrift(t *testing.T) {
	sectors := Compute([]float64{30, 30}, 0, 360)
	assert.InDelta(t, 216, Total(sectors), 1e-9)
	assert.Empty(t, Compute(nil, 0, 360))
}

func TestDrawSweep(t *testing.T) {
	assert.Equal(t, 360.0, Sector{0, 360}.DrawSweep())
	assert.Equal(t, 90.0, Sector{270, 360}.DrawSweep())
	assert.InDelta(t, 10, Sector{0, 370}.DrawSweep(), 1e-9)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(nil))
	assert.NoError(t, Validate([]float64{50, 25, 25}))
	assert.NoError(t, Validate([]float64{100.0 / 3, 100.0 / 3, 100.0 / 3}))

	err := Validate([]float64{40, 40})
	require.Error(t, err)
	assert.Equal(t, errors.KindLayout, errors.KindOf(err))
	assert.Contains(t, err.Error(), "sum to 80")

	err = Validate([]float64{120, -20})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "percentage 0")
}

func TestPercentagesFromWeights(t *testing.T) {
	got := PercentagesFromWeights([]float64{1, 1, 2})
	assert.InDeltaSlice(t, []float64{25, 25, 50}, got, 1e-9)

	got = PercentagesFromWeights([]float64{0, -1, 3})
	assert.InDeltaSlice(t, []float64{0, 0, 100}, got, 1e-9)

	assert.Equal(t, []float64{0, 0}, PercentagesFromWeights([]float64{0, 0}))
}
