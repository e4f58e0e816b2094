package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBBox(t *testing.T) {
	tcases := []struct {
		name     string
		input    string
		expected Bounds
		wantErr  bool
	}{
		{
			name:     "valid bbox",
			input:    "-70.7,-33.5,-70.5,-33.3",
			expected: Bounds{MinLon: -70.7, MinLat: -33.5, MaxLon: -70.5, MaxLat: -33.3},
		},
		{
			name:     "spaces are tolerated",
			input:    " -70.7, -33.5, -70.5, -33.3 ",
			expected: Bounds{MinLon: -70.7, MinLat: -33.5, MaxLon: -70.5, MaxLat: -33.3},
		},
		{
			name:    "wrong component count",
			input:   "-70.7,-33.5,-70.5",
			wantErr: true,
		},
		{
			name:    "non-numeric component",
			input:   "-70.7,abc,-70.5,-33.3",
			wantErr: true,
		},
		{
			name:    "min exceeds max",
			input:   "-70.5,-33.5,-70.7,-33.3",
			wantErr: true,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := ParseBBox(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, b)
		})
	}
}

func TestBoundsIntersects(t *testing.T) {
	base := Bounds{MinLon: -71, MinLat: -34, MaxLon: -70, MaxLat: -33}

	tcases := []struct {
		name     string
		other    Bounds
		expected bool
	}{
		{
			name:     "overlapping",
			other:    Bounds{MinLon: -70.5, MinLat: -33.5, MaxLon: -69.5, MaxLat: -32.5},
			expected: true,
		},
		{
			name:     "contained",
			other:    Bounds{MinLon: -70.8, MinLat: -33.8, MaxLon: -70.2, MaxLat: -33.2},
			expected: true,
		},
		{
			name:     "touching edge",
			other:    Bounds{MinLon: -70, MinLat: -34, MaxLon: -69, MaxLat: -33},
			expected: true,
		},
		{
			name:     "disjoint east",
			other:    Bounds{MinLon: -69.9, MinLat: -34, MaxLon: -69, MaxLat: -33},
			expected: false,
		},
		{
			name:     "disjoint north",
			other:    Bounds{MinLon: -71, MinLat: -32.9, MaxLon: -70, MaxLat: -32},
			expected: false,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, base.Intersects(tc.other))
			assert.Equal(t, tc.expected, tc.other.Intersects(base), "intersection must be symmetric")
		})
	}
}

func TestFromPolygon(t *testing.T) {
	rings := [][][]float64{
		{
			{-70.66, -33.45},
			{-70.60, -33.45},
			{-70.60, -33.40},
			{-70.66, -33.40},
			{-70.66, -33.45},
		},
		// hole, still contributes to the bounding box scan
		{
			{-70.64, -33.44},
			{-70.62, -33.44},
			{-70.62, -33.42},
			{-70.64, -33.42},
		},
	}

	b := FromPolygon(rings)
	assert.Equal(t, Bounds{MinLon: -70.66, MinLat: -33.45, MaxLon: -70.60, MaxLat: -33.40}, b)
	assert.True(t, b.Contains(-70.63, -33.43))
	assert.False(t, b.Contains(-70.7, -33.43))
}

func TestFromPolygonEmpty(t *testing.T) {
	assert.Equal(t, Bounds{}, FromPolygon(nil))
	assert.Equal(t, Bounds{}, FromPolygon([][][]float64{{}}))
}
