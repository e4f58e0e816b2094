// Package geo holds the viewport math for the neighborhood map: bounding
// boxes, bbox query parsing and polygon bounds extraction.
package geo

import (
	"fmt"
	"strconv"
	"strings"
)

// Bounds is an axis-aligned lon/lat bounding box.
type Bounds struct {
	MinLon float64 `json:"min_lon"`
	MinLat float64 `json:"min_lat"`
	MaxLon float64 `json:"max_lon"`
	MaxLat float64 `json:"max_lat"`
}

// ParseBBox parses a "minLon,minLat,maxLon,maxLat" query value.
func ParseBBox(s string) (Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Bounds{}, fmt.Errorf("bbox must have 4 values, got %d", len(parts))
	}

	vals := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Bounds{}, fmt.Errorf("bbox value %q: %w", p, err)
		}
		vals[i] = v
	}

	b := Bounds{MinLon: vals[0], MinLat: vals[1], MaxLon: vals[2], MaxLat: vals[3]}
	if b.MinLon > b.MaxLon || b.MinLat > b.MaxLat {
		return Bounds{}, fmt.Errorf("bbox min exceeds max")
	}
	return b, nil
}

// Intersects reports whether the two boxes share any area. Touching edges
// count as intersecting.
func (b Bounds) Intersects(o Bounds) bool {
	return b.MinLon <= o.MaxLon && b.MaxLon >= o.MinLon &&
		b.MinLat <= o.MaxLat && b.MaxLat >= o.MinLat
}

// Contains reports whether the point lies inside or on the box.
func (b Bounds) Contains(lon, lat float64) bool {
	return lon >= b.MinLon && lon <= b.MaxLon && lat >= b.MinLat && lat <= b.MaxLat
}

// FromPolygon computes the bounding box of a GeoJSON polygon coordinate
// array (rings of [lon, lat] positions). Positions with fewer than two
// components are skipped.
func FromPolygon(rings [][][]float64) Bounds {
	b := Bounds{}
	first := true
	for _, ring := range rings {
		for _, pos := range ring {
			if len(pos) < 2 {
				continue
			}
			lon, lat := pos[0], pos[1]
			if first {
				b = Bounds{MinLon: lon, MinLat: lat, MaxLon: lon, MaxLat: lat}
				first = false
				continue
			}
			if lon < b.MinLon {
				b.MinLon = lon
			}
			if lon > b.MaxLon {
				b.MaxLon = lon
			}
			if lat < b.MinLat {
				b.MinLat = lat
			}
			if lat > b.MaxLat {
				b.MaxLat = lat
			}
		}
	}
	return b
}
