package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestFieldLocation_Point(t *testing.T) {
	loc := FieldLocation{Longitude: -3.1883, Latitude: 55.9533}

	p := loc.Point()
	require.NotNil(t, p)

	assert.Equal(t, geom.XY, p.Layout())
	assert.Equal(t, SRIDWGS84, p.SRID())
	assert.Equal(t, -3.1883, p.X())
	assert.Equal(t, 55.9533, p.Y())
}

func TestFieldLocationFromPoint(t *testing.T) {
	loc := FieldLocation{Longitude: 106.6297, Latitude: 10.8231}
	assert.Equal(t, loc, FieldLocationFromPoint(loc.Point()))

	p := geom.NewPoint(geom.XY).MustSetCoords(geom.Coord{12.5, -7.25})
	assert.Equal(t, FieldLocation{Longitude: 12.5, Latitude: -7.25}, FieldLocationFromPoint(p))
}

func TestFieldLocationFromPoint_NilOrEmpty(t *testing.T) {
	assert.Equal(t, FieldLocation{}, FieldLocationFromPoint(nil))
	assert.Equal(t, FieldLocation{}, FieldLocationFromPoint(geom.NewPointEmpty(geom.XY)))
}
