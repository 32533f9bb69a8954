package models

import "github.com/twpayne/go-geom"

// SRIDWGS84 is the spatial reference of every FieldLocation.
const SRIDWGS84 = 4326

// FieldLocation is a single coordinate standing in for a field. Boundary
// shapes are not modelled.
type FieldLocation struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Point converts the location to a go-geom XY point (x = longitude,
// y = latitude) in WGS84.
func (l FieldLocation) Point() *geom.Point {
	return geom.NewPoint(geom.XY).
		MustSetCoords(geom.Coord{l.Longitude, l.Latitude}).
		SetSRID(SRIDWGS84)
}

// FieldLocationFromPoint is the inverse of Point. A nil or empty point gives
// the zero location.
func FieldLocationFromPoint(p *geom.Point) FieldLocation {
	if p == nil || p.Empty() {
		return FieldLocation{}
	}
	return FieldLocation{
		Longitude: p.X(),
		Latitude:  p.Y(),
	}
}
