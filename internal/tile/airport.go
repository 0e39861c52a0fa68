package tile

import (
	"fmt"

	"gridclip/internal/core"
)

// AirportType selects one of the known airport footprints.
type AirportType uint8

const (
	AirportSmall AirportType = iota
	AirportLarge
	AirportMetropolitan

	// AirportInvalid is the "no airport" sentinel.
	AirportInvalid AirportType = 0xFF
)

// AirportSpec describes the canonical footprint of an airport type and the
// facing of each of its layouts.
type AirportSpec struct {
	SizeX     uint8
	SizeY     uint8
	Rotations []core.Direction
}

var airportSpecs = map[AirportType]AirportSpec{
	AirportSmall:        {SizeX: 4, SizeY: 3, Rotations: []core.Direction{core.DirN, core.DirE}},
	AirportLarge:        {SizeX: 6, SizeY: 6, Rotations: []core.Direction{core.DirN}},
	AirportMetropolitan: {SizeX: 6, SizeY: 6, Rotations: []core.Direction{core.DirN, core.DirE, core.DirS, core.DirW}},
}

// AirportSpecOf returns the spec for a known airport type.
func AirportSpecOf(t AirportType) AirportSpec {
	spec, ok := airportSpecs[t]
	if !ok {
		panic(fmt.Sprintf("tile: unknown airport type %d", t))
	}
	return spec
}
