package clipboard

import (
	"fmt"

	"gridclip/internal/core"
	"gridclip/internal/tile"
)

// StationSpec is one entry of a station's sparse per-part spec list: the
// custom graphics class and the type within it.
type StationSpec struct {
	Class tile.StationClass
	Type  uint8
}

// isPlaceholder reports whether the spec slot still holds the trivial
// default that may be upgraded later.
func (s StationSpec) isPlaceholder() bool {
	return s.Class == tile.StationClassDefault && s.Type == 0
}

// Airport is the single optional airport footprint of a staged station. The
// anchor coordinates are buffer-relative.
type Airport struct {
	X      int
	Y      int
	W      uint8
	H      uint8
	Type   tile.AirportType
	Layout uint8
}

// Station aggregates the metadata of one multi-tile station collected while
// scanning a copied region.
type Station struct {
	ID      tile.StationID
	Airport Airport
	Specs   []StationSpec
}

// newStation returns a fragment record with no airport and no specs.
func newStation(id tile.StationID) *Station {
	return &Station{
		ID:      id,
		Airport: Airport{Type: tile.AirportInvalid},
	}
}

// HasAirport reports whether an airport part was recorded.
func (s *Station) HasAirport() bool { return s.Airport.Type != tile.AirportInvalid }

// Spec returns the spec stored at the given index, or the trivial default
// for indices beyond the recorded list.
func (s *Station) Spec(index uint8) StationSpec {
	if int(index) >= len(s.Specs) {
		return StationSpec{}
	}
	return s.Specs[index]
}

// FindStation looks up a staged station by id.
//
// Precondition: IsBuffer(m).
func FindStation(id tile.StationID, m *tile.Map) *Station {
	if !IsBuffer(m) {
		panic("clipboard: map is not a clipboard buffer")
	}
	return stationList(m)[id]
}

// FindStationByTile resolves the owning buffer of a station tile and looks
// up its station. The tile's map must be a clipboard buffer; the live world
// keeps its station objects elsewhere.
func FindStationByTile(t tile.Index) *Station {
	return FindStation(t.StationID(), t.M)
}

// StationCount returns the number of stations staged in a buffer.
//
// Precondition: IsBuffer(m).
func StationCount(m *tile.Map) int {
	if !IsBuffer(m) {
		panic("clipboard: map is not a clipboard buffer")
	}
	return len(stationList(m))
}

// StationsBuilder merges station fragments into per-id records during one
// copy operation. The zero value is ready to use; Finish transfers ownership
// of the accumulated list to a buffer and resets the builder.
type StationsBuilder struct {
	stations StationList
}

// station returns the record for id, creating it on first sight.
func (b *StationsBuilder) station(id tile.StationID) *Station {
	if b.stations == nil {
		b.stations = make(StationList)
	}
	st := b.stations[id]
	if st == nil {
		st = newStation(id)
		b.stations[id] = st
	}
	return st
}

// AddSimplePart records a station part that carries no spec data
// (bus/truck/dock/buoy).
func (b *StationsBuilder) AddSimplePart(id tile.StationID) {
	b.station(id)
}

// AddRailPart records a rail station or waypoint part. The spec list grows
// as needed, filling new slots with the trivial placeholder. A placeholder
// slot may be upgraded once; a set slot must be seen again with the exact
// same value.
func (b *StationsBuilder) AddRailPart(id tile.StationID, class tile.StationClass, typ uint8, specIndex uint8) {
	if specIndex == 0 && (typ != 0 || (class != tile.StationClassDefault && class != tile.StationClassWaypoint)) {
		panic("clipboard: spec index 0 must hold a plain rail or waypoint part")
	}

	st := b.station(id)
	for int(specIndex) >= len(st.Specs) {
		st.Specs = append(st.Specs, StationSpec{})
	}

	next := StationSpec{Class: class, Type: typ}
	prior := st.Specs[specIndex]
	if !prior.isPlaceholder() && prior != next {
		panic(fmt.Sprintf("clipboard: station %d spec %d already set to %+v, refusing %+v",
			id, specIndex, prior, next))
	}
	st.Specs[specIndex] = next
}

// AddAirportPart records the airport of a station: its buffer-relative
// anchor, type and layout. The footprint is the type's canonical size, with
// the axes swapped when the layout faces sideways. A station holds at most
// one airport.
func (b *StationsBuilder) AddAirportPart(id tile.StationID, x, y int, typ tile.AirportType, layout uint8) {
	st := b.station(id)
	if st.HasAirport() {
		panic(fmt.Sprintf("clipboard: station %d already has an airport", id))
	}

	spec := tile.AirportSpecOf(typ)
	rotation := core.DirN
	if int(layout) < len(spec.Rotations) {
		rotation = spec.Rotations[layout]
	}

	st.Airport = Airport{X: x, Y: y, Type: typ, Layout: layout}
	if rotation.IsSideFacing() {
		st.Airport.W = spec.SizeY
		st.Airport.H = spec.SizeX
	} else {
		st.Airport.W = spec.SizeX
		st.Airport.H = spec.SizeY
	}
}

// Finish commits the accumulated list into the buffer's station slot,
// replacing any prior list, and resets the builder for reuse.
//
// Precondition: IsBuffer(m).
func (b *StationsBuilder) Finish(m *tile.Map) {
	setStationList(m, b.stations)
	b.stations = nil
}

// Len returns the number of stations accumulated so far.
func (b *StationsBuilder) Len() int { return len(b.stations) }
