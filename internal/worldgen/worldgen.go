// Package worldgen builds seeded demo worlds for the clipboard tooling to
// operate on: terrain with enough variety to see pastes land, plus a few
// multi-tile stations that exercise the station aggregation paths.
package worldgen

import (
	"gridclip/internal/tile"
	corerng "gridclip/pkg/core"
)

// Generator produces a fresh world of the given content dimensions,
// deterministic per seed.
type Generator func(w, h int, seed int64) *tile.Map

var generators = map[string]Generator{}

// Register adds a generator under the provided name.
func Register(name string, g Generator) {
	if name == "" || g == nil {
		return
	}
	generators[name] = g
}

// Generators exposes the registry of available world generators.
func Generators() map[string]Generator {
	return generators
}

func init() {
	Register("islands", Islands)
}

// Islands generates the default demo world: a land mass dotted with rocks,
// carved by water patches, with one rail station, a dock on the water's
// edge and a small airport.
func Islands(w, h int, seed int64) *tile.Map {
	m := tile.New(w+1, h+1, false)
	rng := corerng.NewRNG(seed)

	sprinkleObjects(m, rng)
	carveWaterPatches(m, rng)
	placeStations(m)
	return m
}

// sprinkleObjects scatters obstacle tiles over the clear ground.
func sprinkleObjects(m *tile.Map, rng *corerng.RNG) {
	const objectChance = 0.04
	for y := 0; y < m.SizeY()-1; y++ {
		for x := 0; x < m.SizeX()-1; x++ {
			c := m.Tile(x, y).Cell()
			c.Height = rng.Uint8n(4)
			if rng.Chance(objectChance) {
				c.Type = tile.TypeObject
			}
		}
	}
}

// carveWaterPatches floods a handful of rough discs, leaving the rest of the
// grid as islands.
func carveWaterPatches(m *tile.Map, rng *corerng.RNG) {
	w, h := m.SizeX()-1, m.SizeY()-1
	count := (w * h) / 120
	if count < 1 {
		count = 1
	}

	for p := 0; p < count; p++ {
		cx := rng.IntN(w)
		cy := rng.IntN(h)
		radius := 2 + rng.IntN(4)
		r2 := radius * radius
		for dy := -radius; dy <= radius; dy++ {
			yp := cy + dy
			if yp < 0 || yp >= h {
				continue
			}
			for dx := -radius; dx <= radius; dx++ {
				xp := cx + dx
				if xp < 0 || xp >= w {
					continue
				}
				if dx*dx+dy*dy > r2 {
					continue
				}
				if !rng.Chance(0.85) {
					continue
				}
				c := m.Tile(xp, yp).Cell()
				c.Type = tile.TypeWater
				c.Height = 0
			}
		}
	}
}

// placeStations stamps the fixed demo stations: a 3x2 rail station with two
// custom spec slots, a dock part, and a small airport with its anchor on the
// north-west tile. Positions scale with the map but stay off the borders.
func placeStations(m *tile.Map) {
	w, h := m.SizeX()-1, m.SizeY()-1

	railX, railY := w/4, h/4
	for dy := 0; dy < 2; dy++ {
		for dx := 0; dx < 3; dx++ {
			c := m.Tile(railX+dx, railY+dy).Cell()
			*c = tile.Cell{
				Type:         tile.TypeStation,
				Part:         tile.PartRail,
				StationID:    1,
				SpecIndex:    uint8(dx),
				StationClass: railSpecClass(dx),
				StationType:  railSpecType(dx),
			}
		}
	}

	dock := m.Tile(w/2, h/2).Cell()
	*dock = tile.Cell{
		Type:      tile.TypeStation,
		Part:      tile.PartDock,
		StationID: 2,
	}

	spec := tile.AirportSpecOf(tile.AirportSmall)
	airX, airY := (3*w)/4-int(spec.SizeX), (3*h)/4-int(spec.SizeY)
	if airX < 0 {
		airX = 0
	}
	if airY < 0 {
		airY = 0
	}
	for dy := 0; dy < int(spec.SizeY); dy++ {
		for dx := 0; dx < int(spec.SizeX); dx++ {
			c := m.Tile(airX+dx, airY+dy).Cell()
			*c = tile.Cell{
				Type:        tile.TypeStation,
				Part:        tile.PartAirport,
				StationID:   3,
				AirportType: tile.AirportSmall,
				Anchor:      dx == 0 && dy == 0,
			}
		}
	}
}

// railSpecClass returns the class stored at a rail spec slot. Slot 0 must
// stay the trivial default.
func railSpecClass(slot int) tile.StationClass {
	if slot == 0 {
		return tile.StationClassDefault
	}
	return tile.StationClass(2 + slot)
}

// railSpecType returns the type within the class for a rail spec slot.
func railSpecType(slot int) uint8 {
	if slot == 0 {
		return 0
	}
	return uint8(slot)
}
