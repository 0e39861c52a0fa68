package clipboard

import (
	"gridclip/internal/core"
	"gridclip/internal/tile"
)

// Copy stages the cells of the source area into the buffer. The buffer is
// reallocated to the source bounds, the area is scanned row-major writing
// raw cells, and every visited station fragment is merged into the buffer's
// station list.
//
// Precondition: IsBuffer(buf), src non-empty and inside its map.
func Copy(src tile.OrthogonalArea, buf *tile.Map) {
	if src.IsEmpty() {
		panic("clipboard: copying an empty area")
	}

	AllocateBuffer(buf, src.W, src.H)

	var builder StationsBuilder
	for it := tile.NewTransformIter(src, buf.Tile(0, 0), core.TransformIdentity); it.Next(); {
		s, d := it.Src(), it.Dst()
		c := *s.Cell()
		*d.Cell() = c

		if c.Type != tile.TypeStation {
			continue
		}
		switch c.Part {
		case tile.PartRail:
			builder.AddRailPart(c.StationID, c.StationClass, c.StationType, c.SpecIndex)
		case tile.PartAirport:
			if c.Anchor {
				builder.AddAirportPart(c.StationID, d.X, d.Y, c.AirportType, c.AirportLayout)
			} else {
				builder.AddSimplePart(c.StationID)
			}
		default:
			builder.AddSimplePart(c.StationID)
		}
	}
	builder.Finish(buf)
}

// Paste writes the staged content of the buffer back onto the map of the
// destination tile, transformed. The destination tile fixes the anchor of
// the transformed bounding box; destination steps that leave the map or land
// on a sentinel border are skipped silently. Rail station cells are restored
// from the buffer's station list so a staged region stays authoritative over
// its fragments.
//
// Precondition: IsBuffer(buf), buffer not empty, dst valid.
func Paste(buf *tile.Map, dst tile.Index, t core.Transform) {
	src := ContentArea(buf)
	start := dst.Add(src.TransformedNorthOffset(t))

	for it := tile.NewTransformIter(src, start, t); it.Next(); {
		s, d := it.Src(), it.Dst()
		if !d.IsValid() || !d.IsInner() {
			continue
		}

		c := *s.Cell()
		if c.Type == tile.TypeVoid {
			// Staged void cells mark out-of-play source tiles; they never
			// overwrite live content.
			continue
		}
		if c.Type == tile.TypeStation {
			if st := FindStation(c.StationID, buf); st != nil && c.Part == tile.PartRail {
				spec := st.Spec(c.SpecIndex)
				c.StationClass = spec.Class
				c.StationType = spec.Type
			}
		}
		*d.Cell() = c
	}
}

// PasteArea returns the destination area a paste at dst with the given
// transform would cover, clamped to the destination map.
func PasteArea(buf *tile.Map, dst tile.Index, t core.Transform) tile.OrthogonalArea {
	src := ContentArea(buf)
	size := core.TransformSize(core.Size{W: src.W, H: src.H}, t)
	area := tile.AreaXY(dst.M, dst.X, dst.Y, size.W, size.H)
	area.ClampToMap()
	return area
}
