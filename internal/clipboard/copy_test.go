package clipboard

import (
	"testing"

	"gridclip/internal/core"
	"gridclip/internal/tile"
)

// buildWorld returns a small world with a recognizable terrain pattern and a
// two-part rail station.
func buildWorld() *tile.Map {
	m := tile.New(10, 10, false)

	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			c := m.Tile(x, y).Cell()
			c.Height = uint8(x + y)
			if (x+y)%3 == 0 {
				c.Type = tile.TypeWater
			}
		}
	}

	for i, p := range [][2]int{{3, 4}, {4, 4}} {
		c := m.Tile(p[0], p[1]).Cell()
		c.Type = tile.TypeStation
		c.Part = tile.PartRail
		c.StationID = 7
		c.SpecIndex = uint8(i + 1)
		c.StationClass = 5
		c.StationType = 2
	}
	return m
}

func TestCopyStagesCellsAndStations(t *testing.T) {
	world := buildWorld()
	buf := GetBuffer(0)
	defer EmptyBuffer(buf)

	src := tile.AreaXY(world, 2, 3, 4, 3)
	Copy(src, buf)

	if buf.SizeX() != 5 || buf.SizeY() != 4 {
		t.Fatalf("buffer sized %dx%d, want 5x4", buf.SizeX(), buf.SizeY())
	}

	for it := tile.NewOrthoIter(ContentArea(buf)); it.Next(); {
		d := it.Tile()
		s := world.Tile(src.Tile.X+d.X, src.Tile.Y+d.Y)
		if *d.Cell() != *s.Cell() {
			t.Errorf("staged cell (%d,%d) = %+v, want %+v", d.X, d.Y, *d.Cell(), *s.Cell())
		}
	}

	st := FindStation(7, buf)
	if st == nil {
		t.Fatal("station 7 not staged")
	}
	if len(st.Specs) != 3 {
		t.Fatalf("station 7 has %d specs, want 3", len(st.Specs))
	}
	want := StationSpec{Class: 5, Type: 2}
	if st.Specs[1] != want || st.Specs[2] != want {
		t.Errorf("station specs %+v, want %+v at indices 1 and 2", st.Specs, want)
	}
}

func TestCopyAggregatesAirportAnchor(t *testing.T) {
	world := tile.New(10, 10, false)
	spec := tile.AirportSpecOf(tile.AirportSmall)
	for dy := 0; dy < int(spec.SizeY); dy++ {
		for dx := 0; dx < int(spec.SizeX); dx++ {
			c := world.Tile(2+dx, 2+dy).Cell()
			c.Type = tile.TypeStation
			c.Part = tile.PartAirport
			c.StationID = 3
			c.AirportType = tile.AirportSmall
			c.Anchor = dx == 0 && dy == 0
		}
	}

	buf := GetBuffer(1)
	defer EmptyBuffer(buf)
	Copy(tile.AreaXY(world, 1, 1, 6, 5), buf)

	st := FindStation(3, buf)
	if st == nil {
		t.Fatal("airport station not staged")
	}
	if !st.HasAirport() {
		t.Fatal("airport fragment missing")
	}
	if st.Airport.X != 1 || st.Airport.Y != 1 {
		t.Errorf("airport anchor (%d,%d) in buffer, want (1,1)", st.Airport.X, st.Airport.Y)
	}
}

func TestPastePlacesTransformedCells(t *testing.T) {
	world := buildWorld()
	buf := GetBuffer(2)
	defer EmptyBuffer(buf)

	src := tile.AreaXY(world, 2, 3, 4, 3)
	Copy(src, buf)

	for tr := core.Transform(0); tr < core.NumTransforms; tr++ {
		dst := tile.New(12, 12, false)
		anchor := dst.Tile(3, 3)
		Paste(buf, anchor, tr)

		north := src.TransformedNorthOffset(tr)
		for it := tile.NewOrthoIter(src); it.Next(); {
			s := it.Tile()
			off := src.TransformedTileOffset(s, tr).Add(north)
			d := anchor.Add(off)
			got := *d.Cell()
			want := *s.Cell()
			if got != want {
				t.Fatalf("%v: destination (%d,%d) = %+v, want source (%d,%d) %+v",
					tr, d.X, d.Y, got, s.X, s.Y, want)
			}
		}
	}
}

func TestPasteRoundTripThroughInverse(t *testing.T) {
	world := buildWorld()
	buf := GetBuffer(3)
	buf2 := GetBuffer(4)
	defer EmptyBuffer(buf)
	defer EmptyBuffer(buf2)

	src := tile.AreaXY(world, 2, 3, 4, 3)
	Copy(src, buf)

	for tr := core.Transform(0); tr < core.NumTransforms; tr++ {
		size := core.TransformSize(core.Size{W: src.W, H: src.H}, tr)

		mid := tile.New(12, 12, false)
		Paste(buf, mid.Tile(1, 1), tr)

		Copy(tile.AreaXY(mid, 1, 1, size.W, size.H), buf2)
		back := tile.New(12, 12, false)
		Paste(buf2, back.Tile(2, 2), core.Invert(tr))

		for it := tile.NewOrthoIter(src); it.Next(); {
			s := it.Tile()
			d := back.Tile(2+s.X-src.Tile.X, 2+s.Y-src.Tile.Y)
			if *d.Cell() != *s.Cell() {
				t.Fatalf("%v: round trip broke cell (%d,%d): got %+v, want %+v",
					tr, s.X, s.Y, *d.Cell(), *s.Cell())
			}
		}
	}
}

func TestPasteClipsAtDestinationBorder(t *testing.T) {
	world := buildWorld()
	buf := GetBuffer(0)
	defer EmptyBuffer(buf)

	Copy(tile.AreaXY(world, 0, 0, 6, 6), buf)

	dst := tile.New(5, 5, false)
	Paste(buf, dst.Tile(2, 2), core.TransformIdentity)

	// Only the inner 2x2 corner fits; the rest is skipped, and the sentinel
	// borders stay void.
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			isVoid := dst.Tile(x, y).Type() == tile.TypeVoid
			onBorder := x == 4 || y == 4
			if onBorder != isVoid {
				t.Errorf("tile (%d,%d): void=%v, want %v", x, y, isVoid, onBorder)
			}
		}
	}
}

func TestPasteRestoresRailSpecFromStationList(t *testing.T) {
	world := buildWorld()
	buf := GetBuffer(1)
	defer EmptyBuffer(buf)

	Copy(tile.AreaXY(world, 3, 4, 2, 1), buf)

	// Tamper with the staged cell; the station list stays authoritative.
	c := buf.Tile(0, 0).Cell()
	c.StationClass = 0
	c.StationType = 0

	dst := tile.New(8, 8, false)
	Paste(buf, dst.Tile(1, 1), core.TransformIdentity)

	got := dst.Tile(1, 1).Cell()
	if got.StationClass != 5 || got.StationType != 2 {
		t.Errorf("pasted rail cell spec (%d,%d), want (5,2)",
			got.StationClass, got.StationType)
	}
}

func TestPasteAreaMatchesTransformedSize(t *testing.T) {
	world := buildWorld()
	buf := GetBuffer(2)
	defer EmptyBuffer(buf)

	Copy(tile.AreaXY(world, 2, 3, 4, 3), buf)

	dst := tile.New(20, 20, false)
	a := PasteArea(buf, dst.Tile(5, 5), core.TransformRot90)
	if a.W != 3 || a.H != 4 {
		t.Errorf("paste area %dx%d, want 3x4", a.W, a.H)
	}
}
