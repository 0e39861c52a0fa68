package clipboard

import (
	"testing"

	"gridclip/internal/tile"
)

func TestAddSimplePartCreatesFragment(t *testing.T) {
	buf := GetBuffer(0)
	defer EmptyBuffer(buf)
	AllocateBuffer(buf, 2, 2)

	var b StationsBuilder
	b.AddSimplePart(4)
	b.AddSimplePart(4)
	if b.Len() != 1 {
		t.Fatalf("builder holds %d stations, want 1", b.Len())
	}
	b.Finish(buf)

	st := FindStation(4, buf)
	if st == nil {
		t.Fatal("station 4 not found after Finish")
	}
	if st.HasAirport() {
		t.Error("simple part produced an airport")
	}
	if len(st.Specs) != 0 {
		t.Errorf("simple part produced %d specs", len(st.Specs))
	}
}

func TestAddRailPartGrowsWithPlaceholders(t *testing.T) {
	var b StationsBuilder
	b.AddRailPart(1, 5, 2, 3)

	st := b.station(1)
	if len(st.Specs) != 4 {
		t.Fatalf("spec list length %d, want 4", len(st.Specs))
	}
	for i := 0; i < 3; i++ {
		if !st.Specs[i].isPlaceholder() {
			t.Errorf("spec %d is %+v, want placeholder", i, st.Specs[i])
		}
	}
	if st.Specs[3] != (StationSpec{Class: 5, Type: 2}) {
		t.Errorf("spec 3 is %+v", st.Specs[3])
	}
}

func TestAddRailPartIdempotent(t *testing.T) {
	var b StationsBuilder
	b.AddRailPart(1, 5, 2, 3)
	b.AddRailPart(1, 5, 2, 3)

	st := b.station(1)
	if len(st.Specs) != 4 || st.Specs[3] != (StationSpec{Class: 5, Type: 2}) {
		t.Fatalf("repeat add changed the spec list: %+v", st.Specs)
	}
}

func TestAddRailPartUpgradesPlaceholderOnly(t *testing.T) {
	var b StationsBuilder
	b.AddRailPart(1, 5, 2, 3)
	// Slot 1 still holds the placeholder and may be upgraded.
	b.AddRailPart(1, 7, 1, 1)
	if got := b.station(1).Specs[1]; got != (StationSpec{Class: 7, Type: 1}) {
		t.Fatalf("placeholder upgrade failed: %+v", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic rewriting a set spec slot")
		}
	}()
	b.AddRailPart(1, 6, 0, 3)
}

func TestAddRailPartIndexZeroMustBeTrivial(t *testing.T) {
	var b StationsBuilder
	b.AddRailPart(1, tile.StationClassDefault, 0, 0)
	b.AddRailPart(2, tile.StationClassWaypoint, 0, 0)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for custom spec at index 0")
		}
	}()
	b.AddRailPart(3, 5, 2, 0)
}

func TestAddAirportPartRecordsFootprint(t *testing.T) {
	var b StationsBuilder
	b.AddAirportPart(9, 2, 1, tile.AirportSmall, 0)

	st := b.station(9)
	if !st.HasAirport() {
		t.Fatal("airport not recorded")
	}
	ap := st.Airport
	spec := tile.AirportSpecOf(tile.AirportSmall)
	if ap.X != 2 || ap.Y != 1 || ap.W != spec.SizeX || ap.H != spec.SizeY {
		t.Errorf("airport footprint %+v, want anchor (2,1) size %dx%d", ap, spec.SizeX, spec.SizeY)
	}
}

func TestAddAirportPartSwapsSideFacingLayout(t *testing.T) {
	var b StationsBuilder
	// Layout 1 of the small airport faces east.
	b.AddAirportPart(9, 0, 0, tile.AirportSmall, 1)

	ap := b.station(9).Airport
	spec := tile.AirportSpecOf(tile.AirportSmall)
	if ap.W != spec.SizeY || ap.H != spec.SizeX {
		t.Errorf("side-facing layout footprint %dx%d, want %dx%d swapped",
			ap.W, ap.H, spec.SizeX, spec.SizeY)
	}
}

func TestSingleAirportPerStation(t *testing.T) {
	var b StationsBuilder
	b.AddAirportPart(9, 0, 0, tile.AirportSmall, 0)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic adding a second airport to one station")
		}
	}()
	b.AddAirportPart(9, 3, 3, tile.AirportLarge, 0)
}

func TestFinishResetsBuilder(t *testing.T) {
	buf := GetBuffer(1)
	defer EmptyBuffer(buf)
	AllocateBuffer(buf, 2, 2)

	var b StationsBuilder
	b.AddSimplePart(1)
	b.AddSimplePart(2)
	b.Finish(buf)

	if b.Len() != 0 {
		t.Errorf("builder holds %d stations after Finish, want 0", b.Len())
	}
	if FindStation(1, buf) == nil || FindStation(2, buf) == nil {
		t.Error("committed stations not found in buffer")
	}

	// The builder is reusable and a later Finish replaces the list.
	b.AddSimplePart(3)
	b.Finish(buf)
	if FindStation(1, buf) != nil {
		t.Error("second Finish kept the prior list")
	}
	if FindStation(3, buf) == nil {
		t.Error("second Finish did not commit the new list")
	}
}

func TestFindStationByTile(t *testing.T) {
	buf := GetBuffer(2)
	defer EmptyBuffer(buf)
	AllocateBuffer(buf, 3, 3)

	c := buf.Tile(1, 1).Cell()
	c.Type = tile.TypeStation
	c.StationID = 12

	var b StationsBuilder
	b.AddSimplePart(12)
	b.Finish(buf)

	st := FindStationByTile(buf.Tile(1, 1))
	if st == nil || st.ID != 12 {
		t.Fatalf("FindStationByTile returned %+v, want station 12", st)
	}
}

func TestSpecBeyondListIsTrivial(t *testing.T) {
	st := newStation(1)
	if got := st.Spec(5); !got.isPlaceholder() {
		t.Errorf("Spec(5) on empty list = %+v, want placeholder", got)
	}
}
