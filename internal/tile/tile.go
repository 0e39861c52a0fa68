package tile

// Type classifies what a cell holds. The staging layer interprets nothing
// beyond TypeVoid; the remaining kinds exist for the surrounding game and
// the demo world.
type Type uint8

const (
	TypeClear Type = iota
	TypeWater
	TypeRail
	TypeStation
	TypeObject
	TypeVoid
)

// StationID identifies a multi-tile station object.
type StationID uint16

// InvalidStation is the distinguished "no station" sentinel.
const InvalidStation StationID = 0xFFFF

// StationPart tells which kind of station part occupies a station cell.
type StationPart uint8

const (
	PartRail StationPart = iota
	PartBus
	PartTruck
	PartDock
	PartBuoy
	PartAirport
)

// StationClass groups custom rail station graphics. Class 0 is the default
// class; plain rail and waypoint parts with no custom spec use it at spec
// index 0.
type StationClass uint8

const (
	StationClassDefault StationClass = iota
	StationClassWaypoint
)

// Cell is the composite per-tile record of a grid instance. Using one record
// for the base and extended halves makes their shared lifetime structural:
// a map either owns a full slice of cells or none at all.
//
// The station fields are meaningful only when Type is TypeStation.
type Cell struct {
	Type   Type
	Height uint8
	Owner  uint8

	StationID StationID
	Part      StationPart

	// Rail part spec, denormalized onto the cell so a staged region is
	// self-contained.
	SpecIndex    uint8
	StationClass StationClass
	StationType  uint8

	// Airport part data; Anchor marks the northern footprint tile.
	AirportType   AirportType
	AirportLayout uint8
	Anchor        bool
}
