package render

import (
	"image/color"

	"gridclip/internal/tile"
)

// Display values index the world palette. The low values mirror the tile
// kinds; the high values are interaction overlays painted over them.
const (
	DisplayClear uint8 = iota
	DisplayWater
	DisplayRail
	DisplayObject
	DisplayVoid
	DisplayRailStation
	DisplayRoadStation
	DisplayDock
	DisplayAirport
	DisplayAirportAnchor
	DisplaySelection
	DisplayPasteGhost
	DisplayCursor
)

var worldPalette = []color.RGBA{
	DisplayClear:         {R: 86, G: 125, B: 70, A: 255},
	DisplayWater:         {R: 42, G: 74, B: 140, A: 255},
	DisplayRail:          {R: 90, G: 88, B: 84, A: 255},
	DisplayObject:        {R: 120, G: 108, B: 92, A: 255},
	DisplayVoid:          {R: 12, G: 12, B: 14, A: 255},
	DisplayRailStation:   {R: 176, G: 176, B: 184, A: 255},
	DisplayRoadStation:   {R: 190, G: 140, B: 70, A: 255},
	DisplayDock:          {R: 80, G: 170, B: 180, A: 255},
	DisplayAirport:       {R: 210, G: 210, B: 215, A: 255},
	DisplayAirportAnchor: {R: 240, G: 240, B: 120, A: 255},
	DisplaySelection:     {R: 120, G: 180, B: 250, A: 255},
	DisplayPasteGhost:    {R: 200, G: 120, B: 200, A: 255},
	DisplayCursor:        {R: 255, G: 250, B: 120, A: 255},
}

// Palette exposes the color palette used for rendering the world.
func Palette() []color.RGBA {
	return worldPalette
}

// EncodeCell maps one tile to its base display value.
func EncodeCell(c *tile.Cell) uint8 {
	switch c.Type {
	case tile.TypeWater:
		return DisplayWater
	case tile.TypeRail:
		return DisplayRail
	case tile.TypeObject:
		return DisplayObject
	case tile.TypeVoid:
		return DisplayVoid
	case tile.TypeStation:
		switch c.Part {
		case tile.PartRail:
			return DisplayRailStation
		case tile.PartBus, tile.PartTruck:
			return DisplayRoadStation
		case tile.PartDock, tile.PartBuoy:
			return DisplayDock
		case tile.PartAirport:
			if c.Anchor {
				return DisplayAirportAnchor
			}
			return DisplayAirport
		}
		return DisplayRailStation
	default:
		return DisplayClear
	}
}
