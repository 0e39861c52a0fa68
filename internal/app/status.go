package app

import (
	"fmt"

	"gridclip/internal/core"
)

// status collects the interaction state shown on the HUD panel.
type status struct {
	BufferIndex int
	BufferW     int
	BufferH     int
	BufferEmpty bool
	Stations    int
	Transform   core.Transform
	Cursor      core.Point
	SelAnchor   *core.Point
}

// lines renders the status as HUD text, title first.
func (s status) lines() []string {
	buffer := "empty"
	if !s.BufferEmpty {
		buffer = fmt.Sprintf("%dx%d, %d stations", s.BufferW, s.BufferH, s.Stations)
	}
	selection := "none"
	if s.SelAnchor != nil {
		selection = fmt.Sprintf("%d,%d .. %d,%d",
			s.SelAnchor.X, s.SelAnchor.Y, s.Cursor.X, s.Cursor.Y)
	}

	return []string{
		"gridclip",
		"",
		fmt.Sprintf("buffer    %d/5 (%s)", s.BufferIndex+1, buffer),
		fmt.Sprintf("transform %s", s.Transform),
		fmt.Sprintf("cursor    %d,%d", s.Cursor.X, s.Cursor.Y),
		fmt.Sprintf("selection %s", selection),
		"",
		"arrows/hjkl move",
		"v anchor   c copy",
		"p paste    x empty",
		"1-5 buffer",
		"t/T rotate m mirror",
		"r regen    q quit",
	}
}
