package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData drives an entity's position and rotation from gween sequences.
// Nil sequences are skipped; finished sequences loop when Loop is set.
type TweenData struct {
	PositionX *gween.Sequence
	PositionY *gween.Sequence
	// Rotation values are in degrees clockwise from north.
	Rotation *gween.Sequence
	Loop     bool
}

var Tween = donburi.NewComponentType[TweenData]()
