package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the resolv collision object mirroring an entity's
// position and bounds.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space holds the resolv space shared by every collider in a world. Exactly
// one entity carries it.
var Space = donburi.NewComponentType[resolv.Space]()
