package tags

import "github.com/yohamta/donburi"

var (
	Mobile = donburi.NewTag().SetName("Mobile")
	Static = donburi.NewTag().SetName("Static")
	Camera = donburi.NewTag().SetName("Camera")
)

// Resolv tags for collision objects
const (
	ResolvSolid  = "solid"
	ResolvMobile = "mobile"
	ResolvSpawn  = "spawn"
)
