package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the fighter body in the collision space. X/Y is the top-left corner.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton collision space of the arena.
var Space = donburi.NewComponentType[resolv.Space]()
