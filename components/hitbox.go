package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// HitboxData is the fighter's weapon box. The object sits in the collision
// space only while the attack is in its active window.
type HitboxData struct {
	Object  *resolv.Object
	InSpace bool
}

var Hitbox = donburi.NewComponentType[HitboxData]()
