package tags

import "github.com/yohamta/donburi"

var (
	Fighter      = donburi.NewTag().SetName("Fighter")
	DamageNumber = donburi.NewTag().SetName("DamageNumber")
)

// Resolv tags for physics collision
const (
	ResolvFighter = "Fighter"
	ResolvHitbox  = "Hitbox"
)
