package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData tracks sprite flash effect (hit flash)
type FlashData struct {
	Duration int     // frames remaining
	R, G, B  float32 // color multipliers
}

var Flash = donburi.NewComponentType[FlashData]()

// DamageNumberData is a floating damage label.
type DamageNumberData struct {
	Amount  int
	X       float64 // center
	Y       float64 // current baseline
	Alpha   float32
	Rise    *gween.Tween // vertical offset from the origin
	Fade    *gween.Tween
	OriginY float64
}

var DamageNumber = donburi.NewComponentType[DamageNumberData]()

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	FramesRemaining int
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
