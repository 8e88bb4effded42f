package components

import (
	cfg "github.com/automoto/stickbrawl/config"
	"github.com/yohamta/donburi"
)

// Facing directions
const (
	FacingLeft  = -1.0
	FacingRight = 1.0
)

// FighterData identifies a fighter and the arena bounds it lives in.
type FighterData struct {
	Slot       cfg.Slot
	Weapon     cfg.WeaponType
	Stats      cfg.WeaponConfig // tables captured at spawn
	Facing     float64          // FacingLeft or FacingRight
	GroundY    float64          // feet line
	ArenaWidth float64
}

var Fighter = donburi.NewComponentType[FighterData]()
