package components

import (
	cfg "github.com/automoto/stickbrawl/config"
	"github.com/yohamta/donburi"
)

// AttackData is the metadata of the current (or last) attack.
type AttackData struct {
	Tier   cfg.Tier
	Stats  cfg.AttackStats
	HasHit bool // reset at every activation; one hit per attack
}

var Attack = donburi.NewComponentType[AttackData]()
