package components

import (
	cfg "github.com/automoto/stickbrawl/config"
	"github.com/yohamta/donburi"
)

// PlayerInputData stores per-fighter input. Human and bot inputs are kept in
// separate snapshots; CurrentInput is the merged view the fighter reads.
type PlayerInputData struct {
	Human         [cfg.ActionCount]bool
	Bot           [cfg.ActionCount]bool
	CurrentInput  [cfg.ActionCount]bool
	BotControlled bool
}

// Pressed reports whether the action is held in the merged view.
func (p *PlayerInputData) Pressed(action cfg.ActionID) bool {
	return p.CurrentInput[action]
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
