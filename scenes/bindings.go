package scenes

import (
	cfg "github.com/automoto/stickbrawl/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Bindings maps each action of one slot to its keys.
type Bindings map[cfg.ActionID][]ebiten.Key

// DefaultBindings are the two players sharing one keyboard.
var DefaultBindings = [cfg.SlotCount]Bindings{
	cfg.SlotOne: {
		cfg.ActionMoveLeft:  {ebiten.KeyA},
		cfg.ActionMoveRight: {ebiten.KeyD},
		cfg.ActionJump:      {ebiten.KeyW},
		cfg.ActionCrouch:    {ebiten.KeyS},
		cfg.ActionDodge:     {ebiten.KeyQ},
		cfg.ActionBasic:     {ebiten.KeyE},
		cfg.ActionSkill1:    {ebiten.KeyR},
		cfg.ActionSkill2:    {ebiten.KeyT},
	},
	cfg.SlotTwo: {
		cfg.ActionMoveLeft:  {ebiten.KeyArrowLeft},
		cfg.ActionMoveRight: {ebiten.KeyArrowRight},
		cfg.ActionJump:      {ebiten.KeyArrowUp},
		cfg.ActionCrouch:    {ebiten.KeyArrowDown},
		cfg.ActionDodge:     {ebiten.KeySlash},
		cfg.ActionBasic:     {ebiten.KeyPeriod},
		cfg.ActionSkill1:    {ebiten.KeyComma},
		cfg.ActionSkill2:    {ebiten.KeyM},
	},
}

// Global keys.
const (
	keyRestart  = ebiten.KeyEnter
	keyRematch  = ebiten.KeyF5
	keyHitboxes = ebiten.KeyF1
)

// held resolves which actions are down for one slot.
func (b Bindings) held(isDown func(ebiten.Key) bool) [cfg.ActionCount]bool {
	var out [cfg.ActionCount]bool
	for action, keys := range b {
		for _, k := range keys {
			if isDown(k) {
				out[action] = true
				break
			}
		}
	}
	return out
}
