package systems

import (
	"github.com/automoto/stickbrawl/components"
	cfg "github.com/automoto/stickbrawl/config"
	"github.com/yohamta/donburi"
)

// SetHumanInput writes one key state into the human snapshot of a fighter.
func SetHumanInput(e *donburi.Entry, action cfg.ActionID, pressed bool) {
	components.PlayerInput.Get(e).Human[action] = pressed
}

// MergeInput picks each fighter's input for this frame from the snapshot its
// owner writes to: the bot snapshot for bot slots, the human one otherwise.
func MergeInput(env *Env) {
	for _, e := range fighters(env) {
		input := components.PlayerInput.Get(e)
		if input.BotControlled {
			input.CurrentInput = input.Bot
		} else {
			input.CurrentInput = input.Human
		}
	}
}
