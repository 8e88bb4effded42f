package components

import (
	cfg "github.com/automoto/stickbrawl/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState cfg.ActionState
	StateTimer   int // frames spent in CurrentState
}

// Set switches state and restarts the timer.
func (s *StateData) Set(next cfg.ActionState) {
	s.CurrentState = next
	s.StateTimer = 0
}

var State = donburi.NewComponentType[StateData]()
