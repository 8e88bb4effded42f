package components

import (
	cfg "github.com/automoto/stickbrawl/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound cues emitted during a tick (singleton component).
// Playback happens outside the simulation.
type AudioData struct {
	PendingCues []cfg.CueID
}

var Audio = donburi.NewComponentType[AudioData]()
