package systems

import (
	"github.com/automoto/stickbrawl/components"
	cfg "github.com/automoto/stickbrawl/config"
)

// PlayCue queues a sound cue for the presentation layer.
func PlayCue(env *Env, cue cfg.CueID) {
	entry, ok := components.Audio.First(env.World)
	if !ok {
		return
	}
	audio := components.Audio.Get(entry)
	audio.PendingCues = append(audio.PendingCues, cue)
}

// DrainCues returns and clears the queued cues.
func DrainCues(env *Env) []cfg.CueID {
	entry, ok := components.Audio.First(env.World)
	if !ok {
		return nil
	}
	audio := components.Audio.Get(entry)
	if len(audio.PendingCues) == 0 {
		return nil
	}
	cues := audio.PendingCues
	audio.PendingCues = nil
	return cues
}
