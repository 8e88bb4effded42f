package factory

import (
	"github.com/automoto/stickbrawl/archetypes"
	"github.com/automoto/stickbrawl/components"
	cfg "github.com/automoto/stickbrawl/config"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// CreateMatch spawns the match singleton in its countdown phase.
func CreateMatch(w donburi.World, weapons [cfg.SlotCount]cfg.WeaponType, vsAI bool) *donburi.Entry {
	e := archetypes.Match.Spawn(w)
	components.Match.SetValue(e, components.MatchData{
		ID:             uuid.New(),
		Phase:          cfg.PhaseCountdown,
		CountdownValue: cfg.Match.CountdownFrom,
		Winner:         cfg.OutcomeNone,
		VsAI:           vsAI,
		Weapons:        weapons,
	})
	return e
}

// CreateAudio spawns the cue queue singleton.
func CreateAudio(w donburi.World) *donburi.Entry {
	return archetypes.Audio.Spawn(w)
}
