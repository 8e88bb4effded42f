package components

import (
	cfg "github.com/automoto/stickbrawl/config"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// MatchData stores the current match state.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	ID             uuid.UUID
	Phase          cfg.MatchPhase
	Timer          int // frames since the phase began
	CountdownValue int // number shown during the countdown, 0 once the fight signal fired
	FightSignaled  bool
	Winner         cfg.Outcome
	VsAI           bool
	Weapons        [cfg.SlotCount]cfg.WeaponType
	Fighters       [cfg.SlotCount]*donburi.Entry // slot order
	Restart        bool                          // one-frame restart trigger
}

// Fighter returns the entry in the given slot.
func (m *MatchData) Fighter(slot cfg.Slot) *donburi.Entry {
	if !slot.Valid() {
		return nil
	}
	return m.Fighters[slot]
}

var Match = donburi.NewComponentType[MatchData]()
