package sim

import (
	"github.com/automoto/stickbrawl/components"
	cfg "github.com/automoto/stickbrawl/config"
	"github.com/automoto/stickbrawl/gamemath"
	"github.com/automoto/stickbrawl/systems"
	"github.com/automoto/stickbrawl/tags"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// Snapshot is a read-only copy of one frame.
type Snapshot struct {
	Started        bool
	MatchID        uuid.UUID
	Phase          cfg.MatchPhase
	CountdownValue int
	FightSignaled  bool
	Winner         cfg.Outcome
	VsAI           bool
	Fighters       [cfg.SlotCount]FighterSnapshot
	DamageNumbers  []DamageNumberSnapshot
}

type FighterSnapshot struct {
	Slot          cfg.Slot
	Weapon        cfg.WeaponType
	Body          gamemath.Rect
	Facing        float64
	Health        int
	MaxHealth     int
	HealthRatio   float64
	State         cfg.ActionState
	Tier          cfg.Tier
	Hitbox        gamemath.Rect
	HitboxActive  bool
	Hurtbox       gamemath.Rect
	Flash         int
	FlashR        float32
	FlashG        float32
	FlashB        float32
	Cooldowns     [cfg.CooldownSlotCount]int // whole seconds, rounded up
	BotControlled bool
}

// Alive reports whether the fighter still has health.
func (f FighterSnapshot) Alive() bool {
	return f.Health > 0
}

type DamageNumberSnapshot struct {
	Amount int
	X, Y   float64
	Alpha  float32
}

func takeSnapshot(env *systems.Env) Snapshot {
	match, ok := systems.CurrentMatch(env)
	if !ok {
		return Snapshot{}
	}

	snap := Snapshot{
		Started:        true,
		MatchID:        match.ID,
		Phase:          match.Phase,
		CountdownValue: match.CountdownValue,
		FightSignaled:  match.FightSignaled,
		Winner:         match.Winner,
		VsAI:           match.VsAI,
	}
	for slot, e := range match.Fighters {
		if e != nil && e.Valid() {
			snap.Fighters[slot] = fighterSnapshot(e)
		}
	}

	tags.DamageNumber.Each(env.World, func(e *donburi.Entry) {
		dn := components.DamageNumber.Get(e)
		snap.DamageNumbers = append(snap.DamageNumbers, DamageNumberSnapshot{
			Amount: dn.Amount,
			X:      dn.X,
			Y:      dn.Y,
			Alpha:  dn.Alpha,
		})
	})
	return snap
}

func fighterSnapshot(e *donburi.Entry) FighterSnapshot {
	fighter := components.Fighter.Get(e)
	health := components.Health.Get(e)
	flash := components.Flash.Get(e)

	fs := FighterSnapshot{
		Slot:          fighter.Slot,
		Weapon:        fighter.Weapon,
		Body:          systems.Body(e),
		Facing:        fighter.Facing,
		Health:        health.Current,
		MaxHealth:     health.Max,
		HealthRatio:   health.Ratio(),
		State:         components.State.Get(e).CurrentState,
		Tier:          systems.CurrentTier(e),
		Flash:         flash.Duration,
		FlashR:        flash.R,
		FlashG:        flash.G,
		FlashB:        flash.B,
		BotControlled: components.PlayerInput.Get(e).BotControlled,
	}
	fs.Hitbox, fs.HitboxActive = systems.AttackHitbox(e)
	fs.Hurtbox, _ = systems.Hurtbox(e)
	for slot := cfg.CooldownSlot(0); slot < cfg.CooldownSlotCount; slot++ {
		fs.Cooldowns[slot] = systems.CooldownSeconds(e, slot)
	}
	return fs
}
