package systems

import (
	"fmt"

	"github.com/automoto/stickbrawl/components"
	cfg "github.com/automoto/stickbrawl/config"
	"github.com/automoto/stickbrawl/systems/factory"
	"github.com/automoto/stickbrawl/tags"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// BeginMatch tears down whatever is in the world and builds a fresh match:
// collision space, cue queue, match singleton and both fighters.
func BeginMatch(env *Env, weapons [cfg.SlotCount]cfg.WeaponType, vsAI bool) error {
	for _, w := range weapons {
		if _, err := cfg.Weapons.Lookup(w); err != nil {
			return fmt.Errorf("starting match: %w", err)
		}
	}

	var pending []cfg.CueID
	if entry, ok := components.Audio.First(env.World); ok {
		pending = components.Audio.Get(entry).PendingCues
	}
	clearWorld(env)

	spaceEntry := factory.CreateSpace(env.World, cfg.Arena.Width, cfg.Arena.Height, cfg.Arena.CellSize, cfg.Arena.CellSize)
	space := components.Space.Get(spaceEntry)

	audio := factory.CreateAudio(env.World)
	components.Audio.Get(audio).PendingCues = pending

	matchEntry := factory.CreateMatch(env.World, weapons, vsAI)
	match := components.Match.Get(matchEntry)

	for slot := cfg.SlotOne; slot < cfg.SlotCount; slot++ {
		bot := vsAI && slot == cfg.SlotTwo
		f, err := factory.CreateFighter(env.World, space, slot, weapons[slot], bot)
		if err != nil {
			return fmt.Errorf("starting match: %w", err)
		}
		match.Fighters[slot] = f
	}

	env.Logger.Info("match started",
		zap.String("match_id", match.ID.String()),
		zap.Stringer("weapon1", weapons[cfg.SlotOne]),
		zap.Stringer("weapon2", weapons[cfg.SlotTwo]),
		zap.Bool("vs_ai", vsAI),
	)
	return nil
}

// RestartMatch rebuilds the match with the same loadout. Bot state is
// discarded with the fighters; the random stream continues.
func RestartMatch(env *Env) error {
	match, ok := matchData(env)
	if !ok {
		return fmt.Errorf("restart: no match in progress")
	}
	weapons, vsAI := match.Weapons, match.VsAI
	env.Logger.Info("match restarting", zap.String("match_id", match.ID.String()))
	return BeginMatch(env, weapons, vsAI)
}

// clearWorld removes every entity the match owns. The collision space goes
// with its singleton.
func clearWorld(env *Env) {
	var toRemove []*donburi.Entry
	collect := func(e *donburi.Entry) {
		toRemove = append(toRemove, e)
	}
	tags.Fighter.Each(env.World, collect)
	components.Match.Each(env.World, collect)
	components.Space.Each(env.World, collect)
	components.Audio.Each(env.World, collect)

	for _, e := range toRemove {
		if e.Valid() {
			env.World.Remove(e.Entity())
		}
	}
	ClearDamageNumbers(env)
}

// UpdateMatch runs one frame of the match state machine.
func UpdateMatch(env *Env) {
	match, ok := matchData(env)
	if !ok {
		return
	}

	switch match.Phase {
	case cfg.PhaseCountdown:
		updateCountdown(env, match)
	case cfg.PhaseFighting:
		updateFighting(env, match)
	case cfg.PhaseEnded:
		if match.Restart {
			if err := RestartMatch(env); err != nil {
				env.Logger.Error("restart failed", zap.Error(err))
			}
			return
		}
	}
	match.Restart = false
}

func updateCountdown(env *Env, match *components.MatchData) {
	match.Timer++
	elapsed := match.Timer / cfg.Match.TickRate

	count := cfg.Match.CountdownFrom - elapsed
	if count < 0 {
		count = 0
	}
	if count < match.CountdownValue {
		match.CountdownValue = count
		if count > 0 {
			PlayCue(env, cfg.CueCountdownTick)
		}
	}
	if count == 0 && !match.FightSignaled {
		match.FightSignaled = true
		PlayCue(env, cfg.CueFight)
	}

	if elapsed >= cfg.Match.FightStartSecond() {
		match.Phase = cfg.PhaseFighting
		match.Timer = 0
		env.Logger.Debug("phase change", zap.Stringer("phase", match.Phase))
	}
}

func updateFighting(env *Env, match *components.MatchData) {
	match.Timer++

	UpdateBots(env)
	MergeInput(env)
	UpdateFighters(env)
	ClearBotInput(env)
	ResolveHits(env)
	ResolveBodyOverlap(env)
	checkWinner(env, match)
}

func checkWinner(env *Env, match *components.MatchData) {
	var alive [cfg.SlotCount]bool
	for slot, e := range match.Fighters {
		alive[slot] = e != nil && e.Valid() && components.Health.Get(e).Alive()
	}

	switch {
	case alive[cfg.SlotOne] && alive[cfg.SlotTwo]:
		return
	case !alive[cfg.SlotOne] && !alive[cfg.SlotTwo]:
		match.Winner = cfg.OutcomeDraw
	case alive[cfg.SlotOne]:
		match.Winner = cfg.OutcomeFor(cfg.SlotOne)
	default:
		match.Winner = cfg.OutcomeFor(cfg.SlotTwo)
	}

	match.Phase = cfg.PhaseEnded
	match.Timer = 0
	PlayCue(env, cfg.CueMatchEnd)
	env.Logger.Info("match ended",
		zap.String("match_id", match.ID.String()),
		zap.Stringer("winner", match.Winner),
	)
}
