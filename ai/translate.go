package ai

import cfg "github.com/automoto/stickbrawl/config"

// Readiness tells the translator which attack slots are off cooldown.
type Readiness struct {
	Basic  bool
	Skill1 bool
}

// Translate expands one command into one frame of input.
func Translate(cmd Command, selfX, opponentX float64, ready Readiness, rng Random, tune cfg.BotConfigData) [cfg.ActionCount]bool {
	var in [cfg.ActionCount]bool

	toward := cfg.ActionMoveRight
	away := cfg.ActionMoveLeft
	if opponentX < selfX {
		toward, away = away, toward
	}

	switch cmd {
	case CmdMoveCloser:
		in[toward] = true
	case CmdBackAway:
		in[away] = true
	case CmdJump:
		in[cfg.ActionJump] = true
	case CmdAttack:
		in[chooseAttack(ready, rng, tune)] = true
	}
	return in
}

func chooseAttack(ready Readiness, rng Random, tune cfg.BotConfigData) cfg.ActionID {
	if ready.Basic {
		return cfg.ActionBasic
	}
	if ready.Skill1 && rng.Float64() < tune.Skill1Chance {
		return cfg.ActionSkill1
	}
	return cfg.ActionBasic
}
