package ai

import (
	"math"

	cfg "github.com/automoto/stickbrawl/config"
)

// Situation is what the bot sees when it thinks.
type Situation struct {
	SelfX             float64 // body center
	OpponentX         float64
	HealthRatio       float64 // current/max health
	OpponentAttacking bool
}

// Distance is the horizontal distance between the fighters.
func (s Situation) Distance() float64 {
	return math.Abs(s.OpponentX - s.SelfX)
}

// Decide returns the command queue that replaces the current one.
func Decide(s Situation, rng Random, tune cfg.BotConfigData) []Command {
	queue := make([]Command, 0, 3)

	if s.HealthRatio < tune.LowHealthRatio && rng.Float64() < tune.RetreatChance {
		queue = append(queue, CmdBackAway)
		if rng.Float64() < tune.RetreatJumpChance {
			queue = append(queue, CmdJump)
		}
		return queue
	}

	dist := s.Distance()
	switch {
	case dist > tune.FarRange:
		queue = append(queue, CmdMoveCloser)
		if dist < tune.ApproachAttackRange && rng.Float64() < tune.ApproachAttackChance {
			queue = append(queue, CmdAttack)
		}
	case dist < tune.CloseRange:
		queue = append(queue, CmdBackAway)
		if rng.Float64() < tune.CloseJumpChance {
			queue = append(queue, CmdJump)
		}
	default:
		if rng.Float64() < tune.MidAttackChance {
			queue = append(queue, CmdAttack)
		} else {
			// feint
			queue = append(queue, CmdMoveCloser, CmdBackAway)
		}
	}

	if s.OpponentAttacking && rng.Float64() < tune.EvadeChance {
		if rng.Float64() < tune.EvadeJumpChance {
			queue = append(queue, CmdJump)
		} else {
			queue = append(queue, CmdBackAway)
		}
	}
	return queue
}

// ThinkDelay returns the frames until the next decision.
func ThinkDelay(rng Random, tune cfg.BotConfigData) int {
	delay := tune.ThinkInterval
	if tune.ThinkJitter > 0 {
		delay += rng.Intn(tune.ThinkJitter)
	}
	if delay < 1 {
		delay = 1
	}
	return delay
}
