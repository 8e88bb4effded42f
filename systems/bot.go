package systems

import (
	"github.com/automoto/stickbrawl/ai"
	"github.com/automoto/stickbrawl/components"
	cfg "github.com/automoto/stickbrawl/config"
	"github.com/yohamta/donburi"
)

// UpdateBots writes one frame of input into each bot's snapshot. Must run
// before MergeInput.
func UpdateBots(env *Env) {
	match, ok := matchData(env)
	if !ok {
		return
	}
	for _, e := range fighters(env) {
		if !e.HasComponent(components.Bot) {
			continue
		}
		opponent := match.Fighter(components.Fighter.Get(e).Slot.Opponent())
		if opponent == nil || !opponent.Valid() {
			continue
		}
		updateBotAI(env, e, opponent)
	}
}

func updateBotAI(env *Env, e, opponent *donburi.Entry) {
	bot := components.Bot.Get(e)
	input := components.PlayerInput.Get(e)

	input.Bot = [cfg.ActionCount]bool{}

	if bot.ThinkTimer > 0 {
		bot.ThinkTimer--
	}
	if bot.ThinkTimer == 0 {
		bot.Queue = ai.Decide(botSituation(e, opponent), env.Rand, cfg.Bot)
		bot.ThinkTimer = ai.ThinkDelay(env.Rand, cfg.Bot)
	}

	if len(bot.Queue) == 0 {
		return
	}
	cmd := bot.Queue[0]
	bot.Queue = bot.Queue[1:]

	cooldowns := components.Cooldown.Get(e)
	ready := ai.Readiness{
		Basic:  cooldowns.Ready(cfg.CooldownBasic),
		Skill1: cooldowns.Ready(cfg.CooldownSkill1),
	}
	input.Bot = ai.Translate(cmd, Body(e).CenterX(), Body(opponent).CenterX(), ready, env.Rand, cfg.Bot)
}

func botSituation(e, opponent *donburi.Entry) ai.Situation {
	health := components.Health.Get(e)
	return ai.Situation{
		SelfX:             Body(e).CenterX(),
		OpponentX:         Body(opponent).CenterX(),
		HealthRatio:       health.Ratio(),
		OpponentAttacking: IsAttacking(opponent),
	}
}

// ClearBotInput empties the bot snapshots after the fighters consumed them,
// so bot input never outlives its frame.
func ClearBotInput(env *Env) {
	for _, e := range fighters(env) {
		if e.HasComponent(components.Bot) {
			components.PlayerInput.Get(e).Bot = [cfg.ActionCount]bool{}
		}
	}
}
