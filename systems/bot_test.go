package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/stickbrawl/ai"
	"github.com/automoto/stickbrawl/components"
	cfg "github.com/automoto/stickbrawl/config"
)

func botEnv(t *testing.T) *Env {
	t.Helper()
	env := newTestEnv(t, true)
	match, _ := matchData(env)
	match.Phase = cfg.PhaseFighting
	DrainCues(env)
	return env
}

func TestOnlySlotTwoIsBotVsAI(t *testing.T) {
	env := botEnv(t)
	p1 := fighterIn(t, env, cfg.SlotOne)
	p2 := fighterIn(t, env, cfg.SlotTwo)

	assert.False(t, p1.HasComponent(components.Bot))
	assert.True(t, p2.HasComponent(components.Bot))
	assert.True(t, components.PlayerInput.Get(p2).BotControlled)
}

func TestBotThinksOnFirstFrame(t *testing.T) {
	env := botEnv(t)
	bot := fighterIn(t, env, cfg.SlotTwo)

	UpdateBots(env)

	brain := components.Bot.Get(bot)
	assert.GreaterOrEqual(t, brain.ThinkTimer, cfg.Bot.ThinkInterval)
	assert.Less(t, brain.ThinkTimer, cfg.Bot.ThinkInterval+cfg.Bot.ThinkJitter)

	// far apart: the only decision is to close in, and it is consumed at once
	assert.Empty(t, brain.Queue)
	input := components.PlayerInput.Get(bot)
	assert.True(t, input.Bot[cfg.ActionMoveLeft])
	assert.False(t, input.Bot[cfg.ActionMoveRight])
}

func TestBotConsumesOneCommandPerFrame(t *testing.T) {
	env := botEnv(t)
	bot := fighterIn(t, env, cfg.SlotTwo)
	brain := components.Bot.Get(bot)
	brain.ThinkTimer = 5
	brain.Queue = []ai.Command{ai.CmdJump, ai.CmdBackAway}

	UpdateBots(env)
	assert.True(t, components.PlayerInput.Get(bot).Bot[cfg.ActionJump])
	assert.Equal(t, []ai.Command{ai.CmdBackAway}, brain.Queue)
	assert.Equal(t, 4, brain.ThinkTimer)

	UpdateBots(env)
	input := components.PlayerInput.Get(bot)
	assert.False(t, input.Bot[cfg.ActionJump])
	assert.True(t, input.Bot[cfg.ActionMoveRight], "backs away from an opponent on its left")
	assert.Empty(t, brain.Queue)

	UpdateBots(env)
	assert.Equal(t, [cfg.ActionCount]bool{}, components.PlayerInput.Get(bot).Bot)
}

func TestThinkReplacesQueue(t *testing.T) {
	env := botEnv(t)
	bot := fighterIn(t, env, cfg.SlotTwo)
	brain := components.Bot.Get(bot)
	brain.ThinkTimer = 1
	brain.Queue = []ai.Command{ai.CmdJump, ai.CmdJump, ai.CmdJump}

	UpdateBots(env)

	assert.NotContains(t, brain.Queue, ai.CmdJump)
	assert.True(t, components.PlayerInput.Get(bot).Bot[cfg.ActionMoveLeft])
}

func TestClearBotInput(t *testing.T) {
	env := botEnv(t)
	bot := fighterIn(t, env, cfg.SlotTwo)

	UpdateBots(env)
	require.NotEqual(t, [cfg.ActionCount]bool{}, components.PlayerInput.Get(bot).Bot)

	ClearBotInput(env)
	assert.Equal(t, [cfg.ActionCount]bool{}, components.PlayerInput.Get(bot).Bot)
}

func TestMergeIgnoresHumanInputOnBotSlot(t *testing.T) {
	env := botEnv(t)
	p1 := fighterIn(t, env, cfg.SlotOne)
	bot := fighterIn(t, env, cfg.SlotTwo)

	components.PlayerInput.Get(p1).Human[cfg.ActionJump] = true
	components.PlayerInput.Get(bot).Human[cfg.ActionMoveRight] = true

	MergeInput(env)

	assert.True(t, components.PlayerInput.Get(p1).Pressed(cfg.ActionJump))
	assert.False(t, components.PlayerInput.Get(bot).Pressed(cfg.ActionMoveRight))
}

func TestMergeFollowsHumanSnapshot(t *testing.T) {
	env := fightingEnv(t)
	p1 := fighterIn(t, env, cfg.SlotOne)
	input := components.PlayerInput.Get(p1)

	input.Human[cfg.ActionJump] = true
	MergeInput(env)
	assert.True(t, input.Pressed(cfg.ActionJump))

	input.Human[cfg.ActionJump] = false
	MergeInput(env)
	assert.False(t, input.Pressed(cfg.ActionJump))
}

func TestBotClosesDistance(t *testing.T) {
	env := botEnv(t)
	bot := fighterIn(t, env, cfg.SlotTwo)
	start := Body(bot).X

	for i := 0; i < 60; i++ {
		UpdateMatch(env)
	}
	assert.Less(t, Body(bot).X, start)
}
