package scenes

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/automoto/stickbrawl/config"
	"github.com/automoto/stickbrawl/sim"
)

func TestBannerText(t *testing.T) {
	cases := []struct {
		name string
		snap sim.Snapshot
		want string
	}{
		{"counting", sim.Snapshot{Phase: cfg.PhaseCountdown, CountdownValue: 2}, "2"},
		{"fight", sim.Snapshot{Phase: cfg.PhaseCountdown, FightSignaled: true}, "FIGHT!"},
		{"fighting", sim.Snapshot{Phase: cfg.PhaseFighting, FightSignaled: true}, ""},
		{"p2 wins", sim.Snapshot{Phase: cfg.PhaseEnded, Winner: cfg.OutcomeSlotTwo}, "PLAYER 2 WINS!"},
		{"draw", sim.Snapshot{Phase: cfg.PhaseEnded, Winner: cfg.OutcomeDraw}, "DRAW!"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, bannerText(tc.snap))
		})
	}
}

func TestCooldownText(t *testing.T) {
	f := sim.FighterSnapshot{}
	f.Cooldowns[cfg.CooldownSkill1] = 2
	f.Cooldowns[cfg.CooldownDodge] = 1
	assert.Equal(t, "B:ok S1:2s S2:ok D:1s", cooldownText(f))
}

func TestNameplate(t *testing.T) {
	assert.Equal(t, "P1 Katana", nameplate(sim.FighterSnapshot{Slot: cfg.SlotOne, Weapon: cfg.Katana}))
	assert.Equal(t, "CPU Axe", nameplate(sim.FighterSnapshot{Slot: cfg.SlotTwo, Weapon: cfg.Axe, BotControlled: true}))
}

func TestBindingsHeld(t *testing.T) {
	down := map[ebiten.Key]bool{ebiten.KeyA: true, ebiten.KeyE: true, ebiten.KeyArrowUp: true}
	isDown := func(k ebiten.Key) bool { return down[k] }

	p1 := DefaultBindings[cfg.SlotOne].held(isDown)
	assert.True(t, p1[cfg.ActionMoveLeft])
	assert.True(t, p1[cfg.ActionBasic])
	assert.False(t, p1[cfg.ActionJump])

	p2 := DefaultBindings[cfg.SlotTwo].held(isDown)
	assert.True(t, p2[cfg.ActionJump])
	assert.False(t, p2[cfg.ActionMoveLeft])
}

func TestPollKeysSkipsBotSlot(t *testing.T) {
	m := sim.New(sim.WithSeed(1))
	require.NoError(t, m.StartMatch(cfg.Katana, cfg.WeaponNone, true))
	ms := NewMatchScene(m, MatchSceneOptions{VsAI: true})

	ms.pollKeys(func(k ebiten.Key) bool { return k == ebiten.KeyD || k == ebiten.KeyArrowLeft })

	assert.True(t, ms.held[cfg.SlotOne][cfg.ActionMoveRight])
	assert.Equal(t, [cfg.ActionCount]bool{}, ms.held[cfg.SlotTwo])
}

func TestFighterColor(t *testing.T) {
	alive := sim.FighterSnapshot{Slot: cfg.SlotOne, Health: 50, MaxHealth: 100}
	assert.Equal(t, slotColors[cfg.SlotOne], fighterColor(alive))

	flashing := alive
	flashing.Flash, flashing.FlashR, flashing.FlashG, flashing.FlashB = 3, 1, 0, 0
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, fighterColor(flashing))

	dead := alive
	dead.Health = 0
	assert.Less(t, fighterColor(dead).A, slotColors[cfg.SlotOne].A)
}

func TestHeldKeysReachFightersAfterRematch(t *testing.T) {
	m := sim.New(sim.WithSeed(1))
	require.NoError(t, m.StartMatch(cfg.Katana, cfg.Axe, false))
	ms := NewMatchScene(m, MatchSceneOptions{})
	holdRight := func(k ebiten.Key) bool { return k == ebiten.KeyD }

	ms.pollKeys(holdRight)
	require.True(t, ms.held[cfg.SlotOne][cfg.ActionMoveRight])

	ms.restart(true)
	assert.Equal(t, [cfg.SlotCount][cfg.ActionCount]bool{}, ms.held)

	// the key never went up, yet the rebuilt fighter walks
	ms.pollKeys(holdRight)
	for i := 0; i < cfg.Match.FightStartSecond()*cfg.Match.TickRate+5; i++ {
		m.Tick()
	}
	assert.Greater(t, m.Snapshot().Fighters[cfg.SlotOne].Body.X, cfg.Fighter.SpawnX[cfg.SlotOne])
}
