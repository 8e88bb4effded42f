package systems

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/automoto/stickbrawl/components"
	cfg "github.com/automoto/stickbrawl/config"
)

func newTestEnv(t *testing.T, vsAI bool) *Env {
	t.Helper()
	env := NewEnv(1, zap.NewNop())
	weapons := [cfg.SlotCount]cfg.WeaponType{cfg.Katana, cfg.Katana}
	require.NoError(t, BeginMatch(env, weapons, vsAI))
	return env
}

func fightingEnv(t *testing.T) *Env {
	t.Helper()
	env := newTestEnv(t, false)
	match, ok := matchData(env)
	require.True(t, ok)
	match.Phase = cfg.PhaseFighting
	DrainCues(env)
	return env
}

func fighterIn(t *testing.T, env *Env, slot cfg.Slot) *donburi.Entry {
	t.Helper()
	match, ok := matchData(env)
	require.True(t, ok)
	e := match.Fighter(slot)
	require.NotNil(t, e)
	return e
}

func place(e *donburi.Entry, x float64) {
	obj := components.Object.Get(e).Object
	obj.X = x
	obj.Update()
}

// hold replaces the merged input with exactly the given actions.
func hold(e *donburi.Entry, actions ...cfg.ActionID) {
	input := components.PlayerInput.Get(e)
	input.CurrentInput = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.CurrentInput[a] = true
	}
}

// attackAtActiveFrame puts the fighter at the first active frame of a tier.
func attackAtActiveFrame(env *Env, e *donburi.Entry, tier cfg.Tier) {
	startAttack(env, e, tier)
	state := components.State.Get(e)
	state.StateTimer = components.Attack.Get(e).Stats.Windup
	syncHitbox(env, e)
}

func step(env *Env, e *donburi.Entry, n int) {
	for i := 0; i < n; i++ {
		UpdateFighter(env, e)
	}
}

func health(e *donburi.Entry) int {
	return components.Health.Get(e).Current
}

func countDamageNumbers(env *Env) int {
	n := 0
	components.DamageNumber.Each(env.World, func(*donburi.Entry) { n++ })
	return n
}
