package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"pgregory.net/rapid"

	"github.com/automoto/stickbrawl/components"
	cfg "github.com/automoto/stickbrawl/config"
)

// inRange puts p1 at 150 facing right and p2 just inside the katana reach.
func inRange(t *testing.T) (*Env, *donburi.Entry, *donburi.Entry) {
	t.Helper()
	env := fightingEnv(t)
	p1 := fighterIn(t, env, cfg.SlotOne)
	p2 := fighterIn(t, env, cfg.SlotTwo)
	place(p1, 150)
	place(p2, 220)
	return env, p1, p2
}

func TestKatanaBasicHit(t *testing.T) {
	env, p1, p2 := inRange(t)
	stats := cfg.Weapons[cfg.Katana].Attack(cfg.TierBasic)

	attackAtActiveFrame(env, p1, cfg.TierBasic)
	ResolveHits(env)

	assert.Equal(t, cfg.Fighter.Health-stats.Damage, health(p2))
	// clear of the gap after knockback, so pushed one more step
	assert.Equal(t, 220+stats.Knockback+cfg.Combat.HitPushStep, Body(p2).X)
	assert.True(t, components.Attack.Get(p1).HasHit)
	assert.Equal(t, 1, countDamageNumbers(env))
	assert.Contains(t, DrainCues(env), cfg.CueHit)
	assert.Greater(t, components.Flash.Get(p2).Duration, 0)

	// the defender keeps its action state
	assert.Equal(t, cfg.StateIdle, components.State.Get(p2).CurrentState)
}

func TestDamageNumberPlacement(t *testing.T) {
	env, p1, p2 := inRange(t)
	attackAtActiveFrame(env, p1, cfg.TierBasic)
	ResolveHits(env)

	var dn components.DamageNumberData
	components.DamageNumber.Each(env.World, func(e *donburi.Entry) {
		dn = *components.DamageNumber.Get(e)
	})
	assert.Equal(t, Body(p2).CenterX(), dn.X)
	assert.Equal(t, Body(p2).Y, dn.Y)
	assert.Equal(t, cfg.Weapons[cfg.Katana].Attack(cfg.TierBasic).Damage, dn.Amount)
}

func TestHitLandsOncePerActivation(t *testing.T) {
	env, p1, p2 := inRange(t)
	stats := cfg.Weapons[cfg.Katana].Attack(cfg.TierBasic)

	attackAtActiveFrame(env, p1, cfg.TierBasic)
	for i := 0; i < stats.Active; i++ {
		ResolveHits(env)
		place(p2, 220)
		components.State.Get(p1).StateTimer++
		syncHitbox(env, p1)
	}

	assert.Equal(t, cfg.Fighter.Health-stats.Damage, health(p2))
	assert.Equal(t, 1, countDamageNumbers(env))
}

func TestNoHitOutsideActiveWindow(t *testing.T) {
	env, p1, p2 := inRange(t)

	startAttack(env, p1, cfg.TierBasic)
	syncHitbox(env, p1)
	ResolveHits(env)

	assert.Equal(t, cfg.Fighter.Health, health(p2))
	assert.False(t, components.Attack.Get(p1).HasHit)
}

func TestNoHitOutOfReach(t *testing.T) {
	env, p1, p2 := inRange(t)
	place(p2, 400)

	attackAtActiveFrame(env, p1, cfg.TierBasic)
	ResolveHits(env)
	assert.Equal(t, cfg.Fighter.Health, health(p2))
}

func TestDodgeAvoidsEveryAttack(t *testing.T) {
	for _, tier := range cfg.AllTiers() {
		t.Run(tier.String(), func(t *testing.T) {
			env, p1, p2 := inRange(t)
			components.State.Get(p2).Set(cfg.StateDodging)

			attackAtActiveFrame(env, p1, tier)
			ResolveHits(env)

			assert.Equal(t, cfg.Fighter.Health, health(p2))
			assert.False(t, components.Attack.Get(p1).HasHit)
		})
	}
}

func TestJumpAvoidsLowAttack(t *testing.T) {
	// katana skill1 is a low attack
	require.Equal(t, cfg.HeightLow, cfg.Weapons[cfg.Katana].Attack(cfg.TierSkill1).Height)

	env, p1, p2 := inRange(t)
	components.State.Get(p2).Set(cfg.StateJumping)
	attackAtActiveFrame(env, p1, cfg.TierSkill1)
	ResolveHits(env)
	assert.Equal(t, cfg.Fighter.Health, health(p2))

	env, p1, p2 = inRange(t)
	attackAtActiveFrame(env, p1, cfg.TierSkill1)
	ResolveHits(env)
	assert.Less(t, health(p2), cfg.Fighter.Health)
}

func TestHighAttackLandsOnJumper(t *testing.T) {
	stats := cfg.Weapons[cfg.Katana].Attack(cfg.TierBasic)
	require.Equal(t, cfg.HeightHigh, stats.Height)

	env, p1, p2 := inRange(t)
	components.State.Get(p2).Set(cfg.StateJumping)
	attackAtActiveFrame(env, p1, cfg.TierBasic)
	ResolveHits(env)

	assert.Equal(t, cfg.Fighter.Health-stats.Damage, health(p2))
	assert.True(t, components.Attack.Get(p1).HasHit)
}

func TestCrouchAvoidsHighAttack(t *testing.T) {
	require.Equal(t, cfg.HeightHigh, cfg.Weapons[cfg.Katana].Attack(cfg.TierBasic).Height)

	env, p1, p2 := inRange(t)
	components.State.Get(p2).Set(cfg.StateCrouching)
	attackAtActiveFrame(env, p1, cfg.TierBasic)
	ResolveHits(env)
	assert.Equal(t, cfg.Fighter.Health, health(p2))

	// a crouching fighter is still open to low attacks
	env, p1, p2 = inRange(t)
	components.State.Get(p2).Set(cfg.StateCrouching)
	attackAtActiveFrame(env, p1, cfg.TierSkill1)
	ResolveHits(env)
	assert.Less(t, health(p2), cfg.Fighter.Health)
}

func TestSimultaneousTrade(t *testing.T) {
	env, p1, p2 := inRange(t)
	place(p2, 230)

	attackAtActiveFrame(env, p1, cfg.TierBasic)
	attackAtActiveFrame(env, p2, cfg.TierBasic)
	ResolveHits(env)

	dmg := cfg.Weapons[cfg.Katana].Attack(cfg.TierBasic).Damage
	assert.Equal(t, cfg.Fighter.Health-dmg, health(p1))
	assert.Equal(t, cfg.Fighter.Health-dmg, health(p2))
	assert.Less(t, Body(p1).X, Body(p2).X)
}

func TestNudgeKeepsMinimumGap(t *testing.T) {
	env, p1, p2 := inRange(t)
	place(p1, 300)
	place(p2, 340)

	attackAtActiveFrame(env, p1, cfg.TierBasic)
	ResolveHits(env)

	// knockback 8 leaves p2 at 348, inside p1's right edge (350)
	assert.Equal(t, Body(p1).Right()+cfg.Combat.MinSeparation, Body(p2).X)
}

func TestNudgeToTheLeft(t *testing.T) {
	env, p1, p2 := inRange(t)
	place(p1, 330)
	place(p2, 360)

	// p2 faces left and knocks p1 further left
	attackAtActiveFrame(env, p2, cfg.TierBasic)
	ResolveHits(env)

	assert.Less(t, health(p1), cfg.Fighter.Health)
	assert.InDelta(t, cfg.Combat.MinSeparation, Body(p2).X-Body(p1).Right(), 1e-9)
}

func TestClearDefenderPushedOneStep(t *testing.T) {
	env, p1, p2 := inRange(t)
	place(p1, 290)
	place(p2, 360)
	components.Fighter.Get(p2).Facing = -1

	// p2 swings left; after knockback p1 is already clear of the gap
	attackAtActiveFrame(env, p2, cfg.TierBasic)
	ResolveHits(env)

	stats := cfg.Weapons[cfg.Katana].Attack(cfg.TierBasic)
	require.Less(t, health(p1), cfg.Fighter.Health)
	assert.Equal(t, 290-stats.Knockback-cfg.Combat.HitPushStep, Body(p1).X)
}

func TestKnockbackClampedToArena(t *testing.T) {
	env, p1, p2 := inRange(t)
	edge := float64(cfg.Arena.Width) - cfg.Fighter.Width
	place(p1, edge-60)
	place(p2, edge)

	attackAtActiveFrame(env, p1, cfg.TierBasic)
	ResolveHits(env)
	assert.Equal(t, edge, Body(p2).X)
}

func TestTakeDamageFloorsAtZero(t *testing.T) {
	env, _, p2 := inRange(t)

	ok := TakeDamage(env, p2, Hit{Damage: 250, Direction: 1, Force: 5})
	assert.True(t, ok)
	assert.Equal(t, 0, health(p2))

	x := Body(p2).X
	ok = TakeDamage(env, p2, Hit{Damage: 10, Direction: 1, Force: 5})
	assert.False(t, ok)
	assert.Equal(t, 0, health(p2))
	assert.Equal(t, x, Body(p2).X)
}

func TestBodyOverlapSplitsEvenly(t *testing.T) {
	env, p1, p2 := inRange(t)
	place(p1, 300)
	place(p2, 330)

	ResolveBodyOverlap(env)
	assert.Equal(t, 290.0, Body(p1).X)
	assert.Equal(t, 340.0, Body(p2).X)
}

func TestBodyOverlapIgnoresJumpOver(t *testing.T) {
	env, p1, p2 := inRange(t)
	place(p1, 300)
	place(p2, 330)
	obj := components.Object.Get(p2).Object
	obj.Y -= cfg.Fighter.Height + 10
	obj.Update()

	ResolveBodyOverlap(env)
	assert.Equal(t, 300.0, Body(p1).X)
	assert.Equal(t, 330.0, Body(p2).X)
}

func TestPropertyHealthStaysInBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		env := NewEnv(1, nil)
		if err := BeginMatch(env, [cfg.SlotCount]cfg.WeaponType{cfg.Axe, cfg.Scythe}, false); err != nil {
			rt.Fatal(err)
		}
		match, _ := matchData(env)
		e := match.Fighter(cfg.SlotTwo)

		hits := rapid.SliceOfN(rapid.IntRange(0, 60), 1, 30).Draw(rt, "hits")
		for _, dmg := range hits {
			TakeDamage(env, e, Hit{Damage: dmg, Direction: 1, Force: 10})
			h := components.Health.Get(e)
			if h.Current < 0 || h.Current > h.Max {
				rt.Fatalf("health %d outside [0,%d]", h.Current, h.Max)
			}
			x := Body(e).X
			if x < 0 || x > float64(cfg.Arena.Width)-cfg.Fighter.Width {
				rt.Fatalf("fighter pushed out of the arena: %v", x)
			}
		}
	})
}

func TestBodyOverlapSplitsByMeasuredOverlap(t *testing.T) {
	env := fightingEnv(t)
	p1 := fighterIn(t, env, cfg.SlotOne)
	p2 := fighterIn(t, env, cfg.SlotTwo)
	place(p1, 300)
	place(p2, 320)

	overlap := Body(p1).OverlapX(Body(p2))
	require.Greater(t, overlap, 0.0)

	ResolveBodyOverlap(env)

	assert.InDelta(t, 300-overlap/2, Body(p1).X, 1e-9)
	assert.InDelta(t, 320+overlap/2, Body(p2).X, 1e-9)
	assert.False(t, Body(p1).Overlaps(Body(p2)))
}

func TestBodyOverlapIgnoresApartFighters(t *testing.T) {
	env := fightingEnv(t)
	p1 := fighterIn(t, env, cfg.SlotOne)
	p2 := fighterIn(t, env, cfg.SlotTwo)
	place(p1, 100)
	place(p2, 400)

	ResolveBodyOverlap(env)

	assert.Equal(t, 100.0, Body(p1).X)
	assert.Equal(t, 400.0, Body(p2).X)
}
