package ai

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	cfg "github.com/automoto/stickbrawl/config"
)

// scriptedRand replays fixed draws; it returns 0.99 and 0 when exhausted.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.99
	}
	f := s.floats[0]
	s.floats = s.floats[1:]
	return f
}

func (s *scriptedRand) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	i := s.ints[0] % n
	s.ints = s.ints[1:]
	return i
}

func situation(dist float64) Situation {
	return Situation{SelfX: 400, OpponentX: 400 + dist, HealthRatio: 1}
}

func TestDecideLowHealthRetreats(t *testing.T) {
	s := situation(100)
	s.HealthRatio = 0.2

	got := Decide(s, &scriptedRand{floats: []float64{0.1, 0.2}}, cfg.Bot)
	assert.Equal(t, []Command{CmdBackAway, CmdJump}, got)

	got = Decide(s, &scriptedRand{floats: []float64{0.1, 0.5}}, cfg.Bot)
	assert.Equal(t, []Command{CmdBackAway}, got)
}

func TestDecideLowHealthCanStillFight(t *testing.T) {
	s := situation(300)
	s.HealthRatio = 0.2

	got := Decide(s, &scriptedRand{floats: []float64{0.9}}, cfg.Bot)
	assert.Equal(t, []Command{CmdMoveCloser}, got)
}

func TestDecideFarRange(t *testing.T) {
	got := Decide(situation(200), &scriptedRand{floats: []float64{0.3}}, cfg.Bot)
	assert.Equal(t, []Command{CmdMoveCloser, CmdAttack}, got)

	got = Decide(situation(200), &scriptedRand{floats: []float64{0.7}}, cfg.Bot)
	assert.Equal(t, []Command{CmdMoveCloser}, got)

	// beyond the approach band no swing is considered
	got = Decide(situation(400), &scriptedRand{floats: []float64{0.0}}, cfg.Bot)
	assert.Equal(t, []Command{CmdMoveCloser}, got)
}

func TestDecideCloseRange(t *testing.T) {
	got := Decide(situation(-50), &scriptedRand{floats: []float64{0.2}}, cfg.Bot)
	assert.Equal(t, []Command{CmdBackAway, CmdJump}, got)

	got = Decide(situation(50), &scriptedRand{floats: []float64{0.5}}, cfg.Bot)
	assert.Equal(t, []Command{CmdBackAway}, got)
}

func TestDecideMidRange(t *testing.T) {
	got := Decide(situation(120), &scriptedRand{floats: []float64{0.1}}, cfg.Bot)
	assert.Equal(t, []Command{CmdAttack}, got)

	got = Decide(situation(120), &scriptedRand{floats: []float64{0.9}}, cfg.Bot)
	assert.Equal(t, []Command{CmdMoveCloser, CmdBackAway}, got)
}

func TestDecideEvadesAttackingOpponent(t *testing.T) {
	s := situation(120)
	s.OpponentAttacking = true

	got := Decide(s, &scriptedRand{floats: []float64{0.1, 0.2, 0.3}}, cfg.Bot)
	assert.Equal(t, []Command{CmdAttack, CmdJump}, got)

	got = Decide(s, &scriptedRand{floats: []float64{0.1, 0.2, 0.7}}, cfg.Bot)
	assert.Equal(t, []Command{CmdAttack, CmdBackAway}, got)

	got = Decide(s, &scriptedRand{floats: []float64{0.9, 0.7}}, cfg.Bot)
	assert.Equal(t, []Command{CmdMoveCloser, CmdBackAway}, got)
}

func TestThinkDelayRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		d := ThinkDelay(rng, cfg.Bot)
		require.GreaterOrEqual(t, d, cfg.Bot.ThinkInterval)
		require.Less(t, d, cfg.Bot.ThinkInterval+cfg.Bot.ThinkJitter)
	}
}

func TestTranslateMovement(t *testing.T) {
	rng := &scriptedRand{}

	in := Translate(CmdMoveCloser, 400, 200, Readiness{}, rng, cfg.Bot)
	assert.True(t, in[cfg.ActionMoveLeft])
	assert.False(t, in[cfg.ActionMoveRight])

	in = Translate(CmdBackAway, 400, 200, Readiness{}, rng, cfg.Bot)
	assert.True(t, in[cfg.ActionMoveRight])

	in = Translate(CmdMoveCloser, 100, 600, Readiness{}, rng, cfg.Bot)
	assert.True(t, in[cfg.ActionMoveRight])

	in = Translate(CmdJump, 100, 600, Readiness{}, rng, cfg.Bot)
	assert.True(t, in[cfg.ActionJump])
}

func TestTranslateAttackChoice(t *testing.T) {
	in := Translate(CmdAttack, 0, 50, Readiness{Basic: true, Skill1: true}, &scriptedRand{floats: []float64{0.0}}, cfg.Bot)
	assert.True(t, in[cfg.ActionBasic])

	in = Translate(CmdAttack, 0, 50, Readiness{Skill1: true}, &scriptedRand{floats: []float64{0.3}}, cfg.Bot)
	assert.True(t, in[cfg.ActionSkill1])

	in = Translate(CmdAttack, 0, 50, Readiness{Skill1: true}, &scriptedRand{floats: []float64{0.7}}, cfg.Bot)
	assert.True(t, in[cfg.ActionBasic])

	in = Translate(CmdAttack, 0, 50, Readiness{}, &scriptedRand{floats: []float64{0.0}}, cfg.Bot)
	assert.True(t, in[cfg.ActionBasic])
}

func TestTranslateNone(t *testing.T) {
	in := Translate(CmdNone, 0, 50, Readiness{}, &scriptedRand{}, cfg.Bot)
	assert.Equal(t, [cfg.ActionCount]bool{}, in)
}

func TestPropertyDecideQueueBounded(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := Situation{
			SelfX:             rapid.Float64Range(0, 800).Draw(t, "self"),
			OpponentX:         rapid.Float64Range(0, 800).Draw(t, "opp"),
			HealthRatio:       rapid.Float64Range(0, 1).Draw(t, "hp"),
			OpponentAttacking: rapid.Bool().Draw(t, "attacking"),
		}
		rng := rand.New(rand.NewSource(rapid.Int64().Draw(t, "seed")))
		q := Decide(s, rng, cfg.Bot)
		if len(q) == 0 || len(q) > 3 {
			t.Fatalf("queue length %d out of range: %v", len(q), q)
		}
	})
}

func TestPropertyTranslateSingleAction(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cmd := rapid.SampledFrom([]Command{CmdMoveCloser, CmdBackAway, CmdAttack, CmdJump}).Draw(t, "cmd")
		ready := Readiness{Basic: rapid.Bool().Draw(t, "basic"), Skill1: rapid.Bool().Draw(t, "skill1")}
		rng := rand.New(rand.NewSource(rapid.Int64().Draw(t, "seed")))
		in := Translate(cmd, rapid.Float64Range(0, 800).Draw(t, "self"), rapid.Float64Range(0, 800).Draw(t, "opp"), ready, rng, cfg.Bot)

		count := 0
		for _, pressed := range in {
			if pressed {
				count++
			}
		}
		if count != 1 {
			t.Fatalf("command %v pressed %d actions", cmd, count)
		}
	})
}
