package systems

import (
	"math/rand"

	"github.com/automoto/stickbrawl/components"
	cfg "github.com/automoto/stickbrawl/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// Env is what every system receives: the world, the match's random source
// and a logger. It is owned by a single goroutine.
type Env struct {
	World  donburi.World
	Rand   *rand.Rand
	Logger *zap.Logger
}

// NewEnv creates an empty world seeded with seed.
func NewEnv(seed int64, logger *zap.Logger) *Env {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Env{
		World:  donburi.NewWorld(),
		Rand:   rand.New(rand.NewSource(seed)),
		Logger: logger,
	}
}

// Reseed replaces the random stream.
func (env *Env) Reseed(seed int64) {
	env.Rand = rand.New(rand.NewSource(seed))
}

// CurrentMatch returns the match singleton, if a match was started.
func CurrentMatch(env *Env) (*components.MatchData, bool) {
	e, ok := components.Match.First(env.World)
	if !ok {
		return nil, false
	}
	return components.Match.Get(e), true
}

func matchData(env *Env) (*components.MatchData, bool) {
	return CurrentMatch(env)
}

func spaceOf(env *Env) *resolv.Space {
	e, ok := components.Space.First(env.World)
	if !ok {
		return nil
	}
	return components.Space.Get(e)
}

// fighters returns the valid fighter entries in slot order.
func fighters(env *Env) []*donburi.Entry {
	match, ok := matchData(env)
	if !ok {
		return nil
	}
	out := make([]*donburi.Entry, 0, cfg.SlotCount)
	for _, e := range match.Fighters {
		if e != nil && e.Valid() {
			out = append(out, e)
		}
	}
	return out
}
