package sim

import (
	"errors"
	"fmt"
	"sync"
	"time"

	cfg "github.com/automoto/stickbrawl/config"
	"github.com/automoto/stickbrawl/systems"
	"go.uber.org/zap"
)

var (
	ErrNoMatch       = errors.New("no match in progress")
	ErrInvalidSlot   = errors.New("invalid slot")
	ErrInvalidAction = errors.New("invalid action")
)

// Match owns one simulation world and drives it a tick at a time. All methods
// are safe to call from the goroutine feeding input while another one ticks.
type Match struct {
	mu    sync.Mutex
	env   *systems.Env
	onCue func(cfg.CueID)
	log   *zap.Logger
}

type options struct {
	seed     int64
	seeded   bool
	logger   *zap.Logger
	listener func(cfg.CueID)
}

// Option configures a Match.
type Option func(*options)

// WithSeed fixes the random stream used by the bot and the loadout picker.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCueListener pushes every sound cue to fn after the tick that raised it.
// Cues are no longer kept for DrainCues once a listener is set.
func WithCueListener(fn func(cfg.CueID)) Option {
	return func(o *options) {
		o.listener = fn
	}
}

// New creates an idle match. Nothing happens until StartMatch.
func New(opts ...Option) *Match {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seeded {
		o.seed = time.Now().UnixNano()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	return &Match{
		env:   systems.NewEnv(o.seed, o.logger),
		onCue: o.listener,
		log:   o.logger,
	}
}

// StartMatch builds a fresh match. With vsAI and no second weapon the bot
// gets a random weapon other than the human's.
func (m *Match) StartMatch(weaponA, weaponB cfg.WeaponType, vsAI bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := cfg.Weapons.Lookup(weaponA); err != nil {
		return fmt.Errorf("player1 weapon: %w", err)
	}
	if vsAI && weaponB == cfg.WeaponNone {
		weaponB = m.pickBotWeapon(weaponA)
		m.log.Debug("bot weapon picked", zap.Stringer("weapon", weaponB))
	}
	if _, err := cfg.Weapons.Lookup(weaponB); err != nil {
		return fmt.Errorf("player2 weapon: %w", err)
	}

	return systems.BeginMatch(m.env, [cfg.SlotCount]cfg.WeaponType{weaponA, weaponB}, vsAI)
}

func (m *Match) pickBotWeapon(human cfg.WeaponType) cfg.WeaponType {
	var choices []cfg.WeaponType
	for _, w := range cfg.AllWeapons() {
		if w != human {
			choices = append(choices, w)
		}
	}
	if len(choices) == 0 {
		return human
	}
	return choices[m.env.Rand.Intn(len(choices))]
}

// RestartMatch rebuilds the current match with the same loadout, whatever
// the phase.
func (m *Match) RestartMatch() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return systems.RestartMatch(m.env)
}

// EnqueueHumanInput records a key state for a slot. It takes effect on the
// next tick. The restart action only matters once the match has ended.
func (m *Match) EnqueueHumanInput(slot cfg.Slot, action cfg.ActionID, pressed bool) error {
	if !slot.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}
	if !action.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidAction, action)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	match, ok := systems.CurrentMatch(m.env)
	if !ok {
		return ErrNoMatch
	}
	if action == cfg.ActionRestart {
		if pressed {
			match.Restart = true
		}
		return nil
	}

	e := match.Fighter(slot)
	if e == nil || !e.Valid() {
		return ErrNoMatch
	}
	systems.SetHumanInput(e, action, pressed)
	return nil
}

// Tick advances the match one frame and delivers its sound cues.
func (m *Match) Tick() {
	m.mu.Lock()
	systems.UpdateMatch(m.env)
	systems.UpdateEffects(m.env)

	var cues []cfg.CueID
	if m.onCue != nil {
		cues = systems.DrainCues(m.env)
	}
	m.mu.Unlock()

	for _, cue := range cues {
		m.onCue(cue)
	}
}

// DrainCues returns the cues raised since the last call.
func (m *Match) DrainCues() []cfg.CueID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return systems.DrainCues(m.env)
}

// Reseed replaces the random stream. The bot keeps its current queue.
func (m *Match) Reseed(seed int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.env.Reseed(seed)
}

// Snapshot copies the state the presentation layer draws.
func (m *Match) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return takeSnapshot(m.env)
}
