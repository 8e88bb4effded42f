package persistence

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/stickbrawl/config"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const loadoutKey = "loadout"

// Store is the slice of gdata.Manager the loadout needs.
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Loadout is the weapon choice remembered between launches.
type Loadout struct {
	Weapon1 string `json:"weapon1"`
	Weapon2 string `json:"weapon2,omitempty"` // empty lets the bot pick
	VsAI    bool   `json:"vsAI"`
}

// Weapons resolves the saved names. An empty second weapon is WeaponNone.
func (l Loadout) Weapons() (cfg.WeaponType, cfg.WeaponType, error) {
	a, err := cfg.ParseWeapon(l.Weapon1)
	if err != nil {
		return cfg.WeaponNone, cfg.WeaponNone, err
	}
	if l.Weapon2 == "" {
		return a, cfg.WeaponNone, nil
	}
	b, err := cfg.ParseWeapon(l.Weapon2)
	if err != nil {
		return cfg.WeaponNone, cfg.WeaponNone, err
	}
	return a, b, nil
}

// LoadoutStore reads and writes the last loadout. A nil store turns every
// call into a no-op.
type LoadoutStore struct {
	store  Store
	logger *zap.Logger
}

// Open opens the per-user data directory for the game.
func Open(logger *zap.Logger) (*LoadoutStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: "stickbrawl",
	})
	if err != nil {
		return NewLoadoutStore(nil, logger), fmt.Errorf("opening save data: %w", err)
	}
	return NewLoadoutStore(m, logger), nil
}

func NewLoadoutStore(store Store, logger *zap.Logger) *LoadoutStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoadoutStore{store: store, logger: logger}
}

// Load returns the saved loadout, or false when there is none or it is
// unreadable.
func (s *LoadoutStore) Load() (Loadout, bool) {
	if s.store == nil {
		return Loadout{}, false
	}

	data, err := s.store.LoadItem(loadoutKey)
	if err != nil {
		s.logger.Warn("could not load loadout", zap.Error(err))
		return Loadout{}, false
	}
	if len(data) == 0 {
		return Loadout{}, false
	}

	var l Loadout
	if err := json.Unmarshal(data, &l); err != nil {
		s.logger.Warn("could not parse saved loadout", zap.Error(err))
		return Loadout{}, false
	}
	if _, _, err := l.Weapons(); err != nil {
		s.logger.Warn("saved loadout names an unknown weapon", zap.Error(err))
		return Loadout{}, false
	}
	return l, true
}

// Save remembers the loadout of a match that just started.
func (s *LoadoutStore) Save(a, b cfg.WeaponType, vsAI bool) error {
	if s.store == nil {
		return nil
	}

	l := Loadout{Weapon1: a.String(), VsAI: vsAI}
	if b != cfg.WeaponNone {
		l.Weapon2 = b.String()
	}
	data, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("encoding loadout: %w", err)
	}
	if err := s.store.SaveItem(loadoutKey, data); err != nil {
		s.logger.Warn("could not save loadout", zap.Error(err))
		return err
	}
	return nil
}
