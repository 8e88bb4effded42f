package main

import (
	"fmt"

	"github.com/automoto/stickbrawl/config"
	"github.com/automoto/stickbrawl/persistence"
)

type loadout struct {
	weapon1 config.WeaponType
	weapon2 config.WeaponType
	vsAI    bool
}

// resolveLoadout combines the flags with the last saved loadout. Flags win;
// the saved weapons fill in what the flags leave empty.
func resolveLoadout(w1, w2 string, vsAI bool, saved persistence.Loadout, hasSaved bool) (loadout, error) {
	lo := loadout{weapon1: config.Katana, weapon2: config.WeaponNone, vsAI: vsAI}

	if hasSaved {
		a, b, err := saved.Weapons()
		if err == nil {
			lo.weapon1 = a
			if !vsAI || saved.VsAI {
				lo.weapon2 = b
			}
		}
	}

	if w1 != "" {
		w, err := config.ParseWeapon(w1)
		if err != nil {
			return loadout{}, fmt.Errorf("weapon1: %w", err)
		}
		lo.weapon1 = w
	}
	if w2 != "" {
		w, err := config.ParseWeapon(w2)
		if err != nil {
			return loadout{}, fmt.Errorf("weapon2: %w", err)
		}
		lo.weapon2 = w
	}

	// a human opponent always needs a weapon
	if !vsAI && lo.weapon2 == config.WeaponNone {
		lo.weapon2 = config.Katana
	}
	return lo, nil
}
