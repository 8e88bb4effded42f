package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownWeapon is returned when a weapon identifier does not name one
// of the built-in weapons.
var ErrUnknownWeapon = errors.New("unknown weapon")

// WeaponType identifies a weapon.
type WeaponType int

const (
	WeaponNone WeaponType = iota
	Katana
	Axe
	Scythe
)

var weaponNames = map[WeaponType]string{
	Katana: "Katana",
	Axe:    "Axe",
	Scythe: "Scythe",
}

func (w WeaponType) String() string {
	if name, ok := weaponNames[w]; ok {
		return name
	}
	return "None"
}

// AllWeapons returns every selectable weapon in display order.
func AllWeapons() []WeaponType {
	return []WeaponType{Katana, Axe, Scythe}
}

// ParseWeapon resolves a case-insensitive weapon name.
func ParseWeapon(name string) (WeaponType, error) {
	trimmed := strings.TrimSpace(name)
	for w, n := range weaponNames {
		if strings.EqualFold(n, trimmed) {
			return w, nil
		}
	}
	return WeaponNone, fmt.Errorf("%w: %q", ErrUnknownWeapon, name)
}

// Tier is an attack tier. Tiers are numbered 1..3.
type Tier int

const (
	TierNone Tier = iota
	TierBasic
	TierSkill1
	TierSkill2
)

// TierCount is the number of attack tiers per weapon.
const TierCount = 3

// AllTiers returns the tiers in the order they are tried when starting an attack.
func AllTiers() []Tier {
	return []Tier{TierBasic, TierSkill1, TierSkill2}
}

func (t Tier) String() string {
	switch t {
	case TierBasic:
		return "basic"
	case TierSkill1:
		return "skill1"
	case TierSkill2:
		return "skill2"
	}
	return "none"
}

// CooldownSlot returns the cooldown slot gating this tier.
func (t Tier) CooldownSlot() CooldownSlot {
	switch t {
	case TierSkill1:
		return CooldownSkill1
	case TierSkill2:
		return CooldownSkill2
	}
	return CooldownBasic
}

// CooldownSlot indexes a fighter's cooldown timers.
type CooldownSlot int

const (
	CooldownBasic CooldownSlot = iota
	CooldownSkill1
	CooldownSkill2
	CooldownDodge
	CooldownSlotCount // Must be last - used for array sizing
)

func (c CooldownSlot) String() string {
	switch c {
	case CooldownBasic:
		return "basic"
	case CooldownSkill1:
		return "skill1"
	case CooldownSkill2:
		return "skill2"
	case CooldownDodge:
		return "dodge"
	}
	return "unknown"
}

// AttackHeight is where an attack lands. Jumping avoids Low, crouching avoids High.
type AttackHeight int

const (
	HeightNone AttackHeight = iota
	HeightLow
	HeightHigh
)

func (h AttackHeight) String() string {
	switch h {
	case HeightLow:
		return "low"
	case HeightHigh:
		return "high"
	}
	return "none"
}

// UnmarshalYAML accepts "low" or "high".
func (h *AttackHeight) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		*h = HeightLow
	case "high":
		*h = HeightHigh
	default:
		return fmt.Errorf("invalid attack height %q (want low or high)", s)
	}
	return nil
}

// AttackStats describes one attack tier of a weapon. Timings are in frames.
type AttackStats struct {
	Damage    int          `yaml:"damage"`
	Cooldown  int          `yaml:"cooldown"`
	Knockback float64      `yaml:"knockback"`
	Windup    int          `yaml:"windup"`
	Active    int          `yaml:"active"`
	Recovery  int          `yaml:"recovery"`
	Height    AttackHeight `yaml:"height"`

	// Hitbox size; the hitbox extends Reach pixels in front of the body.
	Reach        float64 `yaml:"reach"`
	HitboxHeight float64 `yaml:"hitbox_height"`
}

// Duration is the total number of frames the attack occupies.
func (a AttackStats) Duration() int {
	return a.Windup + a.Active + a.Recovery
}

// ActiveAt reports whether the hitbox exists at the given frame of the attack.
func (a AttackStats) ActiveAt(frame int) bool {
	return frame >= a.Windup && frame < a.Windup+a.Active
}

// WeaponConfig holds the per-tier tables for one weapon.
type WeaponConfig struct {
	Name    string
	Attacks [TierCount]AttackStats
}

// Attack returns the stats for a tier. TierNone yields zero stats.
func (w WeaponConfig) Attack(t Tier) AttackStats {
	if t < TierBasic || t > TierSkill2 {
		return AttackStats{}
	}
	return w.Attacks[t-1]
}

// WeaponTable maps every weapon to its stats.
type WeaponTable map[WeaponType]WeaponConfig

// Lookup returns the stats for w or ErrUnknownWeapon.
func (t WeaponTable) Lookup(w WeaponType) (WeaponConfig, error) {
	wc, ok := t[w]
	if !ok {
		return WeaponConfig{}, fmt.Errorf("%w: %v", ErrUnknownWeapon, w)
	}
	return wc, nil
}

// Validate checks that every weapon has a complete, non-negative table.
func (t WeaponTable) Validate() error {
	var errs []string
	for _, w := range AllWeapons() {
		wc, ok := t[w]
		if !ok {
			errs = append(errs, fmt.Sprintf("weapon %s: missing", w))
			continue
		}
		for _, tier := range AllTiers() {
			a := wc.Attack(tier)
			prefix := fmt.Sprintf("weapon %s %s", w, tier)
			if a.Damage < 0 {
				errs = append(errs, prefix+": damage must be >= 0")
			}
			if a.Knockback < 0 {
				errs = append(errs, prefix+": knockback must be >= 0")
			}
			if a.Cooldown <= 0 {
				errs = append(errs, prefix+": cooldown must be > 0")
			}
			if a.Windup < 0 || a.Recovery < 0 {
				errs = append(errs, prefix+": windup and recovery must be >= 0")
			}
			if a.Active <= 0 {
				errs = append(errs, prefix+": active must be > 0")
			}
			if a.Height != HeightLow && a.Height != HeightHigh {
				errs = append(errs, prefix+": height must be low or high")
			}
			if a.Reach <= 0 || a.HitboxHeight <= 0 {
				errs = append(errs, prefix+": hitbox must have a positive size")
			}
		}
	}
	if len(errs) > 0 {
		sort.Strings(errs)
		return fmt.Errorf("validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Weapons is the active weapon table. It is replaced only at startup.
var Weapons WeaponTable

func init() {
	Weapons = DefaultWeapons()
}

// DefaultWeapons returns the built-in weapon tables.
func DefaultWeapons() WeaponTable {
	return WeaponTable{
		Katana: {
			Name: "Katana",
			Attacks: [TierCount]AttackStats{
				{Damage: 8, Cooldown: 30, Knockback: 8, Windup: 4, Active: 6, Recovery: 8, Height: HeightHigh, Reach: 60, HitboxHeight: 40},
				{Damage: 14, Cooldown: 120, Knockback: 12, Windup: 8, Active: 8, Recovery: 12, Height: HeightLow, Reach: 70, HitboxHeight: 35},
				{Damage: 22, Cooldown: 240, Knockback: 15, Windup: 12, Active: 10, Recovery: 16, Height: HeightHigh, Reach: 80, HitboxHeight: 50},
			},
		},
		Axe: {
			Name: "Axe",
			Attacks: [TierCount]AttackStats{
				{Damage: 12, Cooldown: 45, Knockback: 10, Windup: 8, Active: 6, Recovery: 12, Height: HeightHigh, Reach: 55, HitboxHeight: 45},
				{Damage: 20, Cooldown: 150, Knockback: 16, Windup: 12, Active: 8, Recovery: 16, Height: HeightHigh, Reach: 65, HitboxHeight: 60},
				{Damage: 30, Cooldown: 300, Knockback: 20, Windup: 16, Active: 10, Recovery: 20, Height: HeightLow, Reach: 75, HitboxHeight: 40},
			},
		},
		Scythe: {
			Name: "Scythe",
			Attacks: [TierCount]AttackStats{
				{Damage: 10, Cooldown: 36, Knockback: 6, Windup: 6, Active: 8, Recovery: 10, Height: HeightLow, Reach: 75, HitboxHeight: 35},
				{Damage: 16, Cooldown: 132, Knockback: 18, Windup: 10, Active: 8, Recovery: 14, Height: HeightHigh, Reach: 85, HitboxHeight: 45},
				{Damage: 26, Cooldown: 270, Knockback: 12, Windup: 14, Active: 12, Recovery: 18, Height: HeightLow, Reach: 95, HitboxHeight: 40},
			},
		},
	}
}
