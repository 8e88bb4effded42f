package config

import "image/color"

// ArenaConfig describes the playfield. The ground line sits GroundOffset
// pixels above the bottom edge.
type ArenaConfig struct {
	Width        int
	Height       int
	GroundOffset float64
	CellSize     int
}

// GroundY returns the feet line fighters stand on.
func (a ArenaConfig) GroundY() float64 {
	return float64(a.Height) - a.GroundOffset
}

// FighterConfig contains all fighter-related configuration values
type FighterConfig struct {
	// Dimensions
	Width  float64
	Height float64
	// Fraction of the body height kept as hurtbox while crouching (lower part).
	CrouchHurtboxRatio float64

	// Movement
	MoveSpeed float64
	JumpSpeed float64

	// Dodge
	DodgeDuration int // frames
	DodgeCooldown int // frames
	DodgeSpeed    float64

	// Combat
	Health int

	// Spawn X per slot
	SpawnX [SlotCount]float64
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64
	MaxFallSpeed float64
}

// CombatConfig contains hit resolution tuning
type CombatConfig struct {
	// Minimum horizontal gap kept between fighters after a hit.
	MinSeparation float64
	// Extra push for a defender that already clears MinSeparation.
	HitPushStep float64

	// Flash effects (frames)
	HitFlashFrames int
	HitFlashColor  color.RGBA
}

// EffectsConfig contains damage number tuning
type EffectsConfig struct {
	DamageNumberFrames int     // 700ms at 60 TPS
	DamageNumberRise   float64 // pixels per frame
	DamageNumberColor  color.RGBA
}

// DebugConfig contains debug visualization toggles
type DebugConfig struct {
	ShowHitboxes  bool
	ShowHurtboxes bool
}

var Arena ArenaConfig
var Fighter FighterConfig
var Physics PhysicsConfig
var Combat CombatConfig
var Effects EffectsConfig
var Debug DebugConfig

func init() {
	Arena = ArenaConfig{
		Width:        800,
		Height:       600,
		GroundOffset: 100,
		CellSize:     16,
	}

	Fighter = FighterConfig{
		Width:              50,
		Height:             100,
		CrouchHurtboxRatio: 0.6,

		MoveSpeed: 4,
		JumpSpeed: 14,

		DodgeDuration: 18,
		DodgeCooldown: 90,
		DodgeSpeed:    7,

		Health: 100,

		SpawnX: [SlotCount]float64{150, 600},
	}

	Physics = PhysicsConfig{
		Gravity:      0.75,
		MaxFallSpeed: 16,
	}

	Combat = CombatConfig{
		MinSeparation:  2,
		HitPushStep:    1,
		HitFlashFrames: 8,
		HitFlashColor:  color.RGBA{R: 255, G: 80, B: 80, A: 255},
	}

	Effects = EffectsConfig{
		DamageNumberFrames: 42,
		DamageNumberRise:   0.8,
		DamageNumberColor:  color.RGBA{R: 255, G: 220, B: 40, A: 255},
	}

	Debug = DebugConfig{}
}
