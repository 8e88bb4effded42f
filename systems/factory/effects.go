package factory

import (
	"github.com/automoto/stickbrawl/archetypes"
	"github.com/automoto/stickbrawl/components"
	cfg "github.com/automoto/stickbrawl/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// SpawnDamageNumber creates a floating damage label centered at x with its
// baseline at y. It rises at a constant rate and fades out before expiring.
func SpawnDamageNumber(w donburi.World, x, y float64, amount int) *donburi.Entry {
	e := archetypes.DamageNumber.Spawn(w)

	frames := float32(cfg.Effects.DamageNumberFrames)
	rise := float32(cfg.Effects.DamageNumberRise) * frames

	components.DamageNumber.SetValue(e, components.DamageNumberData{
		Amount:  amount,
		X:       x,
		Y:       y,
		OriginY: y,
		Alpha:   1,
		Rise:    gween.New(0, rise, frames, ease.Linear),
		Fade:    gween.New(1, 0, frames, ease.InQuad),
	})
	components.AutoDestroy.SetValue(e, components.AutoDestroyData{
		FramesRemaining: cfg.Effects.DamageNumberFrames,
	})
	return e
}
