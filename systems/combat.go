package systems

import (
	"github.com/automoto/stickbrawl/components"
	cfg "github.com/automoto/stickbrawl/config"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// Hit is one landed attack.
type Hit struct {
	Damage    int
	Direction float64 // +1 pushes right, -1 pushes left
	Force     float64
	Tier      cfg.Tier
	Weapon    cfg.WeaponType
}

// TakeDamage applies a hit: health drops (floored at zero), the body is
// displaced by Direction*Force inside the arena and flashes. The action state
// is left alone. Returns false when the fighter was already dead.
func TakeDamage(env *Env, e *donburi.Entry, hit Hit) bool {
	health := components.Health.Get(e)
	if !health.Alive() {
		return false
	}

	health.Current -= hit.Damage
	if health.Current < 0 {
		health.Current = 0
	}
	if health.Current > health.Max {
		health.Current = health.Max
	}

	fighter := components.Fighter.Get(e)
	obj := components.Object.Get(e).Object
	obj.X += hit.Direction * hit.Force
	clampToArena(fighter, obj)

	TriggerHitFlash(e)

	env.Logger.Debug("fighter hit",
		zap.Stringer("slot", fighter.Slot),
		zap.Int("damage", hit.Damage),
		zap.Stringer("tier", hit.Tier),
		zap.Stringer("weapon", hit.Weapon),
		zap.Int("health", health.Current),
	)
	return true
}

// TriggerHitFlash tints the fighter for a few frames.
func TriggerHitFlash(e *donburi.Entry) {
	if !e.HasComponent(components.Flash) {
		return
	}
	c := cfg.Combat.HitFlashColor
	components.Flash.SetValue(e, components.FlashData{
		Duration: cfg.Combat.HitFlashFrames,
		R:        float32(c.R) / 255,
		G:        float32(c.G) / 255,
		B:        float32(c.B) / 255,
	})
}
