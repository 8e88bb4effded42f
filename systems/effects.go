package systems

import (
	"github.com/automoto/stickbrawl/components"
	"github.com/automoto/stickbrawl/tags"
	"github.com/yohamta/donburi"
)

// UpdateEffects advances hit flashes and damage numbers. Runs every frame in
// every phase.
func UpdateEffects(env *Env) {
	updateFlashEffects(env)
	updateDamageNumbers(env)
	updateAutoDestroy(env)
}

// updateFlashEffects decrements flash timers
func updateFlashEffects(env *Env) {
	components.Flash.Each(env.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

func updateDamageNumbers(env *Env) {
	tags.DamageNumber.Each(env.World, func(e *donburi.Entry) {
		dn := components.DamageNumber.Get(e)
		if dn.Rise != nil {
			offset, _ := dn.Rise.Update(1)
			dn.Y = dn.OriginY - float64(offset)
		}
		if dn.Fade != nil {
			alpha, _ := dn.Fade.Update(1)
			dn.Alpha = alpha
		}
	})
}

// updateAutoDestroy removes entities whose frame budget ran out
func updateAutoDestroy(env *Env) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(env.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.FramesRemaining--
		if ad.FramesRemaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		env.World.Remove(e.Entity())
	}
}

// ClearDamageNumbers removes every damage number.
func ClearDamageNumbers(env *Env) {
	var toDestroy []*donburi.Entry
	tags.DamageNumber.Each(env.World, func(e *donburi.Entry) {
		toDestroy = append(toDestroy, e)
	})
	for _, e := range toDestroy {
		env.World.Remove(e.Entity())
	}
}
