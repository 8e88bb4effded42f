package systems

import (
	"github.com/automoto/stickbrawl/components"
	cfg "github.com/automoto/stickbrawl/config"
	"github.com/automoto/stickbrawl/tags"
	"github.com/yohamta/donburi"
)

// ResolveBodyOverlap pushes overlapping fighters apart, each by half of the
// horizontal penetration.
func ResolveBodyOverlap(env *Env) {
	fs := fighters(env)
	if len(fs) != int(cfg.SlotCount) {
		return
	}
	a, b := fs[0], fs[1]

	if !bodiesTouch(a, b) {
		return
	}
	overlap := Body(a).OverlapX(Body(b))
	if overlap <= 0 {
		return
	}

	objA := components.Object.Get(a).Object
	objB := components.Object.Get(b).Object
	half := overlap / 2

	if Body(a).CenterX() <= Body(b).CenterX() {
		objA.X -= half
		objB.X += half
	} else {
		objA.X += half
		objB.X -= half
	}
	clampToArena(components.Fighter.Get(a), objA)
	clampToArena(components.Fighter.Get(b), objB)
}

// bodiesTouch is the collision space broadphase for two bodies.
func bodiesTouch(a, b *donburi.Entry) bool {
	obj := components.Object.Get(a).Object
	if obj.Space == nil {
		return true
	}
	check := obj.Check(0, 0, tags.ResolvFighter)
	if check == nil {
		return false
	}
	for _, other := range check.Objects {
		if entry, ok := other.Data.(*donburi.Entry); ok && entry == b {
			return true
		}
	}
	return false
}
