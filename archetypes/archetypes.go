package archetypes

import (
	"github.com/automoto/stickbrawl/components"
	"github.com/automoto/stickbrawl/tags"
	"github.com/yohamta/donburi"
)

var (
	Fighter = newArchetype(
		tags.Fighter,
		components.Fighter,
		components.Object,
		components.Health,
		components.Physics,
		components.State,
		components.Cooldown,
		components.Attack,
		components.Hitbox,
		components.PlayerInput,
		components.Flash,
	)
	DamageNumber = newArchetype(
		tags.DamageNumber,
		components.DamageNumber,
		components.AutoDestroy,
	)
	Space = newArchetype(
		components.Space,
	)
	Match = newArchetype(
		components.Match,
	)
	Audio = newArchetype(
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extras.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
