package factory

import (
	"github.com/automoto/stickbrawl/archetypes"
	"github.com/automoto/stickbrawl/components"
	cfg "github.com/automoto/stickbrawl/config"
	"github.com/automoto/stickbrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateFighter spawns a fighter standing on the ground at its slot's spawn
// point and adds its body to the collision space.
func CreateFighter(w donburi.World, space *resolv.Space, slot cfg.Slot, weapon cfg.WeaponType, bot bool) (*donburi.Entry, error) {
	stats, err := cfg.Weapons.Lookup(weapon)
	if err != nil {
		return nil, err
	}

	var fighter *donburi.Entry
	if bot {
		fighter = archetypes.Fighter.Spawn(w, components.Bot)
	} else {
		fighter = archetypes.Fighter.Spawn(w)
	}

	width, height := cfg.Fighter.Width, cfg.Fighter.Height
	groundY := cfg.Arena.GroundY()

	obj := resolv.NewObject(cfg.Fighter.SpawnX[slot], groundY-height, width, height, tags.ResolvFighter)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = fighter
	space.Add(obj)
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})

	hitbox := resolv.NewObject(obj.X, obj.Y, 1, 1, tags.ResolvHitbox)
	hitbox.Data = fighter
	components.Hitbox.SetValue(fighter, components.HitboxData{Object: hitbox})

	facing := components.FacingRight
	if slot == cfg.SlotTwo {
		facing = components.FacingLeft
	}
	components.Fighter.SetValue(fighter, components.FighterData{
		Slot:       slot,
		Weapon:     weapon,
		Stats:      stats,
		Facing:     facing,
		GroundY:    groundY,
		ArenaWidth: float64(cfg.Arena.Width),
	})
	components.State.SetValue(fighter, components.StateData{CurrentState: cfg.StateIdle})
	components.Physics.SetValue(fighter, components.PhysicsData{OnGround: true})
	components.Health.SetValue(fighter, components.HealthData{
		Current: cfg.Fighter.Health,
		Max:     cfg.Fighter.Health,
	})
	components.PlayerInput.SetValue(fighter, components.PlayerInputData{BotControlled: bot})

	// Flash stays attached to avoid archetype thrashing
	components.Flash.SetValue(fighter, components.FlashData{
		Duration: 0,
		R:        1, G: 1, B: 1,
	})

	return fighter, nil
}
