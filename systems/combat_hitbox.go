package systems

import (
	"github.com/automoto/stickbrawl/components"
	cfg "github.com/automoto/stickbrawl/config"
	"github.com/automoto/stickbrawl/systems/factory"
	"github.com/automoto/stickbrawl/tags"
	"github.com/yohamta/donburi"
)

type pendingHit struct {
	attacker *donburi.Entry
	defender *donburi.Entry
	hit      Hit
}

// ResolveHits checks both attacker/defender pairings against the same
// pre-hit state, then applies every landed hit. Trades land on both sides.
func ResolveHits(env *Env) {
	fs := fighters(env)
	if len(fs) != int(cfg.SlotCount) {
		return
	}

	var hits []pendingHit
	for i, attacker := range fs {
		defender := fs[1-i]
		if hit, ok := detectHit(attacker, defender); ok {
			hits = append(hits, pendingHit{attacker: attacker, defender: defender, hit: hit})
		}
	}

	for _, h := range hits {
		applyHit(env, h)
	}
}

func detectHit(attacker, defender *donburi.Entry) (Hit, bool) {
	attack := components.Attack.Get(attacker)
	if attack.HasHit {
		return Hit{}, false
	}
	hitbox, ok := AttackHitbox(attacker)
	if !ok {
		return Hit{}, false
	}
	if avoidsAttack(defender, attack.Stats.Height) {
		return Hit{}, false
	}
	hurtbox, ok := Hurtbox(defender)
	if !ok {
		return Hit{}, false
	}
	if !inBroadphase(attacker, defender) || !hitbox.Overlaps(hurtbox) {
		return Hit{}, false
	}

	direction := 1.0
	if Body(attacker).X >= Body(defender).X {
		direction = -1.0
	}
	return Hit{
		Damage:    attack.Stats.Damage,
		Direction: direction,
		Force:     attack.Stats.Knockback,
		Tier:      attack.Tier,
		Weapon:    components.Fighter.Get(attacker).Weapon,
	}, true
}

// avoidsAttack applies the posture rules before any geometry: jumping clears
// low attacks, crouching ducks high attacks and dodging avoids everything.
func avoidsAttack(defender *donburi.Entry, height cfg.AttackHeight) bool {
	switch {
	case IsDodging(defender):
		return true
	case IsJumping(defender) && height == cfg.HeightLow:
		return true
	case IsCrouching(defender) && height == cfg.HeightHigh:
		return true
	}
	return false
}

// inBroadphase asks the collision space whether the defender's body shares a
// cell with the attacker's weapon box.
func inBroadphase(attacker, defender *donburi.Entry) bool {
	hb := components.Hitbox.Get(attacker)
	if !hb.InSpace {
		// no space attached (bare world); fall back to the exact test
		return true
	}
	check := hb.Object.Check(0, 0, tags.ResolvFighter)
	if check == nil {
		return false
	}
	for _, obj := range check.Objects {
		if entry, ok := obj.Data.(*donburi.Entry); ok && entry == defender {
			return true
		}
	}
	return false
}

func applyHit(env *Env, h pendingHit) {
	components.Attack.Get(h.attacker).HasHit = true

	if !TakeDamage(env, h.defender, h.hit) {
		return
	}

	nudgeApart(h.attacker, h.defender, h.hit.Direction)

	body := Body(h.defender)
	factory.SpawnDamageNumber(env.World, body.CenterX(), body.Y, h.hit.Damage)
	PlayCue(env, cfg.CueHit)
}

// nudgeApart keeps at least MinSeparation pixels between the fighters after a
// hit without swapping their order. A defender already clear of the gap is
// pushed one more HitPushStep along the hit.
func nudgeApart(attacker, defender *donburi.Entry, direction float64) {
	att := Body(attacker)
	obj := components.Object.Get(defender).Object
	gap := cfg.Combat.MinSeparation

	if direction > 0 {
		if obj.X-att.Right() < gap {
			obj.X = att.Right() + gap
		} else {
			obj.X += cfg.Combat.HitPushStep
		}
	} else {
		if att.X-(obj.X+obj.W) < gap {
			obj.X = att.X - obj.W - gap
		} else {
			obj.X -= cfg.Combat.HitPushStep
		}
	}
	clampToArena(components.Fighter.Get(defender), obj)
}
