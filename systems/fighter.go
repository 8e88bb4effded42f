package systems

import (
	"github.com/automoto/stickbrawl/components"
	cfg "github.com/automoto/stickbrawl/config"
	"github.com/automoto/stickbrawl/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Vertical placement of attack boxes inside the body.
const (
	highHitboxInset = 10.0
	lowHitboxInset  = 5.0
)

// UpdateFighters advances both fighters one frame in slot order.
func UpdateFighters(env *Env) {
	for _, e := range fighters(env) {
		UpdateFighter(env, e)
	}
}

// UpdateFighter runs one frame of a fighter: cooldowns, timed actions, input
// and physics. Dead fighters are frozen.
func UpdateFighter(env *Env, e *donburi.Entry) {
	health := components.Health.Get(e)
	if !health.Alive() {
		return
	}

	components.Cooldown.Get(e).Tick()
	components.State.Get(e).StateTimer++

	advanceTimedAction(e)
	handleFighterInput(env, e)
	applyFighterPhysics(e)
	syncHitbox(env, e)
}

func advanceTimedAction(e *donburi.Entry) {
	state := components.State.Get(e)

	switch {
	case state.CurrentState.IsAttack():
		attack := components.Attack.Get(e)
		if state.StateTimer >= attack.Stats.Duration() {
			finishAction(e)
		}
	case state.CurrentState == cfg.StateDodging:
		if state.StateTimer >= cfg.Fighter.DodgeDuration {
			components.Physics.Get(e).SpeedX = 0
			finishAction(e)
		}
	}
}

func finishAction(e *donburi.Entry) {
	state := components.State.Get(e)
	physics := components.Physics.Get(e)

	if physics.OnGround {
		state.Set(cfg.StateIdle)
	} else {
		state.Set(cfg.StateJumping)
	}
}

func handleFighterInput(env *Env, e *donburi.Entry) {
	state := components.State.Get(e)
	if state.CurrentState.IsAttack() || state.CurrentState == cfg.StateDodging {
		return
	}

	input := components.PlayerInput.Get(e)
	cooldowns := components.Cooldown.Get(e)

	if input.Pressed(cfg.ActionDodge) && cooldowns.Ready(cfg.CooldownDodge) {
		startDodge(env, e)
		return
	}

	for _, tier := range cfg.AllTiers() {
		if input.Pressed(cfg.TierAction(tier)) && cooldowns.Ready(tier.CooldownSlot()) {
			startAttack(env, e, tier)
			return
		}
	}

	handleMovement(env, e)
}

func startDodge(env *Env, e *donburi.Entry) {
	fighter := components.Fighter.Get(e)
	input := components.PlayerInput.Get(e)

	dir := fighter.Facing
	if input.Pressed(cfg.ActionMoveLeft) != input.Pressed(cfg.ActionMoveRight) {
		dir = components.FacingRight
		if input.Pressed(cfg.ActionMoveLeft) {
			dir = components.FacingLeft
		}
		fighter.Facing = dir
	}

	components.Cooldown.Get(e).Start(cfg.CooldownDodge, cfg.Fighter.DodgeCooldown)
	components.Physics.Get(e).SpeedX = dir * cfg.Fighter.DodgeSpeed
	components.State.Get(e).Set(cfg.StateDodging)
	PlayCue(env, cfg.CueDodge)
}

func startAttack(env *Env, e *donburi.Entry, tier cfg.Tier) {
	fighter := components.Fighter.Get(e)
	stats := fighter.Stats.Attack(tier)

	components.Cooldown.Get(e).Start(tier.CooldownSlot(), stats.Cooldown)
	components.Attack.SetValue(e, components.AttackData{
		Tier:   tier,
		Stats:  stats,
		HasHit: false,
	})

	// Grounded attacks plant the feet; air attacks keep their momentum.
	physics := components.Physics.Get(e)
	if physics.OnGround {
		physics.SpeedX = 0
	}

	components.State.Get(e).Set(cfg.AttackState(tier))
	PlayCue(env, cfg.CueAttack)
}

func handleMovement(env *Env, e *donburi.Entry) {
	fighter := components.Fighter.Get(e)
	physics := components.Physics.Get(e)
	state := components.State.Get(e)
	input := components.PlayerInput.Get(e)

	physics.SpeedX = 0

	if input.Pressed(cfg.ActionJump) && physics.OnGround {
		physics.SpeedY = -cfg.Fighter.JumpSpeed
		physics.OnGround = false
		state.Set(cfg.StateJumping)
		PlayCue(env, cfg.CueJump)
	}

	if physics.OnGround && input.Pressed(cfg.ActionCrouch) {
		if state.CurrentState != cfg.StateCrouching {
			state.Set(cfg.StateCrouching)
		}
		return
	}

	dir := 0.0
	if input.Pressed(cfg.ActionMoveLeft) {
		dir--
	}
	if input.Pressed(cfg.ActionMoveRight) {
		dir++
	}
	if dir != 0 {
		physics.SpeedX = dir * cfg.Fighter.MoveSpeed
		fighter.Facing = dir
	}

	if physics.OnGround {
		next := cfg.StateIdle
		if dir != 0 {
			next = cfg.StateMoving
		}
		if state.CurrentState != next {
			state.Set(next)
		}
	}
}

func applyFighterPhysics(e *donburi.Entry) {
	fighter := components.Fighter.Get(e)
	physics := components.Physics.Get(e)
	state := components.State.Get(e)
	obj := components.Object.Get(e).Object

	if !physics.OnGround {
		physics.SpeedY = gamemath.ClampSpeed(physics.SpeedY+cfg.Physics.Gravity, cfg.Physics.MaxFallSpeed)
	}

	obj.X += physics.SpeedX
	obj.Y += physics.SpeedY

	floor := fighter.GroundY - obj.H
	if obj.Y >= floor {
		obj.Y = floor
		physics.SpeedY = 0
		if !physics.OnGround {
			physics.OnGround = true
			if state.CurrentState == cfg.StateJumping {
				if physics.SpeedX != 0 {
					state.Set(cfg.StateMoving)
				} else {
					state.Set(cfg.StateIdle)
				}
			}
		}
	}

	clampToArena(fighter, obj)
}

// clampToArena keeps the body inside [0, ArenaWidth-W] and refreshes its
// position in the collision space.
func clampToArena(fighter *components.FighterData, obj *resolv.Object) {
	obj.X = gamemath.Clamp(obj.X, 0, fighter.ArenaWidth-obj.W)
	obj.Update()
}

// syncHitbox keeps the weapon box in the collision space exactly while the
// attack is active.
func syncHitbox(env *Env, e *donburi.Entry) {
	space := spaceOf(env)
	if space == nil {
		return
	}
	hb := components.Hitbox.Get(e)

	rect, active := AttackHitbox(e)
	if !active {
		if hb.InSpace {
			space.Remove(hb.Object)
			hb.InSpace = false
		}
		return
	}

	hb.Object.X, hb.Object.Y = rect.X, rect.Y
	if hb.Object.W != rect.W || hb.Object.H != rect.H {
		hb.Object.W, hb.Object.H = rect.W, rect.H
		hb.Object.SetShape(resolv.NewRectangle(0, 0, rect.W, rect.H))
	}
	if !hb.InSpace {
		space.Add(hb.Object)
		hb.InSpace = true
	}
	hb.Object.Update()
}

// Body returns the fighter's full body box.
func Body(e *donburi.Entry) gamemath.Rect {
	obj := components.Object.Get(e).Object
	return gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

// AttackHitbox returns the weapon box, present only during the active window.
func AttackHitbox(e *donburi.Entry) (gamemath.Rect, bool) {
	state := components.State.Get(e)
	if !state.CurrentState.IsAttack() {
		return gamemath.Rect{}, false
	}
	stats := components.Attack.Get(e).Stats
	if !stats.ActiveAt(state.StateTimer) {
		return gamemath.Rect{}, false
	}

	fighter := components.Fighter.Get(e)
	body := Body(e)

	x := body.Right()
	if fighter.Facing < 0 {
		x = body.X - stats.Reach
	}
	y := body.Y + highHitboxInset
	if stats.Height == cfg.HeightLow {
		y = body.Bottom() - stats.HitboxHeight - lowHitboxInset
	}
	return gamemath.Rect{X: x, Y: y, W: stats.Reach, H: stats.HitboxHeight}, true
}

// Hurtbox returns the vulnerable box, present while alive. Crouching keeps
// only the lower part of the body.
func Hurtbox(e *donburi.Entry) (gamemath.Rect, bool) {
	if !components.Health.Get(e).Alive() {
		return gamemath.Rect{}, false
	}
	body := Body(e)
	if IsCrouching(e) {
		h := body.H * cfg.Fighter.CrouchHurtboxRatio
		return gamemath.Rect{X: body.X, Y: body.Bottom() - h, W: body.W, H: h}, true
	}
	return body, true
}

func IsAttacking(e *donburi.Entry) bool {
	return components.State.Get(e).CurrentState.IsAttack()
}

func IsJumping(e *donburi.Entry) bool {
	return components.State.Get(e).CurrentState == cfg.StateJumping
}

func IsCrouching(e *donburi.Entry) bool {
	return components.State.Get(e).CurrentState == cfg.StateCrouching
}

// IsDodging doubles as the invulnerability check.
func IsDodging(e *donburi.Entry) bool {
	return components.State.Get(e).CurrentState == cfg.StateDodging
}

// CurrentTier is the attack tier being executed, TierNone otherwise.
func CurrentTier(e *donburi.Entry) cfg.Tier {
	return components.State.Get(e).CurrentState.Tier()
}

// CooldownSeconds returns the remaining cooldown of a slot in whole seconds,
// rounded up.
func CooldownSeconds(e *donburi.Entry, slot cfg.CooldownSlot) int {
	return components.Cooldown.Get(e).Seconds(slot, cfg.Match.TickRate)
}
