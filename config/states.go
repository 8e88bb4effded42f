package config

// ActionState is the single state a fighter is in. Attack tiers are their
// own states so a fighter can never be attacking without a tier.
type ActionState int

const (
	StateIdle ActionState = iota
	StateMoving
	StateJumping
	StateCrouching
	StateDodging
	StateAttackBasic
	StateAttackSkill1
	StateAttackSkill2
)

var stateNames = map[ActionState]string{
	StateIdle:         "idle",
	StateMoving:       "moving",
	StateJumping:      "jumping",
	StateCrouching:    "crouching",
	StateDodging:      "dodging",
	StateAttackBasic:  "attack_basic",
	StateAttackSkill1: "attack_skill1",
	StateAttackSkill2: "attack_skill2",
}

func (s ActionState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsAttack reports whether the state is one of the attack tiers.
func (s ActionState) IsAttack() bool {
	return s == StateAttackBasic || s == StateAttackSkill1 || s == StateAttackSkill2
}

// Tier returns the attack tier of an attack state, TierNone otherwise.
func (s ActionState) Tier() Tier {
	switch s {
	case StateAttackBasic:
		return TierBasic
	case StateAttackSkill1:
		return TierSkill1
	case StateAttackSkill2:
		return TierSkill2
	}
	return TierNone
}

// AttackState maps a tier to its action state.
func AttackState(t Tier) ActionState {
	switch t {
	case TierSkill1:
		return StateAttackSkill1
	case TierSkill2:
		return StateAttackSkill2
	}
	return StateAttackBasic
}

// MatchPhase is the match-level state machine.
type MatchPhase int

const (
	PhaseCountdown MatchPhase = iota
	PhaseFighting
	PhaseEnded
)

func (p MatchPhase) String() string {
	switch p {
	case PhaseCountdown:
		return "countdown"
	case PhaseFighting:
		return "fighting"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}

// Outcome is the winner of an ended match.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeSlotOne
	OutcomeSlotTwo
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSlotOne:
		return "player1"
	case OutcomeSlotTwo:
		return "player2"
	case OutcomeDraw:
		return "draw"
	}
	return "none"
}

// OutcomeFor returns the outcome where the given slot wins.
func OutcomeFor(s Slot) Outcome {
	if s == SlotTwo {
		return OutcomeSlotTwo
	}
	return OutcomeSlotOne
}
