package config

// Slot identifies one of the two fighters.
type Slot int

const (
	SlotOne Slot = iota
	SlotTwo
	SlotCount // Must be last - used for array sizing
)

func (s Slot) String() string {
	if s == SlotTwo {
		return "player2"
	}
	return "player1"
}

// Valid reports whether s names a fighter slot.
func (s Slot) Valid() bool {
	return s >= SlotOne && s < SlotCount
}

// Opponent returns the other slot.
func (s Slot) Opponent() Slot {
	if s == SlotOne {
		return SlotTwo
	}
	return SlotOne
}

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionCrouch
	ActionDodge
	ActionBasic
	ActionSkill1
	ActionSkill2
	ActionRestart
	ActionCount // Must be last - used for array sizing
)

var actionNames = map[ActionID]string{
	ActionMoveLeft:  "left",
	ActionMoveRight: "right",
	ActionJump:      "jump",
	ActionCrouch:    "crouch",
	ActionDodge:     "dodge",
	ActionBasic:     "basic",
	ActionSkill1:    "skill1",
	ActionSkill2:    "skill2",
	ActionRestart:   "restart",
}

func (a ActionID) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// Valid reports whether a is a bindable action.
func (a ActionID) Valid() bool {
	return a > ActionNone && a < ActionCount
}

// TierAction returns the input action that triggers an attack tier.
func TierAction(t Tier) ActionID {
	switch t {
	case TierSkill1:
		return ActionSkill1
	case TierSkill2:
		return ActionSkill2
	}
	return ActionBasic
}
