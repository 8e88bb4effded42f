// Package ai decides what a bot-controlled fighter does next. Decide is a
// pure function of the situation, the random source and the tuning; the
// caller owns the think timer and the command queue.
package ai

// Command is a symbolic bot intention, expanded to one frame of input.
type Command int

const (
	CmdNone Command = iota
	CmdMoveCloser
	CmdBackAway
	CmdAttack
	CmdJump
)

func (c Command) String() string {
	switch c {
	case CmdMoveCloser:
		return "move_closer"
	case CmdBackAway:
		return "back_away"
	case CmdAttack:
		return "attack"
	case CmdJump:
		return "jump"
	}
	return "none"
}

// Random is the subset of *rand.Rand the bot draws from.
type Random interface {
	Float64() float64
	Intn(n int) int
}
