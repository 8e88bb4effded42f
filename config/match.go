package config

// MatchConfig contains match flow timing
type MatchConfig struct {
	TickRate      int // frames per second
	CountdownFrom int // first number shown
	// Whole seconds between the fight signal and the start of combat.
	FightGraceSeconds int
}

// FightStartSecond is the elapsed second at which combat begins.
func (m MatchConfig) FightStartSecond() int {
	return m.CountdownFrom + m.FightGraceSeconds
}

var Match MatchConfig

func init() {
	Match = MatchConfig{
		TickRate:          60,
		CountdownFrom:     3,
		FightGraceSeconds: 1,
	}
}
