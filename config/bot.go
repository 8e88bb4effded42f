package config

// BotConfigData holds all bot decision tuning. Chances are probabilities in [0,1).
type BotConfigData struct {
	ThinkInterval int // frames between decisions
	ThinkJitter   int // extra frames drawn from [0, ThinkJitter)

	LowHealthRatio    float64
	RetreatChance     float64
	RetreatJumpChance float64

	FarRange             float64 // beyond this the bot closes in
	ApproachAttackRange  float64 // while closing in, may swing within this
	ApproachAttackChance float64
	CloseRange           float64 // inside this the bot backs off
	CloseJumpChance      float64
	MidAttackChance      float64

	EvadeChance     float64 // react to an attacking opponent
	EvadeJumpChance float64

	Skill1Chance float64 // use skill1 when basic is cooling down
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		ThinkInterval: 8,
		ThinkJitter:   6,

		LowHealthRatio:    0.25,
		RetreatChance:     0.6,
		RetreatJumpChance: 0.35,

		FarRange:             170,
		ApproachAttackRange:  260,
		ApproachAttackChance: 0.5,
		CloseRange:           70,
		CloseJumpChance:      0.35,
		MidAttackChance:      0.65,

		EvadeChance:     0.6,
		EvadeJumpChance: 0.6,

		Skill1Chance: 0.5,
	}
}
