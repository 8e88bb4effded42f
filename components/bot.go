package components

import (
	"github.com/automoto/stickbrawl/ai"
	"github.com/yohamta/donburi"
)

// BotData is the AI brain attached to a bot-controlled fighter.
type BotData struct {
	ThinkTimer int
	Queue      []ai.Command
}

var Bot = donburi.NewComponentType[BotData]()
