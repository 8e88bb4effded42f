package components

import (
	cfg "github.com/automoto/stickbrawl/config"
	"github.com/yohamta/donburi"
)

// CooldownData holds remaining frames per cooldown slot. An action may start
// only while its slot is zero.
type CooldownData struct {
	Remaining [cfg.CooldownSlotCount]int
}

// Ready reports whether the slot has cooled down.
func (c *CooldownData) Ready(slot cfg.CooldownSlot) bool {
	return c.Remaining[slot] == 0
}

// Start sets the slot to its full duration.
func (c *CooldownData) Start(slot cfg.CooldownSlot, frames int) {
	if frames < 0 {
		frames = 0
	}
	c.Remaining[slot] = frames
}

// Tick advances every slot by one frame, flooring at zero.
func (c *CooldownData) Tick() {
	for i := range c.Remaining {
		if c.Remaining[i] > 0 {
			c.Remaining[i]--
		}
	}
}

// Seconds returns the remaining time of a slot rounded up to whole seconds.
func (c *CooldownData) Seconds(slot cfg.CooldownSlot, tickRate int) int {
	if tickRate <= 0 {
		return 0
	}
	return (c.Remaining[slot] + tickRate - 1) / tickRate
}

var Cooldown = donburi.NewComponentType[CooldownData]()
