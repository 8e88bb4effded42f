package sim

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Loop ticks a match at a fixed rate without a window.
type Loop struct {
	match    *Match
	tickRate int
	logger   *zap.Logger

	// OnTick, when set, sees every frame after it was simulated. Returning
	// false stops the loop.
	OnTick func(Snapshot) bool
}

func NewLoop(match *Match, tickRate int) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Loop{
		match:    match,
		tickRate: tickRate,
		logger:   match.log,
	}
}

// Run ticks until ctx is done or OnTick asks to stop. It returns the number
// of frames simulated.
func (l *Loop) Run(ctx context.Context) int {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	l.logger.Info("loop started", zap.Int("tick_rate", l.tickRate))

	frames := 0
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("loop stopped", zap.Int("frames", frames), zap.Error(ctx.Err()))
			return frames
		case <-ticker.C:
			l.match.Tick()
			frames++
			if l.OnTick != nil && !l.OnTick(l.match.Snapshot()) {
				l.logger.Info("loop finished", zap.Int("frames", frames))
				return frames
			}
		}
	}
}
