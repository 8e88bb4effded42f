package scenes

import (
	"fmt"
	"image/color"
	"strings"

	cfg "github.com/automoto/stickbrawl/config"
	"github.com/automoto/stickbrawl/fonts"
	"github.com/automoto/stickbrawl/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	hudBarWidth  = 250
	hudBarHeight = 16
	hudMargin    = 20
)

var (
	hudBackground = color.RGBA{40, 40, 40, 255}
	hudHealth     = color.RGBA{40, 220, 40, 255}
	hudLowHealth  = color.RGBA{220, 60, 40, 255}
	white         = color.RGBA{255, 255, 255, 255}
	overlay       = color.RGBA{0, 0, 0, 140}
)

// bannerText is the big centered message for the current phase.
func bannerText(snap sim.Snapshot) string {
	switch snap.Phase {
	case cfg.PhaseCountdown:
		if snap.CountdownValue > 0 {
			return fmt.Sprint(snap.CountdownValue)
		}
		if snap.FightSignaled {
			return "FIGHT!"
		}
	case cfg.PhaseEnded:
		return winnerText(snap.Winner)
	}
	return ""
}

func winnerText(o cfg.Outcome) string {
	switch o {
	case cfg.OutcomeSlotOne:
		return "PLAYER 1 WINS!"
	case cfg.OutcomeSlotTwo:
		return "PLAYER 2 WINS!"
	case cfg.OutcomeDraw:
		return "DRAW!"
	}
	return ""
}

// cooldownText lists the seconds left per attack slot and dodge. Ready slots
// show "ok".
func cooldownText(f sim.FighterSnapshot) string {
	labels := [cfg.CooldownSlotCount]string{"B", "S1", "S2", "D"}
	parts := make([]string, 0, len(labels))
	for slot, label := range labels {
		v := "ok"
		if secs := f.Cooldowns[slot]; secs > 0 {
			v = fmt.Sprintf("%ds", secs)
		}
		parts = append(parts, label+":"+v)
	}
	return strings.Join(parts, " ")
}

func nameplate(f sim.FighterSnapshot) string {
	who := "P1"
	if f.Slot == cfg.SlotTwo {
		who = "P2"
		if f.BotControlled {
			who = "CPU"
		}
	}
	return fmt.Sprintf("%s %s", who, f.Weapon)
}

func drawHUD(screen *ebiten.Image, snap sim.Snapshot) {
	width := screen.Bounds().Dx()
	for slot, f := range snap.Fighters {
		x := float32(hudMargin)
		if cfg.Slot(slot) == cfg.SlotTwo {
			x = float32(width - hudMargin - hudBarWidth)
		}
		drawHealthBar(screen, x, hudMargin, f)

		small := fonts.Small.Get()
		text.Draw(screen, nameplate(f), small, int(x), hudMargin+hudBarHeight+16, white)
		text.Draw(screen, cooldownText(f), small, int(x), hudMargin+hudBarHeight+32, white)
	}

	if msg := bannerText(snap); msg != "" {
		drawBanner(screen, msg, snap.Phase == cfg.PhaseEnded)
	}
}

func drawHealthBar(screen *ebiten.Image, x, y float32, f sim.FighterSnapshot) {
	vector.FillRect(screen, x, y, hudBarWidth, hudBarHeight, hudBackground, false)
	ratio := float32(f.HealthRatio)
	c := hudHealth
	if ratio < 0.25 {
		c = hudLowHealth
	}
	w := hudBarWidth * ratio
	// player 2's bar drains toward the center
	if f.Slot == cfg.SlotTwo {
		x += hudBarWidth - w
	}
	vector.FillRect(screen, x, y, w, hudBarHeight, c, false)
}

func drawBanner(screen *ebiten.Image, msg string, ended bool) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	if ended {
		vector.FillRect(screen, 0, 0, float32(width), float32(height), overlay, false)
	}

	face := fonts.Banner.Get()
	drawCentered(screen, msg, face, width/2, height/2-40, white)

	if ended {
		drawCentered(screen, "Enter: rematch", fonts.HUD.Get(), width/2, height/2, white)
	}
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, y int, c color.Color) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, cx-w/2, y, c)
}
