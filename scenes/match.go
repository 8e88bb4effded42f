package scenes

import (
	"image/color"
	"math"
	"strconv"

	cfg "github.com/automoto/stickbrawl/config"
	"github.com/automoto/stickbrawl/fonts"
	"github.com/automoto/stickbrawl/gamemath"
	"github.com/automoto/stickbrawl/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
)

var (
	background   = color.RGBA{24, 26, 34, 255}
	groundColor  = color.RGBA{90, 90, 100, 255}
	hitboxColor  = color.RGBA{255, 60, 60, 120}
	hurtboxColor = color.RGBA{60, 160, 255, 90}
	slotColors   = [cfg.SlotCount]color.RGBA{
		{240, 240, 240, 255},
		{255, 170, 60, 255},
	}
)

// MatchScene is the windowed front end of a match: it feeds keyboard state
// into the simulation, ticks it once per frame and draws the last snapshot.
type MatchScene struct {
	match    *sim.Match
	logger   *zap.Logger
	bindings [cfg.SlotCount]Bindings
	held     [cfg.SlotCount][cfg.ActionCount]bool
	vsAI     bool
	snap     sim.Snapshot

	weapons      *cfg.WeaponWatcher
	pendingTable cfg.WeaponTable

	showHitboxes bool
}

type MatchSceneOptions struct {
	VsAI         bool
	Weapons      *cfg.WeaponWatcher // optional
	ShowHitboxes bool
	Logger       *zap.Logger
}

// NewMatchScene wraps a started match.
func NewMatchScene(m *sim.Match, opts MatchSceneOptions) *MatchScene {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatchScene{
		match:        m,
		logger:       logger,
		bindings:     DefaultBindings,
		vsAI:         opts.VsAI,
		weapons:      opts.Weapons,
		showHitboxes: opts.ShowHitboxes || cfg.Debug.ShowHitboxes,
		snap:         m.Snapshot(),
	}
}

func (ms *MatchScene) Update() {
	ms.pollWeapons()
	ms.pollKeys(ebiten.IsKeyPressed)

	if inpututil.IsKeyJustPressed(keyHitboxes) {
		ms.showHitboxes = !ms.showHitboxes
	}
	if inpututil.IsKeyJustPressed(keyRestart) && ms.snap.Phase == cfg.PhaseEnded {
		ms.restart(false)
	}
	if inpututil.IsKeyJustPressed(keyRematch) {
		ms.restart(true)
	}

	ms.match.Tick()
	ms.snap = ms.match.Snapshot()
}

// pollKeys forwards key state changes to the simulation.
func (ms *MatchScene) pollKeys(isDown func(ebiten.Key) bool) {
	for slot := cfg.SlotOne; slot < cfg.SlotCount; slot++ {
		if ms.vsAI && slot == cfg.SlotTwo {
			continue
		}
		now := ms.bindings[slot].held(isDown)
		for action := cfg.ActionNone + 1; action < cfg.ActionCount; action++ {
			if now[action] != ms.held[slot][action] {
				ms.enqueue(slot, action, now[action])
			}
		}
		ms.held[slot] = now
	}
}

// restart rebuilds the match, right away for a rematch or on the next tick
// through the restart trigger. Keys still down are sent again to the new
// fighters on the next poll.
func (ms *MatchScene) restart(rematch bool) {
	ms.applyPendingWeapons()
	if rematch {
		if err := ms.match.RestartMatch(); err != nil {
			ms.logger.Error("rematch failed", zap.Error(err))
		}
	} else {
		ms.enqueue(cfg.SlotOne, cfg.ActionRestart, true)
	}
	ms.held = [cfg.SlotCount][cfg.ActionCount]bool{}
}

func (ms *MatchScene) enqueue(slot cfg.Slot, action cfg.ActionID, pressed bool) {
	if err := ms.match.EnqueueHumanInput(slot, action, pressed); err != nil {
		ms.logger.Debug("input dropped", zap.Stringer("slot", slot), zap.Stringer("action", action), zap.Error(err))
	}
}

func (ms *MatchScene) pollWeapons() {
	if ms.weapons == nil {
		return
	}
	select {
	case table := <-ms.weapons.Tables:
		ms.pendingTable = table
		ms.logger.Info("weapon table reloaded, applies from the next match")
	case err := <-ms.weapons.Errors:
		ms.logger.Warn("weapon table not reloaded", zap.Error(err))
	default:
	}
}

// applyPendingWeapons swaps the table in between matches only.
func (ms *MatchScene) applyPendingWeapons() {
	if ms.pendingTable == nil {
		return
	}
	cfg.Weapons = ms.pendingTable
	ms.pendingTable = nil
}

func (ms *MatchScene) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	width := float32(screen.Bounds().Dx())
	ground := float32(cfg.Arena.GroundY())
	vector.StrokeLine(screen, 0, ground, width, ground, 2, groundColor, false)

	for _, f := range ms.snap.Fighters {
		drawFighter(screen, f)
		if ms.showHitboxes {
			drawBoxes(screen, f)
		}
	}
	drawDamageNumbers(screen, ms.snap.DamageNumbers)
	drawHUD(screen, ms.snap)
}

// drawFighter draws a stick figure inside the body box.
func drawFighter(screen *ebiten.Image, f sim.FighterSnapshot) {
	c := fighterColor(f)
	b := f.Body
	if f.State == cfg.StateCrouching {
		h := b.H * cfg.Fighter.CrouchHurtboxRatio
		b = gamemath.Rect{X: b.X, Y: b.Bottom() - h, W: b.W, H: h}
	}

	cx := float32(b.CenterX())
	top := float32(b.Y)
	r := float32(b.H * 0.12)
	neck := top + 2*r
	hip := top + float32(b.H*0.6)
	feet := float32(b.Bottom())
	half := float32(b.W / 2)
	const stroke = 3

	vector.StrokeCircle(screen, cx, top+r, r, stroke, c, true)
	vector.StrokeLine(screen, cx, neck, cx, hip, stroke, c, true)
	vector.StrokeLine(screen, cx, hip, cx-half*0.7, feet, stroke, c, true)
	vector.StrokeLine(screen, cx, hip, cx+half*0.7, feet, stroke, c, true)

	// the leading arm reaches out while attacking
	shoulder := neck + r
	reach := half * 0.8
	if f.HitboxActive {
		reach = float32(math.Abs(f.Hitbox.CenterX() - b.CenterX()))
	}
	dir := float32(f.Facing)
	vector.StrokeLine(screen, cx, shoulder, cx+dir*reach, shoulder+r, stroke, c, true)
	vector.StrokeLine(screen, cx, shoulder, cx-dir*half*0.6, shoulder+2*r, stroke, c, true)
}

func fighterColor(f sim.FighterSnapshot) color.RGBA {
	c := slotColors[f.Slot]
	switch {
	case !f.Alive():
		c = fade(c, 0.35)
	case f.Flash > 0:
		c = color.RGBA{
			R: uint8(255 * f.FlashR),
			G: uint8(255 * f.FlashG),
			B: uint8(255 * f.FlashB),
			A: 255,
		}
	case f.State == cfg.StateDodging:
		c = fade(c, 0.5)
	}
	return c
}

// fade scales a premultiplied color by alpha.
func fade(c color.RGBA, alpha float32) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

func drawBoxes(screen *ebiten.Image, f sim.FighterSnapshot) {
	if f.Alive() {
		h := f.Hurtbox
		vector.StrokeRect(screen, float32(h.X), float32(h.Y), float32(h.W), float32(h.H), 1, hurtboxColor, false)
	}
	if f.HitboxActive {
		h := f.Hitbox
		vector.FillRect(screen, float32(h.X), float32(h.Y), float32(h.W), float32(h.H), hitboxColor, false)
	}
}

func drawDamageNumbers(screen *ebiten.Image, numbers []sim.DamageNumberSnapshot) {
	if len(numbers) == 0 {
		return
	}
	face := fonts.Damage.Get()
	for _, dn := range numbers {
		c := fade(cfg.Effects.DamageNumberColor, dn.Alpha)
		drawCentered(screen, strconv.Itoa(dn.Amount), face, int(dn.X), int(dn.Y), c)
	}
}
