package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/stickbrawl/config"
	"github.com/automoto/stickbrawl/fonts"
	"github.com/automoto/stickbrawl/logging"
	"github.com/automoto/stickbrawl/persistence"
	"github.com/automoto/stickbrawl/scenes"
	"github.com/automoto/stickbrawl/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "Path to a settings file (optional)")
	weapon1 := flag.String("weapon1", "", "Player 1 weapon: katana, axe or scythe (empty = last used)")
	weapon2 := flag.String("weapon2", "", "Player 2 weapon (empty = random for the AI)")
	vsAI := flag.Bool("ai", true, "Player 2 is controlled by the AI")
	headless := flag.Bool("headless", false, "Run without a window until the match ends")
	duration := flag.Duration("duration", 2*time.Minute, "Headless time limit")
	seed := flag.Int64("seed", 0, "Random seed (0 = from settings or clock)")
	hitboxes := flag.Bool("hitboxes", false, "Draw hit and hurt boxes")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	logger, err := logging.New(settings.Logging)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := settings.Apply(); err != nil {
		logger.Fatal("invalid settings", zap.Error(err))
	}

	store, err := persistence.Open(logger)
	if err != nil {
		logger.Warn("loadout will not be remembered", zap.Error(err))
	}
	saved, hasSaved := store.Load()
	lo, err := resolveLoadout(*weapon1, *weapon2, *vsAI, saved, hasSaved)
	if err != nil {
		logger.Fatal("bad loadout", zap.Error(err))
	}

	opts := []sim.Option{sim.WithLogger(logger)}
	if s := pickSeed(*seed, settings.Engine.Seed); s != 0 {
		opts = append(opts, sim.WithSeed(s))
	}

	if *headless {
		runHeadless(logger, opts, lo, *duration)
		return
	}

	actx := audio.NewContext(config.Audio.SampleRate)
	sounds := scenes.NewSoundPlayer(actx, os.DirFS(config.Audio.Dir), config.Audio.DefaultSFXVol, logger)
	sounds.Preload()
	opts = append(opts, sim.WithCueListener(sounds.Play))

	m := sim.New(opts...)
	if err := m.StartMatch(lo.weapon1, lo.weapon2, lo.vsAI); err != nil {
		logger.Fatal("could not start match", zap.Error(err))
	}
	_ = store.Save(lo.weapon1, lo.weapon2, lo.vsAI)

	var watcher *config.WeaponWatcher
	if settings.WeaponsFile != "" {
		watcher, err = config.WatchWeapons(settings.WeaponsFile)
		if err != nil {
			logger.Warn("weapon file will not be reloaded", zap.Error(err))
		} else {
			defer watcher.Close()
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		logger.Fatal("could not load fonts", zap.Error(err))
	}

	scene := scenes.NewMatchScene(m, scenes.MatchSceneOptions{
		VsAI:         lo.vsAI,
		Weapons:      watcher,
		ShowHitboxes: *hitboxes,
		Logger:       logger,
	})

	ebiten.SetWindowSize(config.Arena.Width, config.Arena.Height)
	ebiten.SetWindowTitle("Stick Brawl")
	ebiten.SetTPS(config.Match.TickRate)

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}

func runHeadless(logger *zap.Logger, opts []sim.Option, lo loadout, limit time.Duration) {
	m := sim.New(opts...)
	if err := m.StartMatch(lo.weapon1, lo.weapon2, lo.vsAI); err != nil {
		logger.Fatal("could not start match", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, limit)
	defer cancel()

	loop := sim.NewLoop(m, config.Match.TickRate)
	loop.OnTick = func(snap sim.Snapshot) bool {
		return snap.Phase != config.PhaseEnded
	}
	frames := loop.Run(ctx)

	snap := m.Snapshot()
	logger.Info("headless run finished",
		zap.String("match_id", snap.MatchID.String()),
		zap.Int("frames", frames),
		zap.Stringer("phase", snap.Phase),
		zap.Stringer("winner", snap.Winner),
		zap.Int("hp1", snap.Fighters[config.SlotOne].Health),
		zap.Int("hp2", snap.Fighters[config.SlotTwo].Health),
	)
}

func pickSeed(flagSeed, settingsSeed int64) int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return settingsSeed
}
