package scenes

import (
	"io/fs"

	"github.com/automoto/stickbrawl/assets"
	cfg "github.com/automoto/stickbrawl/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"
)

// SoundPlayer turns simulation cues into sound effects. Missing or broken
// files are logged once and then skipped.
type SoundPlayer struct {
	loader *assets.AudioLoader
	volume float64
	logger *zap.Logger
	broken map[cfg.CueID]bool
}

func NewSoundPlayer(ctx *audio.Context, fsys fs.FS, volume float64, logger *zap.Logger) *SoundPlayer {
	return &SoundPlayer{
		loader: assets.NewAudioLoader(ctx, fsys),
		volume: volume,
		logger: logger,
		broken: make(map[cfg.CueID]bool),
	}
}

// Preload decodes every cue up front to avoid lag on first play.
func (s *SoundPlayer) Preload() {
	for cue, path := range cfg.Sound.SFXPaths {
		if err := s.loader.PreloadSFX(path); err != nil {
			s.markBroken(cue, err)
		}
	}
}

// Play starts the sound for a cue. It never blocks on playback.
func (s *SoundPlayer) Play(cue cfg.CueID) {
	if s.volume <= 0 || s.broken[cue] {
		return
	}
	path, ok := cfg.Sound.SFXPaths[cue]
	if !ok {
		return
	}

	player, err := s.loader.LoadSFX(path)
	if err != nil {
		s.markBroken(cue, err)
		return
	}

	volume := s.volume
	if mult, ok := cfg.Sound.VolumeMultipliers[cue]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
}

func (s *SoundPlayer) markBroken(cue cfg.CueID, err error) {
	if s.broken[cue] {
		return
	}
	s.broken[cue] = true
	s.logger.Warn("sound cue unavailable", zap.Stringer("cue", cue), zap.Error(err))
}
