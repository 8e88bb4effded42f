package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader handles loading and caching of sound cue files
type AudioLoader struct {
	sfxCache map[string][]byte // decoded PCM per path
	context  *audio.Context
	fsys     fs.FS
}

// NewAudioLoader reads sound files from fsys, usually os.DirFS of the
// configured audio directory.
func NewAudioLoader(ctx *audio.Context, fsys fs.FS) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
		fsys:     fsys,
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
// Call this at startup to avoid decode lag on first play.
func (l *AudioLoader) PreloadSFX(p string) error {
	if _, ok := l.sfxCache[p]; ok {
		return nil
	}
	decoded, err := readSFX(l.fsys, l.context.SampleRate(), p)
	if err != nil {
		return err
	}
	l.sfxCache[p] = decoded
	return nil
}

// LoadSFX returns a new player for a sound effect, decoding it on first use.
func (l *AudioLoader) LoadSFX(p string) (*audio.Player, error) {
	if err := l.PreloadSFX(p); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[p]))
}

func readSFX(fsys fs.FS, sampleRate int, p string) ([]byte, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", p, err)
	}
	return decodeSFX(sampleRate, p, data)
}

// decodeSFX turns a wav or ogg file into raw PCM at the context's rate.
func decodeSFX(sampleRate int, p string, data []byte) ([]byte, error) {
	var stream io.Reader
	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", p, err)
		}
		stream = s
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", p, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", p, err)
	}
	return decoded, nil
}
