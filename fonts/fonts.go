package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD    FontName = "hud"
	Small  FontName = "small"
	Banner FontName = "banner"
	Damage FontName = "damage"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the Go fonts at the sizes the HUD uses.
func LoadDefaults() error {
	loads := []struct {
		name FontName
		ttf  []byte
		size float64
	}{
		{HUD, goregular.TTF, 16},
		{Small, goregular.TTF, 12},
		{Banner, gobold.TTF, 48},
		{Damage, gobold.TTF, 18},
	}
	for _, l := range loads {
		if err := LoadFontWithSize(l.name, l.ttf, l.size); err != nil {
			return err
		}
	}
	return nil
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parsing font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
