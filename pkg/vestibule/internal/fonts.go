package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSet holds the loaded UI fonts at their standard sizes.
type FontSet struct {
	SmallFont  *ttf.Font
	MediumFont *ttf.Font
	LargeFont  *ttf.Font
}

// FontSizes configures the point sizes for the font set.
type FontSizes struct {
	Small  int
	Medium int
	Large  int
}

var DefaultFontSizes = FontSizes{Small: 18, Medium: 26, Large: 36}

// Fonts is the active font set, populated during Init.
var Fonts FontSet

// fallbackFontPaths are tried in order when the theme does not name a font
// or the named font cannot be opened.
var fallbackFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/truetype/freefont/FreeSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
}

func resolveFontPath() string {
	candidates := fallbackFontPaths
	if themed := GetTheme().FontPath; themed != "" {
		candidates = append([]string{themed}, candidates...)
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func initFonts(sizes FontSizes) error {
	path := resolveFontPath()
	if path == "" {
		return errors.New("no usable font found")
	}

	open := func(size int) (*ttf.Font, error) {
		font, err := ttf.OpenFont(path, size)
		if err != nil {
			return nil, fmt.Errorf("open font %s at size %d: %w", path, size, err)
		}
		return font, nil
	}

	small, err := open(sizes.Small)
	if err != nil {
		return err
	}
	medium, err := open(sizes.Medium)
	if err != nil {
		return err
	}
	large, err := open(sizes.Large)
	if err != nil {
		return err
	}

	Fonts = FontSet{SmallFont: small, MediumFont: medium, LargeFont: large}

	GetInternalLogger().Debug("Fonts loaded", "path", path)
	return nil
}

func closeFonts() {
	if Fonts.SmallFont != nil {
		Fonts.SmallFont.Close()
	}
	if Fonts.MediumFont != nil {
		Fonts.MediumFont.Close()
	}
	if Fonts.LargeFont != nil {
		Fonts.LargeFont.Close()
	}
	Fonts = FontSet{}
}
