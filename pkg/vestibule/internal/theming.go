package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the UI layer.
type Theme struct {
	HighlightColor      sdl.Color // Focused field border, footer button background
	AccentColor         sdl.Color // Pill backgrounds, title accents
	WarningColor        sdl.Color // Warning modal border and title
	ButtonLabelColor    sdl.Color // Button label text (inside pills)
	TextColor           sdl.Color // Default text color
	HintColor           sdl.Color // Field labels, footer hints
	FieldColor          sdl.Color // Text field background
	BackgroundColor     sdl.Color // Screen background color
	FontPath            string    // Path to the primary UI font
	BackgroundImagePath string    // Path to the background image
}

var currentTheme Theme

// SetTheme sets the active theme for the UI layer.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// DefaultTheme returns the stock dark theme with the specified font.
func DefaultTheme(fontPath string) Theme {
	return Theme{
		HighlightColor:   HexToColor(0xFFFFFF),
		AccentColor:      HexToColor(0x008080),
		WarningColor:     HexToColor(0xC0392B),
		ButtonLabelColor: HexToColor(0x000000),
		TextColor:        HexToColor(0xFFFFFF),
		HintColor:        HexToColor(0x9A9A9A),
		FieldColor:       HexToColor(0x26263A),
		BackgroundColor:  HexToColor(0x1A1A2E),
		FontPath:         fontPath,
	}
}

// HexToColor converts a 24-bit RGB value to an opaque SDL color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}
