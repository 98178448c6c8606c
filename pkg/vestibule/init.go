// Package vestibule provides the SDL front-end of the login application: a
// stacked set of full-screen pages (login, help, success, forgot-password)
// plus the modal message and text field components they are built from.
//
// The package handles SDL initialization, input processing, and theming.
// Navigation semantics live in the nav package; vestibule only renders pages
// and reports user actions.
package vestibule

import (
	"log/slog"

	"github.com/kevinmliu/vestibule/pkg/vestibule/internal"
)

// WindowOptions selects SDL window flags (borderless, fullscreen, etc.).
type WindowOptions = internal.WindowOptions

// Options configures the vestibule UI initialization.
type Options struct {
	WindowTitle          string        // Window title displayed in windowed mode
	WindowWidth          int32         // Window width; 0 uses the current display mode
	WindowHeight         int32         // Window height; 0 uses the current display mode
	ShowBackground       bool          // Whether to render the theme background image
	BackgroundImagePath  string        // Path to the background image, empty for flat color
	WindowOptions        WindowOptions // SDL window flags
	PrimaryThemeColorHex uint32        // Custom accent color, 0 keeps the stock teal
	FontPath             string        // Path to the UI font; empty tries common system fonts
	LogPath              string        // Full path for the log file including filename
	PowerDevicePath      string        // evdev node for a hardware power button, empty disables
	SuspendScript        string        // Script run on a short power button press
	ShutdownCommand      string        // Command run on a long power button press
}

// Init initializes the SDL subsystems, theming, and input handling.
// Must be called before any other vestibule functions. A failure is
// reported as an InfrastructureError; do not call Close after one.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	theme := internal.DefaultTheme(options.FontPath)
	theme.BackgroundImagePath = options.BackgroundImagePath
	if options.PrimaryThemeColorHex != 0 {
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
	}
	internal.SetTheme(theme)

	pbc := internal.PowerButtonConfig{
		DevicePath:      options.PowerDevicePath,
		SuspendScript:   options.SuspendScript,
		ShutdownCommand: options.ShutdownCommand,
	}

	if err := internal.Init(
		options.WindowTitle,
		options.WindowWidth,
		options.WindowHeight,
		options.ShowBackground,
		options.WindowOptions,
		pbc,
	); err != nil {
		return NewInfrastructureError("init", err)
	}

	return nil
}

// Close releases all SDL resources and shuts down the UI layer.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string
// (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
