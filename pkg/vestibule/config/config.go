// Package config loads the application's TOML configuration file.
//
// Every field has a working default, so the application runs without a
// config file at all; the file overrides only what it sets.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the top-level configuration for the login front-end.
type Config struct {
	Locale      string      `toml:"locale"`
	Window      Window      `toml:"window"`
	Theme       Theme       `toml:"theme"`
	Log         Log         `toml:"log"`
	Credentials Credentials `toml:"credentials"`
	Power       Power       `toml:"power"`
}

// Window configures the SDL window.
type Window struct {
	Title      string `toml:"title"`
	Width      int32  `toml:"width"`
	Height     int32  `toml:"height"`
	Fullscreen bool   `toml:"fullscreen"`
	Background string `toml:"background"` // path to a background image, empty for flat color
}

// Theme configures colors and fonts. Accent is a 24-bit RGB value; TOML hex
// integers work here (accent = 0x008080).
type Theme struct {
	Accent   uint32 `toml:"accent"`
	FontPath string `toml:"font_path"`
}

// Log configures the structured logger.
type Log struct {
	Path  string `toml:"path"`  // full path to the log file, empty for stdout only
	Level string `toml:"level"` // debug, info, warn, error
}

// Credentials holds the single operator account. PasswordHash is a bcrypt
// hash and takes precedence over Password; a hashed password cannot be
// revealed by the forgot-password page.
type Credentials struct {
	Username     string `toml:"username"`
	Password     string `toml:"password"`
	PasswordHash string `toml:"password_hash"`
}

// Power configures the hardware power button watcher on devices that expose
// one as an input device. Leave DevicePath empty to disable it.
type Power struct {
	DevicePath      string `toml:"device_path"`
	SuspendScript   string `toml:"suspend_script"`
	ShutdownCommand string `toml:"shutdown_command"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Locale: "en",
		Window: Window{
			Title:  "vestibule",
			Width:  1024,
			Height: 768,
		},
		Log: Log{
			Level: "info",
		},
		Credentials: Credentials{
			Username: "admin",
			Password: "1234",
		},
		Power: Power{
			ShutdownCommand: "/sbin/poweroff",
		},
	}
}

// Load reads the TOML file at path over the defaults. A missing file is not
// an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config: unknown key %q in %s", undecoded[0], path)
	}

	return cfg, nil
}
