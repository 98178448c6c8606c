package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kevinmliu/vestibule/pkg/vestibule"
	"github.com/kevinmliu/vestibule/pkg/vestibule/auth"
	"github.com/kevinmliu/vestibule/pkg/vestibule/config"
	"github.com/kevinmliu/vestibule/pkg/vestibule/locale"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "vestibule:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "vestibule.toml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	tr, err := locale.New(cfg.Locale)
	if err != nil {
		return err
	}

	checker, err := auth.FromConfig(cfg.Credentials)
	if err != nil {
		return err
	}

	if err := vestibule.Init(vestibule.Options{
		WindowTitle:          cfg.Window.Title,
		WindowWidth:          cfg.Window.Width,
		WindowHeight:         cfg.Window.Height,
		ShowBackground:       cfg.Window.Background != "",
		BackgroundImagePath:  cfg.Window.Background,
		WindowOptions:        vestibule.WindowOptions{FullscreenDesktop: cfg.Window.Fullscreen},
		PrimaryThemeColorHex: cfg.Theme.Accent,
		FontPath:             cfg.Theme.FontPath,
		LogPath:              cfg.Log.Path,
		PowerDevicePath:      cfg.Power.DevicePath,
		SuspendScript:        cfg.Power.SuspendScript,
		ShutdownCommand:      cfg.Power.ShutdownCommand,
	}); err != nil {
		return err
	}
	defer vestibule.Close()

	vestibule.SetRawLogLevel(cfg.Log.Level)

	log := vestibule.GetLogger()
	log.Info("starting", "config", *configPath, "locale", cfg.Locale)

	app := vestibule.NewApp(tr, checker)
	if err := app.Run(); err != nil {
		log.Error("page loop failed", "error", err)
		return err
	}

	log.Info("exiting")
	return nil
}
