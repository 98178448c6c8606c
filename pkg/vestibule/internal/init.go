package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/kevinmliu/vestibule/pkg/vestibule/constants"
)

var window *Window

func Init(title string, width, height int32, showBackground bool, winOpts WindowOptions, pbc PowerButtonConfig) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("ttf init: %w", err)
	}

	img.Init(img.INIT_PNG | img.INIT_JPG)

	InitInputProcessor()

	// Apply default window options if none specified
	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Resizable: true}
		} else {
			winOpts = WindowOptions{Borderless: true, FullscreenDesktop: true}
		}
	}

	win, err := initWindow(title, width, height, showBackground, winOpts)
	if err != nil {
		return err
	}
	window = win

	if err := initFonts(DefaultFontSizes); err != nil {
		return err
	}

	if !constants.IsDevMode() && pbc.DevicePath != "" {
		window.initPowerButtonHandling(pbc)
	}

	return nil
}

func SDLCleanup() {
	destroyIconCache()
	window.closeWindow()
	CloseAllControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
