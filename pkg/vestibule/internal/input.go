package internal

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"

	"github.com/kevinmliu/vestibule/pkg/vestibule/constants"
)

// InputEvent is a device-independent input event produced from raw SDL
// keyboard or game controller events.
type InputEvent struct {
	Button  constants.VirtualButton
	Pressed bool
}

// InputProcessor maps SDL events to virtual buttons and tracks the global
// quit request. The quit flag is atomic because a power button watcher may
// set it from outside the event loop goroutine.
type InputProcessor struct {
	quitRequested *atomic.Bool
	controllers   []*sdl.GameController
}

var inputProcessor *InputProcessor

func InitInputProcessor() {
	inputProcessor = &InputProcessor{
		quitRequested: atomic.NewBool(false),
	}
	inputProcessor.openControllers()
}

func GetInputProcessor() *InputProcessor {
	return inputProcessor
}

func (p *InputProcessor) openControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		if controller := sdl.GameControllerOpen(i); controller != nil {
			GetInternalLogger().Debug("Opened game controller", "index", i, "name", controller.Name())
			p.controllers = append(p.controllers, controller)
		}
	}
}

func CloseAllControllers() {
	if inputProcessor == nil {
		return
	}
	for _, controller := range inputProcessor.controllers {
		controller.Close()
	}
	inputProcessor.controllers = nil
}

// RequestQuit marks the application for shutdown. Safe from any goroutine.
func (p *InputProcessor) RequestQuit() {
	p.quitRequested.Store(true)
}

// QuitRequested reports whether a quit was requested (window close or power
// button).
func (p *InputProcessor) QuitRequested() bool {
	return p.quitRequested.Load()
}

// ProcessSDLEvent converts an SDL event to an InputEvent. Returns nil for
// events with no virtual button mapping. Key repeats are dropped; components
// implement their own repeat timing.
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *InputEvent {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		p.RequestQuit()
		return nil

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		button := keyToButton(e.Keysym.Sym)
		if button == constants.VirtualButtonPower {
			// Front panels that deliver power as a key event behave like the
			// evdev watcher: the press requests shutdown of the page loop.
			if e.Type == sdl.KEYDOWN {
				p.RequestQuit()
			}
			return nil
		}
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return &InputEvent{Button: button, Pressed: e.Type == sdl.KEYDOWN}

	case *sdl.ControllerButtonEvent:
		button := controllerToButton(sdl.GameControllerButton(e.Button))
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return &InputEvent{Button: button, Pressed: e.Type == sdl.CONTROLLERBUTTONDOWN}
	}

	return nil
}

func keyToButton(sym sdl.Keycode) constants.VirtualButton {
	switch sym {
	case sdl.K_UP:
		return constants.VirtualButtonUp
	case sdl.K_DOWN:
		return constants.VirtualButtonDown
	case sdl.K_LEFT:
		return constants.VirtualButtonLeft
	case sdl.K_RIGHT:
		return constants.VirtualButtonRight
	case sdl.K_RETURN, sdl.K_KP_ENTER:
		return constants.VirtualButtonA
	case sdl.K_ESCAPE:
		return constants.VirtualButtonB
	case sdl.K_F1:
		return constants.VirtualButtonX
	case sdl.K_F2:
		return constants.VirtualButtonY
	case sdl.K_TAB:
		return constants.VirtualButtonDown
	case sdl.K_POWER:
		return constants.VirtualButtonPower
	default:
		return constants.VirtualButtonUnassigned
	}
}

func controllerToButton(button sdl.GameControllerButton) constants.VirtualButton {
	switch button {
	case sdl.CONTROLLER_BUTTON_A:
		return constants.VirtualButtonA
	case sdl.CONTROLLER_BUTTON_B:
		return constants.VirtualButtonB
	case sdl.CONTROLLER_BUTTON_X:
		return constants.VirtualButtonX
	case sdl.CONTROLLER_BUTTON_Y:
		return constants.VirtualButtonY
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return constants.VirtualButtonUp
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return constants.VirtualButtonDown
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		return constants.VirtualButtonLeft
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		return constants.VirtualButtonRight
	case sdl.CONTROLLER_BUTTON_START:
		return constants.VirtualButtonStart
	case sdl.CONTROLLER_BUTTON_BACK:
		return constants.VirtualButtonSelect
	case sdl.CONTROLLER_BUTTON_GUIDE:
		return constants.VirtualButtonMenu
	default:
		return constants.VirtualButtonUnassigned
	}
}
