package vestibule

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/kevinmliu/vestibule/pkg/vestibule/constants"
	"github.com/kevinmliu/vestibule/pkg/vestibule/internal"
)

// LoginPageText carries the localized strings for the login page.
type LoginPageText struct {
	Title         string
	UsernameLabel string
	PasswordLabel string
	FooterLogin   string
	FooterHelp    string
	FooterForgot  string
}

type loginController struct {
	text             LoginPageText
	fields           [2]*textField // username, password
	focus            int
	footerHelpItems  []FooterHelpItem
	inputDelay       time.Duration
	lastInputTime    time.Time
	action           LoginAction
	done             bool
	directionalInput internal.DirectionalInput
}

// LoginPage displays the credential form and blocks until the user submits
// it or navigates away. The entered credentials are read only at the moment
// of submission. Returns ErrCancelled when the window is closed or a power
// press requests shutdown.
func LoginPage(text LoginPageText) (*LoginResult, error) {
	window := internal.GetWindow()
	renderer := window.Renderer

	controller := &loginController{
		text: text,
		fields: [2]*textField{
			newTextField(text.UsernameLabel, false),
			newTextField(text.PasswordLabel, true),
		},
		footerHelpItems: []FooterHelpItem{
			{ButtonName: "Enter", HelpText: text.FooterLogin},
			{ButtonName: "F1", HelpText: text.FooterHelp},
			{ButtonName: "F2", HelpText: text.FooterForgot},
		},
		inputDelay:       constants.DefaultInputDelay,
		lastInputTime:    time.Now(),
		directionalInput: internal.NewDirectionalInput(),
	}

	sdl.StartTextInput()
	defer sdl.StopTextInput()

	for !controller.done {
		controller.handleEvents()

		if internal.GetInputProcessor().QuitRequested() {
			return nil, ErrCancelled
		}

		if dir := controller.directionalInput.Update(); dir != internal.DirectionNone {
			controller.moveFocus(dir)
		}

		controller.render(renderer, window)
		window.Present()
	}

	return &LoginResult{
		Action:   controller.action,
		Username: controller.fields[0].Value,
		Password: controller.fields[1].Value,
	}, nil
}

func (c *loginController) focusedField() *textField {
	return c.fields[c.focus]
}

func (c *loginController) moveFocus(dir internal.Direction) {
	switch dir {
	case internal.DirectionUp:
		c.focus = (c.focus + len(c.fields) - 1) % len(c.fields)
	case internal.DirectionDown:
		c.focus = (c.focus + 1) % len(c.fields)
	}
}

func (c *loginController) handleEvents() {
	processor := internal.GetInputProcessor()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			processor.RequestQuit()
			return

		case *sdl.TextInputEvent:
			c.focusedField().handleTextInput(e.GetText())

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && c.focusedField().handleKey(e.Keysym.Sym) {
				continue
			}
			c.handleButton(processor.ProcessSDLEvent(event))

		case *sdl.ControllerButtonEvent:
			c.handleButton(processor.ProcessSDLEvent(event))
		}
	}
}

func (c *loginController) handleButton(inputEvent *internal.InputEvent) {
	if inputEvent == nil {
		return
	}

	if c.directionalInput.SetHeld(inputEvent.Button, inputEvent.Pressed) {
		if inputEvent.Pressed {
			switch inputEvent.Button {
			case constants.VirtualButtonUp:
				c.moveFocus(internal.DirectionUp)
			case constants.VirtualButtonDown:
				c.moveFocus(internal.DirectionDown)
			}
		}
		return
	}

	if !inputEvent.Pressed {
		return
	}
	if time.Since(c.lastInputTime) < c.inputDelay {
		return
	}
	c.lastInputTime = time.Now()

	switch inputEvent.Button {
	case constants.VirtualButtonA, constants.VirtualButtonStart:
		c.action = LoginActionSubmit
		c.done = true
	case constants.VirtualButtonX:
		c.action = LoginActionHelp
		c.done = true
	case constants.VirtualButtonY:
		c.action = LoginActionForgot
		c.done = true
	}
}

func (c *loginController) render(renderer *sdl.Renderer, window *internal.Window) {
	theme := internal.GetTheme()

	renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, 255)
	renderer.Clear()

	if window.DisplayBackground {
		window.RenderBackground()
	}

	windowWidth := window.GetWidth()
	windowHeight := window.GetHeight()
	centerX := windowWidth / 2

	titleFont := internal.Fonts.LargeFont
	fieldFont := internal.Fonts.MediumFont

	const iconSize = int32(64)
	fieldWidth := int32(float64(windowWidth) * 0.4)
	if fieldWidth > 420 {
		fieldWidth = 420
	}

	y := windowHeight / 6

	if icon, err := internal.IconTexture(renderer, "lock", iconSize); err == nil {
		renderer.Copy(icon, nil, &sdl.Rect{X: centerX - iconSize/2, Y: y, W: iconSize, H: iconSize})
	}
	y += iconSize + 20

	internal.RenderText(
		renderer,
		titleFont,
		c.text.Title,
		centerX-internal.TextWidth(titleFont, c.text.Title)/2,
		y,
		theme.TextColor,
	)
	y += int32(titleFont.Height()) + constants.DefaultTitleSpacing + 40

	for i, field := range c.fields {
		used := field.render(renderer, fieldFont, centerX-fieldWidth/2, y, fieldWidth, i == c.focus)
		y += used + 28
	}

	renderFooter(renderer, internal.Fonts.SmallFont, c.footerHelpItems, 20)
}
