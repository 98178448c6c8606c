package vestibule

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/kevinmliu/vestibule/pkg/vestibule/constants"
	"github.com/kevinmliu/vestibule/pkg/vestibule/internal"
)

// ForgotPageText carries the localized strings for the forgot-password page.
type ForgotPageText struct {
	Title          string
	Prompt         string
	UsernameLabel  string
	FooterRetrieve string
	FooterBack     string
}

type forgotController struct {
	text            ForgotPageText
	field           *textField
	footerHelpItems []FooterHelpItem
	inputDelay      time.Duration
	lastInputTime   time.Time
	action          ForgotAction
	done            bool
}

// ForgotPasswordPage displays the retrieve-password form and blocks until
// the user asks for a lookup or goes back. The claimed username is read
// only at the moment of the lookup. Returns ErrCancelled when the window is
// closed.
func ForgotPasswordPage(text ForgotPageText) (*ForgotResult, error) {
	window := internal.GetWindow()
	renderer := window.Renderer

	controller := &forgotController{
		text:  text,
		field: newTextField(text.UsernameLabel, false),
		footerHelpItems: []FooterHelpItem{
			{ButtonName: "Enter", HelpText: text.FooterRetrieve},
			{ButtonName: "Esc", HelpText: text.FooterBack},
		},
		inputDelay:    constants.DefaultInputDelay,
		lastInputTime: time.Now(),
	}

	sdl.StartTextInput()
	defer sdl.StopTextInput()

	for !controller.done {
		controller.handleEvents()

		if internal.GetInputProcessor().QuitRequested() {
			return nil, ErrCancelled
		}

		controller.render(renderer, window)
		window.Present()
	}

	return &ForgotResult{
		Action:   controller.action,
		Username: controller.field.Value,
	}, nil
}

func (c *forgotController) handleEvents() {
	processor := internal.GetInputProcessor()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			processor.RequestQuit()
			return

		case *sdl.TextInputEvent:
			c.field.handleTextInput(e.GetText())

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && c.field.handleKey(e.Keysym.Sym) {
				continue
			}
			c.handleButton(processor.ProcessSDLEvent(event))

		case *sdl.ControllerButtonEvent:
			c.handleButton(processor.ProcessSDLEvent(event))
		}
	}
}

func (c *forgotController) handleButton(inputEvent *internal.InputEvent) {
	if inputEvent == nil || !inputEvent.Pressed {
		return
	}

	if time.Since(c.lastInputTime) < c.inputDelay {
		return
	}
	c.lastInputTime = time.Now()

	switch inputEvent.Button {
	case constants.VirtualButtonA, constants.VirtualButtonStart:
		c.action = ForgotActionRetrieve
		c.done = true
	case constants.VirtualButtonB:
		c.action = ForgotActionBack
		c.done = true
	}
}

func (c *forgotController) render(renderer *sdl.Renderer, window *internal.Window) {
	theme := internal.GetTheme()

	renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, 255)
	renderer.Clear()

	if window.DisplayBackground {
		window.RenderBackground()
	}

	windowWidth := window.GetWidth()
	centerX := windowWidth / 2

	titleFont := internal.Fonts.LargeFont
	fieldFont := internal.Fonts.MediumFont
	promptFont := internal.Fonts.SmallFont

	fieldWidth := int32(float64(windowWidth) * 0.4)
	if fieldWidth > 420 {
		fieldWidth = 420
	}

	y := window.GetHeight() / 5

	internal.RenderText(
		renderer,
		titleFont,
		c.text.Title,
		centerX-internal.TextWidth(titleFont, c.text.Title)/2,
		y,
		theme.TextColor,
	)
	y += int32(titleFont.Height()) + constants.DefaultTitleSpacing + 24

	internal.RenderText(
		renderer,
		promptFont,
		c.text.Prompt,
		centerX-internal.TextWidth(promptFont, c.text.Prompt)/2,
		y,
		theme.HintColor,
	)
	y += int32(promptFont.Height()) + 40

	c.field.render(renderer, fieldFont, centerX-fieldWidth/2, y, fieldWidth, true)

	renderFooter(renderer, internal.Fonts.SmallFont, c.footerHelpItems, 20)
}
