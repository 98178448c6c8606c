package vestibule

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/kevinmliu/vestibule/pkg/vestibule/constants"
	"github.com/kevinmliu/vestibule/pkg/vestibule/internal"
)

// StaticPageText carries the localized strings for a static text page
// (help, success).
type StaticPageText struct {
	Title      string
	Body       string
	FooterBack string
	Icon       string // embedded icon name, empty for none
}

type staticPageController struct {
	text            StaticPageText
	footerHelpItems []FooterHelpItem
	inputDelay      time.Duration
	lastInputTime   time.Time
	action          BackAction
	done            bool
}

// HelpPage displays the static help text and blocks until the user goes
// back. Returns ErrCancelled when the window is closed.
func HelpPage(text StaticPageText) (*BackResult, error) {
	return staticPage(text)
}

func staticPage(text StaticPageText) (*BackResult, error) {
	window := internal.GetWindow()
	renderer := window.Renderer

	controller := &staticPageController{
		text: text,
		footerHelpItems: []FooterHelpItem{
			{ButtonName: "Esc", HelpText: text.FooterBack},
		},
		inputDelay:    constants.DefaultInputDelay,
		lastInputTime: time.Now(),
	}

	for !controller.done {
		controller.handleEvents()

		if internal.GetInputProcessor().QuitRequested() {
			return nil, ErrCancelled
		}

		controller.render(renderer, window)
		window.Present()
	}

	return &BackResult{Action: controller.action}, nil
}

func (c *staticPageController) handleEvents() {
	processor := internal.GetInputProcessor()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch event.(type) {
		case *sdl.QuitEvent:
			processor.RequestQuit()
			return

		case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent:
			inputEvent := processor.ProcessSDLEvent(event.(sdl.Event))
			if inputEvent == nil || !inputEvent.Pressed {
				continue
			}

			if time.Since(c.lastInputTime) < c.inputDelay {
				continue
			}
			c.lastInputTime = time.Now()

			switch inputEvent.Button {
			case constants.VirtualButtonB, constants.VirtualButtonA, constants.VirtualButtonStart:
				c.action = BackActionBack
				c.done = true
				return
			}
		}
	}
}

func (c *staticPageController) render(renderer *sdl.Renderer, window *internal.Window) {
	theme := internal.GetTheme()

	renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, 255)
	renderer.Clear()

	if window.DisplayBackground {
		window.RenderBackground()
	}

	windowWidth := window.GetWidth()
	centerX := windowWidth / 2

	titleFont := internal.Fonts.LargeFont
	bodyFont := internal.Fonts.SmallFont

	maxBodyWidth := int32(float64(windowWidth) * 0.7)
	if maxBodyWidth > 800 {
		maxBodyWidth = 800
	}

	y := window.GetHeight() / 6

	if c.text.Icon != "" {
		const iconSize = int32(64)
		if icon, err := internal.IconTexture(renderer, c.text.Icon, iconSize); err == nil {
			renderer.Copy(icon, nil, &sdl.Rect{X: centerX - iconSize/2, Y: y, W: iconSize, H: iconSize})
		}
		y += iconSize + 20
	}

	internal.RenderText(
		renderer,
		titleFont,
		c.text.Title,
		centerX-internal.TextWidth(titleFont, c.text.Title)/2,
		y,
		theme.TextColor,
	)
	y += int32(titleFont.Height()) + constants.DefaultTitleSpacing + 36

	internal.RenderMultilineText(
		renderer,
		c.text.Body,
		bodyFont,
		maxBodyWidth,
		centerX,
		y,
		theme.TextColor,
		constants.TextAlignCenter,
	)

	renderFooter(renderer, internal.Fonts.SmallFont, c.footerHelpItems, 20)
}
