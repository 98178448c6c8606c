package vestibule

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/kevinmliu/vestibule/pkg/vestibule/constants"
	"github.com/kevinmliu/vestibule/pkg/vestibule/internal"
)

// MessageKind selects the visual treatment of a modal message.
type MessageKind int

const (
	// MessageInfo is an informational message (accent border).
	MessageInfo MessageKind = iota
	// MessageWarning is a warning message (warning border and title).
	MessageWarning
)

// MessageSettings configures the modal message component.
type MessageSettings struct {
	Kind MessageKind
	// DismissButton closes the message (default: VirtualButtonA)
	DismissButton constants.VirtualButton
	// DismissLabel is the localized footer text next to the dismiss pill
	DismissLabel string
}

type messageController struct {
	title         string
	body          string
	kind          MessageKind
	dismissButton constants.VirtualButton
	dismissLabel  string
	inputDelay    time.Duration
	lastInputTime time.Time
	dismissed     bool
}

// Message displays a modal message with a title and body and blocks until
// the user dismisses it. A window close also dismisses it and leaves the
// global quit flag set for the page loop to observe.
func Message(title, body string, settings MessageSettings) {
	window := internal.GetWindow()
	renderer := window.Renderer

	controller := &messageController{
		title:         title,
		body:          body,
		kind:          settings.Kind,
		dismissButton: settings.DismissButton,
		dismissLabel:  settings.DismissLabel,
		inputDelay:    constants.DefaultInputDelay,
		lastInputTime: time.Now(),
	}

	if controller.dismissButton == constants.VirtualButtonUnassigned {
		controller.dismissButton = constants.VirtualButtonA
	}

	for !controller.dismissed {
		controller.handleEvents()

		if internal.GetInputProcessor().QuitRequested() {
			return
		}

		controller.render(renderer, window)
		window.Present()
	}
}

func (c *messageController) handleEvents() {
	processor := internal.GetInputProcessor()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch event.(type) {
		case *sdl.QuitEvent:
			processor.RequestQuit()
			c.dismissed = true
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
			case c.dismissButton, constants.VirtualButtonB, constants.VirtualButtonStart:
				c.dismissed = true
				return
			}
		}
	}
}

func (c *messageController) render(renderer *sdl.Renderer, window *internal.Window) {
	theme := internal.GetTheme()

	renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, 255)
	renderer.Clear()

	if window.DisplayBackground {
		window.RenderBackground()
	}

	windowWidth := window.GetWidth()
	windowHeight := window.GetHeight()

	titleFont := internal.Fonts.MediumFont
	bodyFont := internal.Fonts.SmallFont

	maxBodyWidth := int32(float64(windowWidth) * 0.6)
	if maxBodyWidth > 700 {
		maxBodyWidth = 700
	}

	titleColor := theme.TextColor
	borderColor := theme.AccentColor
	if c.kind == MessageWarning {
		titleColor = theme.WarningColor
		borderColor = theme.WarningColor
	}

	pad := internal.UniformPadding(36)
	titleHeight := int32(titleFont.Height())
	spacing := int32(24)
	bodyHeight := internal.MeasureMultilineText(bodyFont, c.body, maxBodyWidth)

	panelWidth := maxBodyWidth + pad.Left + pad.Right
	panelHeight := pad.Top + titleHeight + spacing + bodyHeight + pad.Bottom
	panel := sdl.Rect{
		X: (windowWidth - panelWidth) / 2,
		Y: (windowHeight - panelHeight) / 2,
		W: panelWidth,
		H: panelHeight,
	}

	renderer.SetDrawColor(theme.FieldColor.R, theme.FieldColor.G, theme.FieldColor.B, 255)
	renderer.FillRect(&panel)
	renderer.SetDrawColor(borderColor.R, borderColor.G, borderColor.B, 255)
	renderer.DrawRect(&panel)

	centerX := windowWidth / 2

	internal.RenderText(
		renderer,
		titleFont,
		c.title,
		centerX-internal.TextWidth(titleFont, c.title)/2,
		panel.Y+pad.Top,
		titleColor,
	)

	internal.RenderMultilineText(
		renderer,
		c.body,
		bodyFont,
		maxBodyWidth,
		centerX,
		panel.Y+pad.Top+titleHeight+spacing,
		theme.TextColor,
		constants.TextAlignCenter,
	)

	renderFooter(
		renderer,
		internal.Fonts.SmallFont,
		[]FooterHelpItem{{ButtonName: c.dismissButton.GetName(), HelpText: c.dismissLabel}},
		20,
	)
}
