package vestibule

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/kevinmliu/vestibule/pkg/vestibule/internal"
)

// FooterHelpItem pairs a button name with the action it triggers, rendered
// as a pill row along the bottom edge of a page.
type FooterHelpItem struct {
	ButtonName string // Short button label shown inside the pill ("A", "Esc")
	HelpText   string // Action description shown next to the pill
}

func renderFooter(renderer *sdl.Renderer, font *ttf.Font, items []FooterHelpItem, bottomMargin int32) {
	if len(items) == 0 {
		return
	}

	window := internal.GetWindow()
	theme := internal.GetTheme()

	pad := internal.UniformPadding(8)
	itemGap := int32(28)
	labelGap := int32(10)

	_, fontHeight, err := font.SizeUTF8("Aj")
	if err != nil {
		fontHeight = 20
	}
	pillHeight := int32(fontHeight) + pad.Top + pad.Bottom

	// Measure the full row so it can be centered.
	totalWidth := int32(0)
	for i, item := range items {
		totalWidth += internal.TextWidth(font, item.ButtonName) + pad.Left + pad.Right
		totalWidth += labelGap + internal.TextWidth(font, item.HelpText)
		if i < len(items)-1 {
			totalWidth += itemGap
		}
	}

	x := (window.GetWidth() - totalWidth) / 2
	y := window.GetHeight() - bottomMargin - pillHeight

	for _, item := range items {
		pillWidth := internal.TextWidth(font, item.ButtonName) + pad.Left + pad.Right

		renderer.SetDrawColor(theme.AccentColor.R, theme.AccentColor.G, theme.AccentColor.B, theme.AccentColor.A)
		renderer.FillRect(&sdl.Rect{X: x, Y: y, W: pillWidth, H: pillHeight})
		internal.RenderText(renderer, font, item.ButtonName, x+pad.Left, y+pad.Top, theme.ButtonLabelColor)
		x += pillWidth + labelGap

		internal.RenderText(renderer, font, item.HelpText, x, y+pad.Top, theme.HintColor)
		x += internal.TextWidth(font, item.HelpText) + itemGap
	}
}
