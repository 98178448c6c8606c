package vestibule

import (
	"strings"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/kevinmliu/vestibule/pkg/vestibule/internal"
)

// textField is a single-line text entry used by the login and
// forgot-password pages. Text arrives through SDL text input events; editing
// keys are handled separately so the field works with dead keys and IMEs.
type textField struct {
	Label           string
	Masked          bool // render bullets instead of the value (passwords)
	Value           string
	CursorPosition  int
	CursorVisible   bool
	LastCursorBlink time.Time
	CursorBlinkRate time.Duration
}

func newTextField(label string, masked bool) *textField {
	return &textField{
		Label:           label,
		Masked:          masked,
		CursorVisible:   true,
		LastCursorBlink: time.Now(),
		CursorBlinkRate: 500 * time.Millisecond,
	}
}

// handleTextInput inserts typed text at the cursor.
func (f *textField) handleTextInput(text string) {
	runes := []rune(f.Value)
	f.Value = string(runes[:f.CursorPosition]) + text + string(runes[f.CursorPosition:])
	f.CursorPosition += len([]rune(text))
	f.resetBlink()
}

// handleKey processes editing keys. Returns true if the key was consumed.
func (f *textField) handleKey(sym sdl.Keycode) bool {
	runes := []rune(f.Value)

	switch sym {
	case sdl.K_BACKSPACE:
		if f.CursorPosition > 0 {
			f.Value = string(runes[:f.CursorPosition-1]) + string(runes[f.CursorPosition:])
			f.CursorPosition--
		}
	case sdl.K_DELETE:
		if f.CursorPosition < len(runes) {
			f.Value = string(runes[:f.CursorPosition]) + string(runes[f.CursorPosition+1:])
		}
	case sdl.K_LEFT:
		if f.CursorPosition > 0 {
			f.CursorPosition--
		}
	case sdl.K_RIGHT:
		if f.CursorPosition < len(runes) {
			f.CursorPosition++
		}
	case sdl.K_HOME:
		f.CursorPosition = 0
	case sdl.K_END:
		f.CursorPosition = len(runes)
	default:
		return false
	}

	f.resetBlink()
	return true
}

func (f *textField) resetBlink() {
	f.CursorVisible = true
	f.LastCursorBlink = time.Now()
}

func (f *textField) displayValue() string {
	if !f.Masked {
		return f.Value
	}
	return strings.Repeat("•", len([]rune(f.Value)))
}

// render draws the label above the field box and the value inside it. The
// cursor blinks only while the field is focused.
func (f *textField) render(renderer *sdl.Renderer, font *ttf.Font, x, y, width int32, focused bool) int32 {
	theme := internal.GetTheme()
	pad := internal.UniformPadding(12)

	labelHeight := int32(font.Height())
	fieldHeight := labelHeight + pad.Top + pad.Bottom

	internal.RenderText(renderer, font, f.Label, x, y, theme.HintColor)

	box := sdl.Rect{X: x, Y: y + labelHeight + 8, W: width, H: fieldHeight}
	renderer.SetDrawColor(theme.FieldColor.R, theme.FieldColor.G, theme.FieldColor.B, 255)
	renderer.FillRect(&box)

	borderColor := theme.HintColor
	if focused {
		borderColor = theme.HighlightColor
	}
	renderer.SetDrawColor(borderColor.R, borderColor.G, borderColor.B, 255)
	renderer.DrawRect(&box)

	display := f.displayValue()
	internal.RenderText(renderer, font, display, box.X+pad.Left, box.Y+pad.Top, theme.TextColor)

	if focused {
		if time.Since(f.LastCursorBlink) >= f.CursorBlinkRate {
			f.CursorVisible = !f.CursorVisible
			f.LastCursorBlink = time.Now()
		}
		if f.CursorVisible {
			prefix := string([]rune(display)[:f.CursorPosition])
			cursorX := box.X + pad.Left + internal.TextWidth(font, prefix)
			renderer.SetDrawColor(theme.TextColor.R, theme.TextColor.G, theme.TextColor.B, 255)
			renderer.FillRect(&sdl.Rect{X: cursorX, Y: box.Y + pad.Top, W: 2, H: labelHeight})
		}
	}

	return labelHeight + 8 + fieldHeight
}
