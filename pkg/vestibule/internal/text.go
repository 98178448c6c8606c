package internal

import (
	"strings"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/kevinmliu/vestibule/pkg/vestibule/constants"
)

// RenderText draws a single line of text at x, y.
func RenderText(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32, color sdl.Color) {
	if text == "" {
		return
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return
	}
	defer texture.Destroy()

	rect := sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H}
	renderer.Copy(texture, nil, &rect)
}

// TextWidth returns the rendered width of a single line.
func TextWidth(font *ttf.Font, text string) int32 {
	width, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(width)
}

// wrapLines splits text into render lines, word-wrapping each paragraph at
// maxWidth. Explicit newlines are preserved; an empty input line stays an
// empty render line.
func wrapLines(font *ttf.Font, text string, maxWidth int32) []string {
	var wrapped []string

	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			wrapped = append(wrapped, "")
			continue
		}

		currentLine := ""
		for _, word := range strings.Fields(line) {
			testLine := currentLine
			if testLine != "" {
				testLine += " "
			}
			testLine += word

			if TextWidth(font, testLine) > maxWidth && currentLine != "" {
				wrapped = append(wrapped, currentLine)
				currentLine = word
			} else {
				currentLine = testLine
			}
		}
		if currentLine != "" {
			wrapped = append(wrapped, currentLine)
		}
	}

	return wrapped
}

func lineMetrics(font *ttf.Font) (height, spacing int32) {
	_, fontHeight, err := font.SizeUTF8("Aj")
	if err != nil {
		fontHeight = 20
	}
	return int32(fontHeight), int32(float64(fontHeight) * 0.2)
}

// MeasureMultilineText returns the total height the text occupies when
// rendered word-wrapped at maxWidth.
func MeasureMultilineText(font *ttf.Font, text string, maxWidth int32) int32 {
	if text == "" {
		return 0
	}

	lines := int32(len(wrapLines(font, text, maxWidth)))
	height, spacing := lineMetrics(font)
	return lines*height + (lines-1)*spacing
}

// RenderMultilineText draws word-wrapped text starting at y. anchorX is the
// center for TextAlignCenter, the left edge for TextAlignLeft, and the right
// edge for TextAlignRight. Returns the total rendered height.
func RenderMultilineText(renderer *sdl.Renderer, text string, font *ttf.Font, maxWidth, anchorX, y int32, color sdl.Color, align constants.TextAlign) int32 {
	lines := wrapLines(font, text, maxWidth)
	if len(lines) == 0 {
		return 0
	}
	height, spacing := lineMetrics(font)

	lineY := y
	for _, line := range lines {
		var x int32
		switch align {
		case constants.TextAlignCenter:
			x = anchorX - TextWidth(font, line)/2
		case constants.TextAlignRight:
			x = anchorX - TextWidth(font, line)
		default:
			x = anchorX
		}
		RenderText(renderer, font, line, x, lineY, color)
		lineY += height + spacing
	}

	return lineY - y - spacing
}
