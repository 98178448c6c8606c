package internal

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

//go:embed assets/*.svg
var assetsFS embed.FS

var iconCache = NewTextureCache()

// IconTexture rasterizes a named embedded SVG icon at the requested size and
// caches the resulting texture. Icon names match the asset filenames without
// the extension ("lock", "help").
func IconTexture(renderer *sdl.Renderer, name string, size int32) (*sdl.Texture, error) {
	key := fmt.Sprintf("%s@%d", name, size)
	if texture := iconCache.Get(key); texture != nil {
		return texture, nil
	}

	data, err := assetsFS.ReadFile("assets/" + name + ".svg")
	if err != nil {
		return nil, fmt.Errorf("icon %s: %w", name, err)
	}

	texture, err := renderSVG(renderer, data, size, size)
	if err != nil {
		return nil, fmt.Errorf("icon %s: %w", name, err)
	}

	iconCache.Set(key, texture)
	return texture, nil
}

// renderSVG rasterizes SVG bytes to an RGBA buffer and uploads it as an SDL
// texture.
func renderSVG(renderer *sdl.Renderer, data []byte, w, h int32) (*sdl.Texture, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	rgba := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	scanner := rasterx.NewScannerGV(int(w), int(h), rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(int(w), int(h), scanner), 1.0)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		w, h, 32, int32(rgba.Stride),
		sdl.PIXELFORMAT_ABGR8888,
	)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	return texture, nil
}

func destroyIconCache() {
	iconCache.Destroy()
}
