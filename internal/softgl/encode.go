package softgl

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
)

type Format string

const (
	WebP Format = "webp"
	PNG  Format = "png"
	TGA  Format = "tga"
)

// FormatFromPath picks the image format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "webp":
		return WebP, nil
	case "png":
		return PNG, nil
	case "tga":
		return TGA, nil
	default:
		return "", fmt.Errorf("softgl: unsupported image extension %q", filepath.Ext(path))
	}
}

// Encode writes img to w in format f. WebP output is lossless.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case WebP:
		err = nativewebp.Encode(w, img, nil)
	case PNG:
		err = png.Encode(w, img)
	case TGA:
		err = tga.Encode(w, img)
	default:
		return fmt.Errorf("softgl: unknown format %q", f)
	}
	if err != nil {
		return fmt.Errorf("softgl: %s encode: %w", f, err)
	}
	return nil
}

// Downsample scales img to width×height with Catmull-Rom filtering. It is
// used to resolve a supersampled canvas.
func Downsample(img *image.RGBA, width, height int) *image.RGBA {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
