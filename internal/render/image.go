package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"

	"lifegrid/pkg/life"
)

// Format names a raster encoding.
type Format string

const (
	PNG Format = "png"
	BMP Format = "bmp"
)

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case PNG, BMP:
		return f, nil
	}
	return "", fmt.Errorf("render: unknown image format %q", s)
}

// MIME returns the media type of the format.
func (f Format) MIME() string { return "image/" + string(f) }

// Image paints g into an RGBA image with one pixel per cell.
func Image(g *life.Grid, p Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	p.Paint(img.Pix, g.Bytes())
	return img
}

// Encode writes g to w in the given format using DefaultPalette.
func Encode(w io.Writer, g *life.Grid, f Format) error {
	img := Image(g, DefaultPalette)
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("render: unknown image format %q", string(f))
}

// EncodeBytes is Encode into a fresh buffer.
func EncodeBytes(g *life.Grid, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, g, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DataURL encodes g as a base64 data URL, e.g. "data:image/png;base64,...".
func DataURL(g *life.Grid, f Format) (string, error) {
	raw, err := EncodeBytes(g, f)
	if err != nil {
		return "", err
	}
	return "data:" + f.MIME() + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}
