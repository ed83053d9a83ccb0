package render

import "image/color"

// Palette maps the two cell states to colors.
type Palette struct {
	Live color.Color
	Dead color.Color
}

// DefaultPalette renders live cells dark grey on a light grey field.
var DefaultPalette = Palette{
	Live: color.RGBA{R: 51, G: 51, B: 51, A: 255},
	Dead: color.RGBA{R: 204, G: 204, B: 204, A: 255},
}

// Paint writes one premultiplied RGBA quad per cell into pix, which must hold
// at least 4*len(cells) bytes.
func (p Palette) Paint(pix []byte, cells []uint8) {
	live, dead := quad(p.Live), quad(p.Dead)
	for i, c := range cells {
		px := pix[i*4 : i*4+4 : i*4+4]
		if c != 0 {
			copy(px, live[:])
		} else {
			copy(px, dead[:])
		}
	}
}

func quad(c color.Color) [4]byte {
	if c == nil {
		return [4]byte{}
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return [4]byte{rgba.R, rgba.G, rgba.B, rgba.A}
}
