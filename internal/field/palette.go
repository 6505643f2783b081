package field

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// RGBA is a colour with a separate straight alpha.
type RGBA struct {
	RGB
	A float64
}

func (c RGB) WithAlpha(a float64) RGBA {
	return RGBA{RGB: c, A: clampF(a, 0, 1)}
}

// Floats returns the channels in 0..1.
func (c RGBA) Floats() (r, g, b, a float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0, float32(c.A)
}

func lerpU8(a, b uint8, t float64) uint8 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// Lerp blends c toward o.
func (c RGB) Lerp(o RGB, t float64) RGB {
	return RGB{R: lerpU8(c.R, o.R, t), G: lerpU8(c.G, o.G, t), B: lerpU8(c.B, o.B, t)}
}

// Palette is the set of colours a frame is drawn with.
type Palette struct {
	Name       string
	Background RGB
	Particle   RGB
	Link       RGB
	CardFill   RGB
	CardEdge   RGB
	CardText   RGB
}

var (
	DarkPalette = Palette{
		Name:       "dark",
		Background: RGB{R: 9, G: 12, B: 20},
		Particle:   RGB{R: 148, G: 196, B: 255},
		Link:       RGB{R: 120, G: 170, B: 240},
		CardFill:   RGB{R: 22, G: 28, B: 44},
		CardEdge:   RGB{R: 74, G: 96, B: 140},
		CardText:   RGB{R: 226, G: 232, B: 244},
	}
	LightPalette = Palette{
		Name:       "light",
		Background: RGB{R: 244, G: 242, B: 236},
		Particle:   RGB{R: 46, G: 84, B: 150},
		Link:       RGB{R: 70, G: 104, B: 168},
		CardFill:   RGB{R: 255, G: 255, B: 252},
		CardEdge:   RGB{R: 190, G: 184, B: 170},
		CardText:   RGB{R: 30, G: 34, B: 44},
	}
)

// PaletteByName returns the named theme, falling back to dark.
func PaletteByName(name string) Palette {
	if name == LightPalette.Name {
		return LightPalette
	}
	return DarkPalette
}

// Toggle returns the other theme.
func (p Palette) Toggle() Palette {
	if p.Name == LightPalette.Name {
		return DarkPalette
	}
	return LightPalette
}
