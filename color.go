package sapling

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// DefaultLineColor is used when a bundle carries an empty color string.
const DefaultLineColor = "#fff5"

// ErrInvalidColor is returned by ParseColor for unrecognized color strings.
var ErrInvalidColor = errors.New("sapling: invalid color")

// ParseColor parses a CSS-style color string. Supported forms are #rgb,
// #rgba, #rrggbb, #rrggbbaa, rgb(r, g, b) and rgba(r, g, b, a) with channels
// in [0, 255] and alpha in [0, 1]. An empty string yields DefaultLineColor.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		s = DefaultLineColor
	}

	switch {
	case strings.HasPrefix(s, "#"):
		hex := s[1:]
		switch len(hex) {
		case 3, 4, 6, 8:
		default:
			return Color{}, fmt.Errorf("%w: %q: hex length %d", ErrInvalidColor, s, len(hex))
		}
		for _, c := range hex {
			if !isHexDigit(c) {
				return Color{}, fmt.Errorf("%w: %q: bad hex digit %q", ErrInvalidColor, s, c)
			}
		}
		c := gg.Hex(hex)
		return Color{R: c.R, G: c.G, B: c.B, A: c.A}, nil

	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFunctional(s, "rgba(", 4)

	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFunctional(s, "rgb(", 3)
	}
	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// MustParseColor is like ParseColor but falls back to DefaultLineColor on error.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		c, _ = ParseColor(DefaultLineColor)
	}
	return c
}

func parseFunctional(s, prefix string, want int) (Color, error) {
	body := strings.TrimSuffix(strings.TrimPrefix(s, prefix), ")")
	parts := strings.Split(body, ",")
	if len(parts) != want {
		return Color{}, fmt.Errorf("%w: %q: want %d components, got %d", ErrInvalidColor, s, want, len(parts))
	}
	var v [4]float64
	v[3] = 1
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %w", ErrInvalidColor, s, err)
		}
		v[i] = f
	}
	return Color{
		R: clamp01(v[0] / 255),
		G: clamp01(v[1] / 255),
		B: clamp01(v[2] / 255),
		A: clamp01(v[3]),
	}, nil
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}

// String formats c as an rgba() string that ParseColor accepts.
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)",
		int(clamp01(c.R)*255+0.5),
		int(clamp01(c.G)*255+0.5),
		int(clamp01(c.B)*255+0.5),
		strconv.FormatFloat(clamp01(c.A), 'f', -1, 64))
}

// toRGBA converts a Color to a premultiplied color.Color.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// toGG converts a Color to the rasterizer's straight-alpha color.
func (c Color) toGG() gg.RGBA {
	return gg.RGBA2(clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A))
}

// colorRGBA implements the color.Color interface for image drawing.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
