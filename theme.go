package decor

import "image/color"

// Logical sizes of the decoration regions. Both are multiplied by the
// output scale factor when rendered.
const (
	// HeaderSize is the height of the headerbar.
	HeaderSize = 35

	// BorderSize is the thickness of the resize borders, including the
	// invisible grip strip above the headerbar.
	BorderSize = 10

	headerRadius = 10
)

// colorSeparator is the one-pixel line between the headerbar and the
// window body.
var colorSeparator = color.NRGBA{220, 220, 220, 255}

// ButtonColors is the paint for a single window-control button.
type ButtonColors struct {
	// Circle fill behind the glyph, per interaction state.
	Idle, Hover, Pressed color.NRGBA

	// Glyph stroke, per interaction state.
	Glyph, GlyphHover, GlyphPressed color.NRGBA

	// Disabled is the glyph stroke when the button is inert, e.g. the
	// maximize button of a non-resizable window.
	Disabled color.NRGBA
}

func (c *ButtonColors) fill(hovered, pressed bool) color.NRGBA {
	switch {
	case pressed:
		return c.Pressed
	case hovered:
		return c.Hover
	default:
		return c.Idle
	}
}

func (c *ButtonColors) glyph(hovered, pressed bool) color.NRGBA {
	switch {
	case pressed:
		return c.GlyphPressed
	case hovered:
		return c.GlyphHover
	default:
		return c.Glyph
	}
}

// A ColorMap is the palette for one activation state.
type ColorMap struct {
	Headerbar color.NRGBA
	Border    color.NRGBA
	Text      color.NRGBA

	Close, Maximize, Minimize ButtonColors
}

func (m *ColorMap) buttonColors(k ButtonKind) *ButtonColors {
	switch k {
	case ButtonClose:
		return &m.Close
	case ButtonMaximize:
		return &m.Maximize
	default:
		return &m.Minimize
	}
}

// A ColorTheme holds the palettes for both activation states. Themes
// are values: they are never mutated after construction, and the
// active palette is reselected on every redraw.
type ColorTheme struct {
	Active, Inactive ColorMap
}

func (t *ColorTheme) forActive(active bool) *ColorMap {
	if active {
		return &t.Active
	}
	return &t.Inactive
}

// DefaultTheme returns an Adwaita-flavored light theme.
func DefaultTheme() *ColorTheme {
	plain := ButtonColors{
		Idle:         color.NRGBA{214, 214, 214, 255},
		Hover:        color.NRGBA{200, 200, 200, 255},
		Pressed:      color.NRGBA{176, 176, 176, 255},
		Glyph:        color.NRGBA{46, 46, 46, 255},
		GlyphHover:   color.NRGBA{46, 46, 46, 255},
		GlyphPressed: color.NRGBA{46, 46, 46, 255},
		Disabled:     color.NRGBA{180, 180, 180, 255},
	}
	plainInactive := ButtonColors{
		Idle:         color.NRGBA{235, 235, 235, 255},
		Hover:        color.NRGBA{222, 222, 222, 255},
		Pressed:      color.NRGBA{205, 205, 205, 255},
		Glyph:        color.NRGBA{148, 148, 148, 255},
		GlyphHover:   color.NRGBA{148, 148, 148, 255},
		GlyphPressed: color.NRGBA{148, 148, 148, 255},
		Disabled:     color.NRGBA{200, 200, 200, 255},
	}

	closeActive := plain
	closeActive.Hover = color.NRGBA{192, 28, 40, 255}
	closeActive.Pressed = color.NRGBA{165, 29, 45, 255}
	closeActive.GlyphHover = color.NRGBA{255, 255, 255, 255}
	closeActive.GlyphPressed = color.NRGBA{255, 255, 255, 255}

	closeInactive := plainInactive
	closeInactive.Hover = color.NRGBA{214, 78, 89, 255}
	closeInactive.Pressed = color.NRGBA{188, 62, 74, 255}
	closeInactive.GlyphHover = color.NRGBA{250, 250, 250, 255}
	closeInactive.GlyphPressed = color.NRGBA{250, 250, 250, 255}

	return &ColorTheme{
		Active: ColorMap{
			Headerbar: color.NRGBA{235, 235, 235, 255},
			Border:    color.NRGBA{120, 120, 120, 255},
			Text:      color.NRGBA{46, 46, 46, 255},
			Close:     closeActive,
			Maximize:  plain,
			Minimize:  plain,
		},
		Inactive: ColorMap{
			Headerbar: color.NRGBA{250, 250, 250, 255},
			Border:    color.NRGBA{170, 170, 170, 255},
			Text:      color.NRGBA{148, 148, 148, 255},
			Close:     closeInactive,
			Maximize:  plainInactive,
			Minimize:  plainInactive,
		},
	}
}
