package decor

import "deedles.dev/ximage/geom"

// ButtonKind identifies one of the window-control buttons in the
// headerbar.
type ButtonKind int

const (
	ButtonClose ButtonKind = iota
	ButtonMaximize
	ButtonMinimize
)

// Button layout, in logical units.
const (
	buttonSize        = 24
	buttonGap         = 8
	buttonMarginRight = 8
)

// A Button is a single window-control slot in the headerbar.
type Button struct {
	kind ButtonKind
	rect geom.Rect[float64]
}

func (b *Button) Kind() ButtonKind { return b.kind }

// Rect returns the button's bounds in logical surface coordinates of
// the header region.
func (b *Button) Rect() geom.Rect[float64] { return b.rect }

// scaled returns the button's bounds in device pixels.
func (b *Button) scaled(scale float64) geom.Rect[float64] {
	return geom.Rt(
		b.rect.Min.X*scale,
		b.rect.Min.Y*scale,
		b.rect.Max.X*scale,
		b.rect.Max.Y*scale,
	)
}

// Buttons lays the three window-control buttons out right-aligned
// inside the decorated width and hit-tests points against them.
type Buttons struct {
	Close, Maximize, Minimize Button

	width int // decorated width of the most recent Arrange
	scale int
}

func newButtons() *Buttons {
	b := Buttons{
		Close:    Button{kind: ButtonClose},
		Maximize: Button{kind: ButtonMaximize},
		Minimize: Button{kind: ButtonMinimize},
		scale:    1,
	}
	b.Arrange(1)
	return &b
}

// Arrange recomputes the button rectangles for the given decorated
// width. It is deterministic and idempotent. A width too small to fit
// all three buttons pushes rectangles past the headerbar's left edge;
// they are intentionally not clamped or reflowed, and rendering drops
// any button that ends up there.
func (b *Buttons) Arrange(decoratedWidth int) {
	b.width = decoratedWidth

	top := float64(BorderSize + (HeaderSize-buttonSize)/2)
	right := float64(decoratedWidth - BorderSize - buttonMarginRight)
	for _, btn := range []*Button{&b.Close, &b.Maximize, &b.Minimize} {
		btn.rect = geom.Rt(right-buttonSize, top, right, top+buttonSize)
		right -= buttonSize + buttonGap
	}
}

// UpdateScale sets the output scale factor used to turn the layout
// into device pixels.
func (b *Buttons) UpdateScale(scale int) {
	if scale > 0 {
		b.scale = scale
	}
}

// ScaledSize returns the size in device pixels of the headerbar at
// the current layout width and scale, excluding the top border strip.
func (b *Buttons) ScaledSize() geom.Point[int] {
	return geom.Pt(b.width*b.scale, HeaderSize*b.scale)
}

// FindButton maps a point in logical surface coordinates to the
// button under it, or LocationHead if the point is inside the header
// region but not over any button.
func (b *Buttons) FindButton(x, y float64) Location {
	p := geom.Pt(x, y)
	for _, btn := range []*Button{&b.Close, &b.Maximize, &b.Minimize} {
		if p.In(btn.rect) {
			return ButtonLocation(btn.kind)
		}
	}
	return LocationHead
}
