package decor

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/exp/slices"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

const titleSize = 14

var titleFont *sfnt.Font

func init() {
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		panic(fmt.Errorf("parse font: %w", err))
	}
	titleFont = f
}

type headerOptions struct {
	Title     string
	Resizable bool
	Maximized bool
	Colors    *ColorMap
	Buttons   *Buttons
	Pointers  []pointerView
}

// renderHeader rasterizes the header region into a w x h device-pixel
// image: the rounded headerbar, the separator line above the window
// body, the title, and the window-control buttons. The top BorderSize
// strip of the buffer is left transparent as the resize grip.
func renderHeader(w, h int, scale float64, o headerOptions) image.Image {
	ctx := gg.NewContext(w, h)

	borderPx := BorderSize * scale
	marginLeft := borderPx - 1

	roundedHeaderbar(ctx, marginLeft, borderPx, float64(w)-2*marginLeft, float64(h)-borderPx, headerRadius*scale)
	ctx.SetColor(o.Colors.Headerbar)
	ctx.Fill()

	ctx.SetColor(colorSeparator)
	ctx.DrawRectangle(marginLeft, float64(h)-1, float64(w)-2*marginLeft, 1)
	ctx.Fill()

	drawTitle(ctx, w, scale, o)

	for _, b := range []*Button{&o.Buttons.Close, &o.Buttons.Maximize, &o.Buttons.Minimize} {
		// Buttons pushed past the left margin by a degenerate width
		// are dropped, not clamped.
		if b.rect.Min.X <= BorderSize {
			continue
		}
		drawButton(ctx, b, scale, o)
	}

	return ctx.Image()
}

// roundedHeaderbar traces the headerbar outline: rounded top corners,
// flat bottom edge.
func roundedHeaderbar(ctx *gg.Context, x, y, w, h, r float64) {
	frac := r / math.Sqrt2

	ctx.NewSubPath()
	ctx.MoveTo(x, y+r)
	ctx.CubicTo(x, y+r, x, y+r-frac, x+r, y)
	ctx.LineTo(x+w-r, y)
	ctx.CubicTo(x+w-r, y, x+w-r+frac, y, x+w, y+r)
	ctx.LineTo(x+w, y+h)
	ctx.LineTo(x, y+h)
	ctx.ClosePath()
}

// drawTitle draws the window title centered in the headerbar, clipped
// so that it never runs under the buttons.
func drawTitle(ctx *gg.Context, w int, scale float64, o headerOptions) {
	if o.Title == "" {
		return
	}

	face, err := opentype.NewFace(titleFont, &opentype.FaceOptions{
		Size: titleSize * scale,
		DPI:  72,
	})
	if err != nil {
		return
	}
	defer face.Close()

	left := (BorderSize + buttonGap) * scale
	right := (o.Buttons.Minimize.rect.Min.X - buttonGap) * scale
	if right <= left {
		return
	}

	ctx.SetFontFace(face)
	ctx.SetColor(o.Colors.Text)
	ctx.DrawRectangle(left, BorderSize*scale, right-left, HeaderSize*scale)
	ctx.Clip()
	ctx.DrawStringAnchored(o.Title, float64(w)/2, (BorderSize+HeaderSize/2.0)*scale, 0.5, 0.35)
	ctx.ResetClip()
}

// drawButton draws one window-control button: the circular background
// for its current interaction state and the glyph on top of it.
func drawButton(ctx *gg.Context, b *Button, scale float64, o headerOptions) {
	colors := o.Colors.buttonColors(b.kind)
	loc := ButtonLocation(b.kind)

	enabled := b.kind != ButtonMaximize || o.Resizable
	hovered := enabled && slices.ContainsFunc(o.Pointers, func(p pointerView) bool {
		return p.location == loc
	})
	pressed := hovered && slices.ContainsFunc(o.Pointers, func(p pointerView) bool {
		return p.location == loc && p.pressed
	})

	r := b.scaled(scale)
	center := r.Center()
	ctx.SetColor(colors.fill(hovered, pressed))
	ctx.DrawCircle(center.X, center.Y, r.Dx()/2)
	ctx.Fill()

	glyph := colors.glyph(hovered, pressed)
	if !enabled {
		glyph = colors.Disabled
	}
	ctx.SetColor(glyph)
	ctx.SetLineWidth(scale)

	d := 4 * scale
	switch b.kind {
	case ButtonClose:
		ctx.DrawLine(center.X-d, center.Y-d, center.X+d, center.Y+d)
		ctx.DrawLine(center.X-d, center.Y+d, center.X+d, center.Y-d)
		ctx.Stroke()

	case ButtonMaximize:
		if o.Maximized {
			// Two offset squares hint that another click restores.
			off := 2 * scale
			ctx.DrawRectangle(center.X-d+off, center.Y-d, 2*d-off, 2*d-off)
			ctx.Stroke()
			ctx.DrawRectangle(center.X-d, center.Y-d+off, 2*d-off, 2*d-off)
			ctx.Stroke()
			break
		}
		ctx.DrawRectangle(center.X-d, center.Y-d, 2*d, 2*d)
		ctx.Stroke()

	case ButtonMinimize:
		ctx.DrawLine(center.X-d, center.Y+d, center.X+d, center.Y+d)
		ctx.Stroke()
	}
}

// renderBorder rasterizes one of the side borders: transparent except
// for a single device-pixel accent line along the edge adjacent to
// the window body.
func renderBorder(region Region, w, h, scale int, accent color.NRGBA) image.Image {
	ctx := gg.NewContext(w, h)
	ctx.SetColor(accent)

	borderPx := float64(BorderSize * scale)
	switch region {
	case RegionLeft:
		ctx.DrawRectangle(float64(w)-1, 0, 1, float64(h))
	case RegionRight:
		ctx.DrawRectangle(0, 0, 1, float64(h))
	case RegionBottom:
		ctx.DrawRectangle(borderPx-1, 0, float64(w)-2*borderPx+2, 1)
	}
	ctx.Fill()

	return ctx.Image()
}
