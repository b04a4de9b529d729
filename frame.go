package decor

import (
	"errors"
	"image"
	"log/slog"

	"deedles.dev/decor/internal/drm"
	"deedles.dev/decor/internal/fimg"
	"deedles.dev/ximage/geom"
	xdraw "golang.org/x/image/draw"
)

// A Frame owns the decoration state of a single window and is the
// single source of truth consulted by both hit-testing and rendering.
// It is not safe for concurrent use; the embedding application must
// serialize all calls on its event-dispatch goroutine.
type Frame struct {
	handler  Handler
	provider SurfaceProvider
	pool     BufferPool
	log      *slog.Logger
	theme    *ColorTheme

	size         geom.Point[int]
	title        string
	resizable    bool
	active       bool
	maximized    bool
	fullscreened bool
	hidden       bool

	buttons  *Buttons
	parts    parts
	pointers map[PointerID]*pointerState
}

// New creates a hidden frame with a 1x1 size. Call Resize and
// SetHidden(false) to bring the decorations up.
func New(config Config) (*Frame, error) {
	switch {
	case config.Handler == nil:
		return nil, errors.New("decor: config has a nil Handler")
	case config.Surfaces == nil:
		return nil, errors.New("decor: config has a nil SurfaceProvider")
	case config.Pool == nil:
		return nil, errors.New("decor: config has a nil BufferPool")
	}

	theme := config.Theme
	if theme == nil {
		theme = DefaultTheme()
	}
	log := config.Log
	if log == nil {
		log = slog.Default()
	}

	f := Frame{
		handler:   config.Handler,
		provider:  config.Surfaces,
		pool:      config.Pool,
		log:       log,
		theme:     theme,
		size:      geom.Pt(1, 1),
		resizable: true,
		hidden:    true,
		buttons:   newButtons(),
		pointers:  make(map[PointerID]*pointerState),
	}
	f.buttons.Arrange(f.size.X + 2*BorderSize)

	return &f, nil
}

// State is a bitmask of the window states reported by the windowing
// layer.
type State uint32

const (
	StateActivated State = 1 << iota
	StateMaximized
	StateFullscreened
)

// SetStates updates the activation, maximized, and fullscreen flags
// from states and reports whether any of them changed, i.e. whether
// the caller should redraw.
func (f *Frame) SetStates(states State) bool {
	var redraw bool

	active := states&StateActivated != 0
	redraw = redraw || active != f.active
	f.active = active

	maximized := states&StateMaximized != 0
	redraw = redraw || maximized != f.maximized
	f.maximized = maximized

	fullscreened := states&StateFullscreened != 0
	redraw = redraw || fullscreened != f.fullscreened
	f.fullscreened = fullscreened

	return redraw
}

// SetHidden shows or hides the decorations entirely. Hiding tears the
// region surfaces down; nothing is rendered or hit-tested until the
// frame is shown again.
func (f *Frame) SetHidden(hidden bool) {
	f.hidden = hidden
	if hidden {
		f.parts.destroy()
		return
	}
	f.parts.create(f.provider, f.log)
}

// SetResizable toggles interactive resizing. A non-resizable window
// renders its maximize button disabled and ignores resize drags.
func (f *Frame) SetResizable(resizable bool) {
	f.resizable = resizable
}

// Resize sets the size of the window body in logical pixels and
// rearranges the button layout. Sizes are clamped to at least 1x1.
func (f *Frame) Resize(width, height int) {
	f.size = geom.Pt(max(width, 1), max(height, 1))
	f.buttons.Arrange(f.size.X + 2*BorderSize)
}

// SetTitle sets the text drawn in the headerbar on the next redraw.
func (f *Frame) SetTitle(title string) {
	f.title = title
}

// Redraw renders all visible decoration regions and commits them to
// their surfaces. A region whose buffer cannot be allocated is
// skipped; the remaining regions still redraw.
func (f *Frame) Redraw() {
	if f.hidden || f.fullscreened {
		f.parts.hide()
		return
	}

	f.redrawHeader()

	if f.maximized {
		// Maximizing suppresses the borders but not the headerbar.
		f.parts.get(RegionLeft).hide()
		f.parts.get(RegionRight).hide()
		f.parts.get(RegionBottom).hide()
		return
	}

	width, height := f.size.X, f.size.Y
	f.redrawBorder(RegionBottom, width+2*BorderSize, BorderSize, geom.Pt(-BorderSize, height))
	f.redrawBorder(RegionLeft, BorderSize, height, geom.Pt(-BorderSize, 0))
	f.redrawBorder(RegionRight, BorderSize, height, geom.Pt(width, 0))
}

func (f *Frame) redrawHeader() {
	p := f.parts.get(RegionHeader)
	if p == nil {
		return
	}

	// The header's scale is authoritative for button sizing.
	scale := p.scale()
	f.buttons.UpdateScale(scale)

	size := f.buttons.ScaledSize()
	w, h := size.X, size.Y+BorderSize*scale
	if w <= 0 || h <= 0 {
		return
	}

	canvas, buf, err := f.pool.Buffer(w, h, 4*w, drm.FormatARGB8888)
	if err != nil {
		f.log.Error("allocate header buffer", "width", w, "height", h, "err", err)
		return
	}

	img := renderHeader(w, h, float64(scale), headerOptions{
		Title:     f.title,
		Resizable: f.resizable,
		Maximized: f.maximized,
		Colors:    f.theme.forActive(f.active),
		Buttons:   f.buttons,
		Pointers:  f.pointerViews(),
	})
	copyToCanvas(canvas, w, h, img)

	p.sub.SetPosition(-BorderSize, -(HeaderSize + BorderSize))
	p.sub.Attach(buf)
	p.sub.DamageBuffer(0, 0, w, h)
	p.sub.Commit()
}

func (f *Frame) redrawBorder(region Region, width, height int, pos geom.Point[int]) {
	p := f.parts.get(region)
	if p == nil {
		return
	}

	scale := p.scale()
	w, h := width*scale, height*scale
	if w <= 0 || h <= 0 {
		return
	}

	canvas, buf, err := f.pool.Buffer(w, h, 4*w, drm.FormatARGB8888)
	if err != nil {
		f.log.Error("allocate border buffer", "region", region, "err", err)
		return
	}

	img := renderBorder(region, w, h, scale, f.theme.forActive(f.active).Border)
	copyToCanvas(canvas, w, h, img)

	p.sub.SetPosition(pos.X, pos.Y)
	p.sub.Attach(buf)
	p.sub.DamageBuffer(0, 0, w, h)
	p.sub.Commit()
}

// copyToCanvas converts a rendered image into the canvas's
// premultiplied little-endian ARGB layout.
func copyToCanvas(canvas []byte, w, h int, img image.Image) {
	dst := fimg.WrapARGB(canvas, 4*w, image.Rect(0, 0, w, h))
	xdraw.Copy(dst, image.Point{}, img, img.Bounds(), xdraw.Src, nil)
}

// SubtractBorders converts a window size into the content size by
// removing the headerbar height. Hidden and fullscreened decorations
// take up no space.
func (f *Frame) SubtractBorders(width, height int) (int, int) {
	if f.hidden || f.fullscreened {
		return width, height
	}
	return width, height - HeaderSize
}

// AddBorders converts a content size into the window size by adding
// the headerbar height. Hidden and fullscreened decorations take up
// no space.
func (f *Frame) AddBorders(width, height int) (int, int) {
	if f.hidden || f.fullscreened {
		return width, height
	}
	return width, height + HeaderSize
}

// Origin returns the top-left corner of the decorations relative to
// the window body.
func (f *Frame) Origin() geom.Point[int] {
	if f.hidden || f.fullscreened {
		return geom.Point[int]{}
	}
	return geom.Pt(0, -HeaderSize)
}
