// Package decor renders client-side window decorations and resolves
// pointer input over them into semantic window-management requests.
//
// The package draws four decoration regions (headerbar, left, right,
// and bottom borders) into caller-allocated pixel buffers and is
// deliberately ignorant of the display protocol: surfaces, buffers,
// and pointer devices are all opaque handles supplied by the
// embedding application. All methods must be called from the
// application's event-dispatch goroutine.
package decor

import "log/slog"

// Edges is a bitmask of the window edges affected by an interactive
// resize.
type Edges uint32

const (
	EdgeNone   Edges = 0
	EdgeTop    Edges = 1
	EdgeBottom Edges = 2
	EdgeLeft   Edges = 4
	EdgeRight  Edges = 8
)

// RequestKind enumerates the semantic actions that interacting with
// the decorations can ask of the owning window.
type RequestKind int

const (
	// RequestRefresh asks the application to schedule a Redraw, e.g.
	// because a hover changed a button's appearance.
	RequestRefresh RequestKind = iota
	RequestMove
	RequestResize
	RequestMinimize
	RequestToggleMaximize
	RequestClose
)

// A Request is a semantic action produced by pointer interaction with
// the decorations.
type Request struct {
	Kind RequestKind

	// Edges is the edge set of an interactive resize. It is only
	// meaningful for RequestResize.
	Edges Edges

	// Serial is the protocol serial of the button event that triggered
	// the request, for starting move and resize grabs.
	Serial uint32
}

// A Handler receives the requests produced by the decorations.
type Handler interface {
	HandleRequest(Request)
}

// A Buffer is an opaque handle to a protocol pixel buffer.
type Buffer any

// A BufferPool allocates pixel buffers for the decoration regions.
// The returned canvas is the writable backing storage of the buffer,
// stride*height bytes in the requested fourcc format.
type BufferPool interface {
	Buffer(width, height, stride int, format uint32) (canvas []byte, buf Buffer, err error)
}

// A Subsurface is the surface of a single decoration region,
// positioned relative to the window body.
type Subsurface interface {
	// Scale is the output scale factor the surface is rendered at.
	Scale() int

	SetPosition(x, y int)

	// Attach attaches buf to the surface. A nil buf unmaps it.
	Attach(buf Buffer)

	DamageBuffer(x, y, w, h int)
	Commit()
	Destroy()
}

// A SurfaceProvider creates the decoration region surfaces.
type SurfaceProvider interface {
	NewSubsurface() (Subsurface, error)
}

// Config configures a Frame. Handler, Surfaces, and Pool are
// required.
type Config struct {
	// Handler receives the semantic requests produced by pointer
	// interaction.
	Handler Handler

	// Surfaces creates the decoration region surfaces when the frame
	// is shown.
	Surfaces SurfaceProvider

	// Pool allocates the region pixel buffers.
	Pool BufferPool

	// Theme overrides DefaultTheme.
	Theme *ColorTheme

	// Log overrides slog.Default. The frame only logs recoverable
	// rendering failures.
	Log *slog.Logger
}
