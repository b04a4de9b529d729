package decor

import "time"

// PointerID identifies a pointer device to the frame. The embedding
// application picks the values; they only need to be unique per live
// device.
type PointerID uint64

// BtnLeft is the Linux input event code for the left pointer button,
// the only button the decorations react to.
const BtnLeft = 0x110

// doubleClickTime is the longest gap between two presses on the
// header that still counts as a double click.
const doubleClickTime = 400 * time.Millisecond

type pointerState struct {
	location Location
	pressed  bool
	pressLoc Location // location at the time of the press

	lastHeadClick time.Time
}

// pointerView is a per-pointer snapshot handed to the rasterizer.
type pointerView struct {
	location Location
	pressed  bool
}

func (f *Frame) pointerViews() []pointerView {
	views := make([]pointerView, 0, len(f.pointers))
	for _, p := range f.pointers {
		views = append(views, pointerView{
			location: p.location,
			pressed:  p.pressed && p.pressLoc == p.location,
		})
	}
	return views
}

// PointerEnter begins tracking a pointer that entered one of the
// decoration regions at surface-local logical coordinates (x, y). It
// returns the refined location so that the caller can theme the
// cursor with Location.Cursor.
func (f *Frame) PointerEnter(id PointerID, region Region, x, y float64) Location {
	if f.hidden || f.fullscreened {
		return LocationNone
	}

	p, ok := f.pointers[id]
	if !ok {
		p = new(pointerState)
		f.pointers[id] = p
	}
	p.location = preciseLocation(f.buttons, region.location(), f.size.X, x, y)
	f.refresh()

	return p.location
}

// PointerMotion reclassifies a tracked pointer from its new
// coordinates. Motion from a pointer that never entered is ignored.
func (f *Frame) PointerMotion(id PointerID, x, y float64) Location {
	p, ok := f.pointers[id]
	if !ok || f.hidden || f.fullscreened {
		return LocationNone
	}

	loc := preciseLocation(f.buttons, p.location, f.size.X, x, y)
	if loc != p.location {
		p.location = loc
		f.refresh()
	}

	return loc
}

// PointerLeave stops hit-testing a pointer that left the decoration
// surfaces without forgetting the device.
func (f *Frame) PointerLeave(id PointerID) {
	p, ok := f.pointers[id]
	if !ok {
		return
	}

	p.location = LocationNone
	p.pressed = false
	f.refresh()
}

// RemovePointer forgets a pointer device entirely.
func (f *Frame) RemovePointer(id PointerID) {
	delete(f.pointers, id)
}

// PointerButton interprets a button event on a tracked pointer and
// emits the semantic request that the press or release resolves to.
// serial is the protocol serial of the event, passed through on move
// and resize requests for starting the grab.
func (f *Frame) PointerButton(id PointerID, button uint32, pressed bool, serial uint32, t time.Time) {
	p, ok := f.pointers[id]
	if !ok || button != BtnLeft || f.hidden || f.fullscreened {
		return
	}

	if pressed {
		f.pointerPressed(p, serial, t)
		return
	}
	f.pointerReleased(p)
}

func (f *Frame) pointerPressed(p *pointerState, serial uint32, t time.Time) {
	switch loc := p.location; {
	case loc == LocationHead:
		if f.resizable && t.Sub(p.lastHeadClick) <= doubleClickTime {
			f.handler.HandleRequest(Request{Kind: RequestToggleMaximize, Serial: serial})
		} else {
			f.handler.HandleRequest(Request{Kind: RequestMove, Serial: serial})
		}
		p.lastHeadClick = t

	case loc.Edges() != EdgeNone:
		if f.resizable {
			f.handler.HandleRequest(Request{Kind: RequestResize, Edges: loc.Edges(), Serial: serial})
		}

	default:
		if _, ok := loc.Button(); ok {
			p.pressed = true
			p.pressLoc = loc
			f.refresh()
		}
	}
}

func (f *Frame) pointerReleased(p *pointerState) {
	if !p.pressed {
		return
	}
	p.pressed = false
	f.refresh()

	if p.location != p.pressLoc {
		return
	}
	kind, ok := p.location.Button()
	if !ok {
		return
	}

	switch kind {
	case ButtonClose:
		f.handler.HandleRequest(Request{Kind: RequestClose})
	case ButtonMaximize:
		if f.resizable {
			f.handler.HandleRequest(Request{Kind: RequestToggleMaximize})
		}
	case ButtonMinimize:
		f.handler.HandleRequest(Request{Kind: RequestMinimize})
	}
}

// refresh asks the owning application to schedule a redraw, e.g.
// because a hover changed a button's appearance.
func (f *Frame) refresh() {
	f.handler.HandleRequest(Request{Kind: RequestRefresh})
}
