package decor

// Location identifies the semantic region of the decorations that a
// pointer is currently over. Exactly one Location is current per
// tracked pointer; it is recomputed on every motion event.
type Location int

const (
	LocationNone Location = iota
	LocationHead
	LocationTop
	LocationTopRight
	LocationRight
	LocationBottomRight
	LocationBottom
	LocationBottomLeft
	LocationLeft
	LocationTopLeft

	locationButton
)

// ButtonLocation returns the Location of a pointer hovering over the
// given window-control button.
func ButtonLocation(k ButtonKind) Location {
	return locationButton + Location(k)
}

// Button reports the window-control button that l refers to, if any.
func (l Location) Button() (ButtonKind, bool) {
	if l < locationButton {
		return 0, false
	}
	return ButtonKind(l - locationButton), true
}

// Edges returns the edge set that a drag starting at l should resize
// the window along, or EdgeNone if l is not a resize location.
func (l Location) Edges() Edges {
	switch l {
	case LocationTop:
		return EdgeTop
	case LocationTopRight:
		return EdgeTop | EdgeRight
	case LocationRight:
		return EdgeRight
	case LocationBottomRight:
		return EdgeBottom | EdgeRight
	case LocationBottom:
		return EdgeBottom
	case LocationBottomLeft:
		return EdgeBottom | EdgeLeft
	case LocationLeft:
		return EdgeLeft
	case LocationTopLeft:
		return EdgeTop | EdgeLeft
	default:
		return EdgeNone
	}
}

// Cursor returns the name of the cursor-theme image that should be
// shown while the pointer is over l.
func (l Location) Cursor() string {
	switch l {
	case LocationTop:
		return "top_side"
	case LocationTopRight:
		return "top_right_corner"
	case LocationRight:
		return "right_side"
	case LocationBottomRight:
		return "bottom_right_corner"
	case LocationBottom:
		return "bottom_side"
	case LocationBottomLeft:
		return "bottom_left_corner"
	case LocationLeft:
		return "left_side"
	case LocationTopLeft:
		return "top_left_corner"
	default:
		return "left_ptr"
	}
}

// preciseLocation refines a pointer's previous location from its
// current surface-local coordinates. Classification deliberately
// depends on the previous location: the header and the border strips
// are contiguous and ambiguous at the corners, and which strip the
// pointer entered from disambiguates them. width is the logical width
// of the window body.
func preciseLocation(buttons *Buttons, old Location, width int, x, y float64) Location {
	switch old {
	case LocationHead, LocationTop, LocationTopLeft, LocationTopRight:
		return headLocation(buttons, width, x, y)

	case LocationBottom, LocationBottomLeft, LocationBottomRight:
		// The pointer is already known to be in the bottom strip, so
		// only x matters.
		switch {
		case x <= BorderSize:
			return LocationBottomLeft
		case x >= float64(width+BorderSize):
			return LocationBottomRight
		default:
			return LocationBottom
		}

	default:
		if _, ok := old.Button(); ok {
			return headLocation(buttons, width, x, y)
		}
		return old
	}
}

func headLocation(buttons *Buttons, width int, x, y float64) Location {
	loc := buttons.FindButton(x, y)
	if loc != LocationHead {
		return loc
	}
	if y > BorderSize {
		return LocationHead
	}

	switch {
	case x <= BorderSize:
		return LocationTopLeft
	case x >= float64(width+BorderSize):
		return LocationTopRight
	default:
		return LocationTop
	}
}
