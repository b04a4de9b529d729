package decor

import "testing"

func testButtons() *Buttons {
	b := newButtons()
	b.Arrange(400 + 2*BorderSize)
	return b
}

func TestPreciseLocationTopRefinement(t *testing.T) {
	b := testButtons()

	cases := []struct {
		name string
		old  Location
		x, y float64
		want Location
	}{
		{"top left corner", LocationHead, 5, 5, LocationTopLeft},
		{"top right corner", LocationHead, 415, 5, LocationTopRight},
		{"top middle", LocationHead, 200, 5, LocationTop},
		{"inside header", LocationHead, 200, 20, LocationHead},
		{"from top back to header", LocationTop, 200, 20, LocationHead},
		{"corner sticky from top", LocationTopLeft, 5, 3, LocationTopLeft},
	}
	for _, c := range cases {
		if got := preciseLocation(b, c.old, 400, c.x, c.y); got != c.want {
			t.Errorf("%s: preciseLocation(%v, 400, %v, %v) = %v, want %v", c.name, c.old, c.x, c.y, got, c.want)
		}
	}
}

func TestPreciseLocationBottomIgnoresY(t *testing.T) {
	b := testButtons()

	for _, y := range []float64{-3, 0, 5, 123} {
		if got := preciseLocation(b, LocationBottom, 400, 5, y); got != LocationBottomLeft {
			t.Errorf("y=%v: got %v, want LocationBottomLeft", y, got)
		}
		if got := preciseLocation(b, LocationBottomLeft, 400, 415, y); got != LocationBottomRight {
			t.Errorf("y=%v: got %v, want LocationBottomRight", y, got)
		}
		if got := preciseLocation(b, LocationBottomRight, 400, 200, y); got != LocationBottom {
			t.Errorf("y=%v: got %v, want LocationBottom", y, got)
		}
	}
}

func TestPreciseLocationSidesUnchanged(t *testing.T) {
	b := testButtons()

	for _, old := range []Location{LocationLeft, LocationRight, LocationNone} {
		for _, p := range [][2]float64{{0, 0}, {5, 200}, {415, 5}} {
			if got := preciseLocation(b, old, 400, p[0], p[1]); got != old {
				t.Errorf("preciseLocation(%v, 400, %v, %v) = %v, want unchanged", old, p[0], p[1], got)
			}
		}
	}
}

func TestPreciseLocationButtons(t *testing.T) {
	b := testButtons()

	c := b.Close.rect.Center()
	if got := preciseLocation(b, LocationHead, 400, c.X, c.Y); got != ButtonLocation(ButtonClose) {
		t.Fatalf("over close button: got %v", got)
	}

	// Leaving the button goes back through the head family.
	if got := preciseLocation(b, ButtonLocation(ButtonClose), 400, 200, 20); got != LocationHead {
		t.Errorf("off the button: got %v, want LocationHead", got)
	}
	if got := preciseLocation(b, ButtonLocation(ButtonClose), 400, 200, 5); got != LocationTop {
		t.Errorf("from button into top border: got %v, want LocationTop", got)
	}
}

func TestLocationEdges(t *testing.T) {
	cases := map[Location]Edges{
		LocationTop:         EdgeTop,
		LocationTopLeft:     EdgeTop | EdgeLeft,
		LocationTopRight:    EdgeTop | EdgeRight,
		LocationBottom:      EdgeBottom,
		LocationBottomLeft:  EdgeBottom | EdgeLeft,
		LocationBottomRight: EdgeBottom | EdgeRight,
		LocationLeft:        EdgeLeft,
		LocationRight:       EdgeRight,
		LocationHead:        EdgeNone,
		LocationNone:        EdgeNone,
	}
	for loc, want := range cases {
		if got := loc.Edges(); got != want {
			t.Errorf("%v.Edges() = %v, want %v", loc, got, want)
		}
	}

	if got := ButtonLocation(ButtonClose).Edges(); got != EdgeNone {
		t.Errorf("button location has edges %v", got)
	}
}

func TestLocationButton(t *testing.T) {
	for _, k := range []ButtonKind{ButtonClose, ButtonMaximize, ButtonMinimize} {
		got, ok := ButtonLocation(k).Button()
		if !ok || got != k {
			t.Errorf("ButtonLocation(%v).Button() = %v, %v", k, got, ok)
		}
	}
	if _, ok := LocationHead.Button(); ok {
		t.Error("LocationHead reports itself as a button")
	}
}
