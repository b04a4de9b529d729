package decor

import (
	"testing"

	"deedles.dev/ximage/geom"
)

func buttonRects(b *Buttons) [3]geom.Rect[float64] {
	return [3]geom.Rect[float64]{b.Minimize.rect, b.Maximize.rect, b.Close.rect}
}

func TestArrangeIdempotent(t *testing.T) {
	b := newButtons()
	b.Arrange(500)
	first := buttonRects(b)

	b.Arrange(500)
	if buttonRects(b) != first {
		t.Fatalf("second arrange changed rects: %v != %v", buttonRects(b), first)
	}

	other := newButtons()
	other.Arrange(500)
	if buttonRects(other) != first {
		t.Fatalf("arrange is not deterministic across instances: %v != %v", buttonRects(other), first)
	}
}

func TestArrangeOrdering(t *testing.T) {
	b := newButtons()
	b.Arrange(420)

	if b.Minimize.rect.Max.X > b.Maximize.rect.Min.X {
		t.Errorf("minimize overlaps maximize: %v, %v", b.Minimize.rect, b.Maximize.rect)
	}
	if b.Maximize.rect.Max.X > b.Close.rect.Min.X {
		t.Errorf("maximize overlaps close: %v, %v", b.Maximize.rect, b.Close.rect)
	}
	if b.Minimize.rect.Min.X < 0 {
		t.Errorf("minimize does not fit in width 420: %v", b.Minimize.rect)
	}

	wantRight := float64(420 - BorderSize - buttonMarginRight)
	if b.Close.rect.Max.X != wantRight {
		t.Errorf("close right edge = %v, want %v", b.Close.rect.Max.X, wantRight)
	}
}

func TestArrangeDegenerateWidth(t *testing.T) {
	b := newButtons()
	b.Arrange(60)

	if b.Minimize.rect.Min.X >= 0 {
		t.Errorf("expected minimize to overflow the left edge at width 60, got %v", b.Minimize.rect)
	}
	if got := b.Minimize.rect.Dx(); got != buttonSize {
		t.Errorf("overflowing button was clamped: width = %v, want %v", got, buttonSize)
	}

	// Tiny widths must never panic.
	b.Arrange(0)
	b.Arrange(1)
}

func TestFindButton(t *testing.T) {
	b := newButtons()
	b.Arrange(420)

	for _, btn := range []*Button{&b.Close, &b.Maximize, &b.Minimize} {
		c := btn.rect.Center()
		if got := b.FindButton(c.X, c.Y); got != ButtonLocation(btn.kind) {
			t.Errorf("FindButton(%v) = %v, want button %v", c, got, btn.kind)
		}
	}

	if got := b.FindButton(200, 25); got != LocationHead {
		t.Errorf("FindButton over empty header = %v, want LocationHead", got)
	}
	if got := b.FindButton(b.Close.rect.Center().X, 5); got != LocationHead {
		t.Errorf("FindButton above buttons = %v, want LocationHead", got)
	}
}

func TestScaledSize(t *testing.T) {
	b := newButtons()
	b.Arrange(420)
	b.UpdateScale(2)

	if got, want := b.ScaledSize(), geom.Pt(840, 2*HeaderSize); got != want {
		t.Errorf("ScaledSize() = %v, want %v", got, want)
	}
}
