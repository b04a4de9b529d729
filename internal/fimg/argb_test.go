package fimg

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestARGBByteOrder(t *testing.T) {
	img := NewARGB(image.Rect(0, 0, 2, 1))

	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	if want := []byte{0, 0, 255, 255}; !bytes.Equal(img.Pix[:4], want) {
		t.Errorf("red pixel bytes = %v, want %v", img.Pix[:4], want)
	}

	img.Set(1, 0, color.NRGBA{B: 255, A: 255})
	if want := []byte{255, 0, 0, 255}; !bytes.Equal(img.Pix[4:8], want) {
		t.Errorf("blue pixel bytes = %v, want %v", img.Pix[4:8], want)
	}
}

func TestARGBSetPremultiplies(t *testing.T) {
	img := NewARGB(image.Rect(0, 0, 1, 1))

	img.Set(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 128})
	if r := img.Pix[2]; r > 128 {
		t.Errorf("red byte %d exceeds alpha 128, not premultiplied", r)
	}
}

func TestARGBAtRoundtrip(t *testing.T) {
	img := NewARGB(image.Rect(0, 0, 1, 1))

	want := color.RGBA{R: 12, G: 34, B: 56, A: 255}
	img.Set(0, 0, want)
	if got := img.At(0, 0); got != want {
		t.Errorf("At = %v, want %v", got, want)
	}
}

func TestWrapARGBSharesBuffer(t *testing.T) {
	pix := make([]byte, 4*4*2)
	img := WrapARGB(pix, 4*4, image.Rect(0, 0, 4, 2))

	img.Set(3, 1, color.RGBA{A: 255})
	if pix[img.PixOffset(3, 1)+3] != 255 {
		t.Error("write through the wrapper did not reach the backing slice")
	}
}
