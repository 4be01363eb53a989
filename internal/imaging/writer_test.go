package imaging

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func TestSave_RoundTrip(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 12, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 12; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 20), G: uint8(y * 30), B: 5, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := Save(img, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load after Save failed: %v", err)
	}
	bounds := got.Bounds()
	if bounds.Dx() != 12 || bounds.Dy() != 8 {
		t.Errorf("dimensions after round trip: got %dx%d, want 12x8", bounds.Dx(), bounds.Dy())
	}

	// PNG is lossless, so the pixel content must survive exactly.
	reloaded := ToNRGBA(got)
	for i := range img.Pix {
		if reloaded.Pix[i] != img.Pix[i] {
			t.Fatalf("pixel data diverges at byte %d", i)
		}
	}
}

func TestSave_UnsupportedExtension(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	path := filepath.Join(t.TempDir(), "out.xyz")
	if err := Save(img, path); err == nil {
		t.Error("Save should fail for an unknown extension")
	}
}

func TestSmooth_NoopForZeroRadius(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 5, 5))
	if got := Smooth(img, 0); got != img {
		t.Error("zero radius should return the input unchanged")
	}
	if got := Smooth(img, -1); got != img {
		t.Error("negative radius should return the input unchanged")
	}
}

func TestSmooth_SoftensEdges(t *testing.T) {
	// Hard black/white edge down the middle.
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			c := color.NRGBA{A: 255}
			if x >= 5 {
				c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}

	got := Smooth(img, 1.5)
	if got.Bounds() != img.Bounds() {
		t.Fatalf("bounds changed: got %v, want %v", got.Bounds(), img.Bounds())
	}

	// A pixel on the dark side of the edge should have picked up some
	// brightness from its white neighbors.
	edge := got.NRGBAAt(4, 5)
	if edge.R == 0 {
		t.Error("edge pixel not smoothed, still pure black")
	}
	// Far from the edge the image should stay essentially untouched.
	corner := got.NRGBAAt(0, 0)
	if corner.R > 30 {
		t.Errorf("corner pixel brightened too much: %v", corner)
	}
}
