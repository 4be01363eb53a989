package diff

import "testing"

func maskWithBlocks(width, height int, blocks []Region, class PixelClass) *Mask {
	m := newMask(width, height)
	for _, b := range blocks {
		for y := b.Y; y < b.Y+b.Height; y++ {
			for x := b.X; x < b.X+b.Width; x++ {
				m.Pix[y*width+x] = class
			}
		}
	}
	return m
}

func TestRegions_Empty(t *testing.T) {
	m := newMask(20, 20)
	if got := m.Regions(); len(got) != 0 {
		t.Errorf("regions of clean mask: got %v, want none", got)
	}
}

func TestRegions_SingleCluster(t *testing.T) {
	m := maskWithBlocks(50, 50, []Region{{X: 10, Y: 12, Width: 5, Height: 3}}, Different)

	got := m.Regions()
	if len(got) != 1 {
		t.Fatalf("region count: got %d, want 1", len(got))
	}
	want := Region{X: 10, Y: 12, Width: 5, Height: 3}
	if got[0] != want {
		t.Errorf("region: got %+v, want %+v", got[0], want)
	}
}

func TestRegions_DistantClustersStaySeparate(t *testing.T) {
	m := maskWithBlocks(100, 100, []Region{
		{X: 5, Y: 5, Width: 4, Height: 4},
		{X: 70, Y: 70, Width: 6, Height: 2},
	}, Different)

	got := m.Regions()
	if len(got) != 2 {
		t.Fatalf("region count: got %d, want 2", len(got))
	}
}

func TestRegions_NearbyClustersMerge(t *testing.T) {
	// Two blocks 6 pixels apart horizontally, within the merge distance.
	m := maskWithBlocks(100, 100, []Region{
		{X: 10, Y: 10, Width: 4, Height: 4},
		{X: 20, Y: 10, Width: 4, Height: 4},
	}, Different)

	got := m.Regions()
	if len(got) != 1 {
		t.Fatalf("region count: got %d, want 1 merged region", len(got))
	}
	want := Region{X: 10, Y: 10, Width: 14, Height: 4}
	if got[0] != want {
		t.Errorf("merged region: got %+v, want %+v", got[0], want)
	}
}

func TestRegions_DiagonalPixelsConnect(t *testing.T) {
	m := newMask(10, 10)
	m.Pix[2*10+2] = Different
	m.Pix[3*10+3] = Different
	m.Pix[4*10+4] = DifferentDarker

	got := m.Regions()
	if len(got) != 1 {
		t.Fatalf("region count: got %d, want 1", len(got))
	}
	want := Region{X: 2, Y: 2, Width: 3, Height: 3}
	if got[0] != want {
		t.Errorf("region: got %+v, want %+v", got[0], want)
	}
}

func TestRegions_IgnoresAntialiasedPixels(t *testing.T) {
	m := maskWithBlocks(30, 30, []Region{{X: 5, Y: 5, Width: 10, Height: 10}}, Antialiased)

	if got := m.Regions(); len(got) != 0 {
		t.Errorf("anti-aliased pixels formed regions: %v", got)
	}
}
