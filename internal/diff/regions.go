package diff

// Region is an axis-aligned bounding box around one connected cluster of
// differing pixels, in image coordinates.
type Region struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// mergeDistance is the gap, in pixels, below which two regions are
// considered part of the same change and merged.
const mergeDistance = 10

// Regions clusters the differing pixels of a mask into bounding boxes.
// Pixels are grouped by 8-connectivity, then nearby boxes are merged so one
// moved UI element reports as one region instead of a box per glyph.
// Anti-aliased pixels do not seed or extend regions. The result is ordered
// by first pixel encountered in row-major scan, so it is deterministic.
func (m *Mask) Regions() []Region {
	visited := make([]bool, len(m.Pix))

	var regions []Region
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			i := y*m.Width + x
			if m.Pix[i].IsDifference() && !visited[i] {
				regions = append(regions, m.floodRegion(visited, x, y))
			}
		}
	}

	return mergeRegions(regions)
}

type point struct{ x, y int }

// floodRegion grows a bounding box from (startX, startY) over the connected
// difference pixels, BFS over the 8-neighborhood.
func (m *Mask) floodRegion(visited []bool, startX, startY int) Region {
	minX, minY := startX, startY
	maxX, maxY := startX, startY

	queue := []point{{startX, startY}}
	visited[startY*m.Width+startX] = true

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if p.x < minX {
			minX = p.x
		}
		if p.x > maxX {
			maxX = p.x
		}
		if p.y < minY {
			minY = p.y
		}
		if p.y > maxY {
			maxY = p.y
		}

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := p.x+dx, p.y+dy
				if nx < 0 || nx >= m.Width || ny < 0 || ny >= m.Height {
					continue
				}
				ni := ny*m.Width + nx
				if m.Pix[ni].IsDifference() && !visited[ni] {
					visited[ni] = true
					queue = append(queue, point{nx, ny})
				}
			}
		}
	}

	return Region{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX + 1,
		Height: maxY - minY + 1,
	}
}

// mergeRegions repeatedly combines regions that overlap or sit within
// mergeDistance of each other until no pair qualifies.
func mergeRegions(regions []Region) []Region {
	if len(regions) <= 1 {
		return regions
	}

	merged := make([]Region, 0, len(regions))
	used := make([]bool, len(regions))

	for i := 0; i < len(regions); i++ {
		if used[i] {
			continue
		}

		current := regions[i]
		for again := true; again; {
			again = false
			for j := i + 1; j < len(regions); j++ {
				if used[j] {
					continue
				}
				if regionsClose(current, regions[j], mergeDistance) {
					current = combineRegions(current, regions[j])
					used[j] = true
					again = true
				}
			}
		}

		merged = append(merged, current)
	}

	return merged
}

// regionsClose reports whether the two regions overlap or leave a gap
// smaller than gap pixels between their edges. gap 0 tests plain overlap.
func regionsClose(a, b Region, gap int) bool {
	return !(a.X+a.Width+gap <= b.X || b.X+b.Width+gap <= a.X ||
		a.Y+a.Height+gap <= b.Y || b.Y+b.Height+gap <= a.Y)
}

func combineRegions(a, b Region) Region {
	minX := min(a.X, b.X)
	minY := min(a.Y, b.Y)
	maxX := max(a.X+a.Width, b.X+b.Width)
	maxY := max(a.Y+a.Height, b.Y+b.Height)
	return Region{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
