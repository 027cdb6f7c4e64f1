// primitives_test.go

package raster

import (
	"sort"
	"testing"
)

type pixel struct{ x, y int16 }

type recordingPlotter struct {
	pixels []pixel
	color  map[pixel]uint16
}

func newRecordingPlotter() *recordingPlotter {
	return &recordingPlotter{color: make(map[pixel]uint16)}
}

func (r *recordingPlotter) Plot(x, y uint16, color uint16) {
	p := pixel{int16(x), int16(y)}
	r.pixels = append(r.pixels, p)
	r.color[p] = color
}

func (r *recordingPlotter) set() map[pixel]bool {
	s := make(map[pixel]bool, len(r.pixels))
	for _, p := range r.pixels {
		s[p] = true
	}
	return s
}

func setsEqual(a, b map[pixel]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

func TestLineSymmetry(t *testing.T) {
	fwd := newRecordingPlotter()
	Line(fwd, 0, 0, 10, 4, 1)
	bwd := newRecordingPlotter()
	Line(bwd, 10, 4, 0, 0, 1)

	if !setsEqual(fwd.set(), bwd.set()) {
		t.Errorf("line(a,b) != line(b,a) as sets: %v vs %v", fwd.pixels, bwd.pixels)
	}
}

func TestLineEndpointCoverage(t *testing.T) {
	p := newRecordingPlotter()
	Line(p, 2, 3, 9, 7, 1)
	s := p.set()
	if !s[pixel{2, 3}] {
		t.Error("start point not plotted")
	}
	if !s[pixel{9, 7}] {
		t.Error("end point not plotted")
	}
}

func TestLineHorizontalBuffer(t *testing.T) {
	p := newRecordingPlotter()
	LineHorizontal(p, 0, 0, 4, 1)
	want := []pixel{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}
	s := p.set()
	if len(s) != len(want) {
		t.Fatalf("got %d pixels, want %d", len(s), len(want))
	}
	for _, w := range want {
		if !s[w] {
			t.Errorf("missing pixel %+v", w)
		}
	}
}

func TestLine8Connectivity(t *testing.T) {
	p := newRecordingPlotter()
	Line(p, 0, 0, 20, 7, 1)
	sort.Slice(p.pixels, func(i, j int) bool {
		if p.pixels[i].x != p.pixels[j].x {
			return p.pixels[i].x < p.pixels[j].x
		}
		return p.pixels[i].y < p.pixels[j].y
	})
	for i := 1; i < len(p.pixels); i++ {
		dx := p.pixels[i].x - p.pixels[i-1].x
		dy := p.pixels[i].y - p.pixels[i-1].y
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
			t.Errorf("non-8-connected step %+v -> %+v", p.pixels[i-1], p.pixels[i])
		}
	}
}

func TestTriangleFlatDegenerateEmitsOneLine(t *testing.T) {
	p := newRecordingPlotter()
	Triangle(p, 0, 5, 10, 5, 4, 5, 1)
	s := p.set()
	for x := int16(0); x <= 10; x++ {
		if !s[pixel{x, 5}] {
			t.Errorf("missing pixel (%d,5)", x)
		}
	}
}

func TestTriangleFillIsConvexPerScanline(t *testing.T) {
	p := newRecordingPlotter()
	Triangle(p, 0, 0, 10, 0, 0, 10, 0xFFFF)

	byRow := make(map[int16][]int16)
	for _, px := range p.pixels {
		byRow[px.y] = append(byRow[px.y], px.x)
	}
	for y, xs := range byRow {
		sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
		minX, maxX := xs[0], xs[len(xs)-1]
		seen := make(map[int16]bool, len(xs))
		for _, x := range xs {
			seen[x] = true
		}
		for x := minX; x <= maxX; x++ {
			if !seen[x] {
				t.Errorf("row %d: gap at x=%d, not a contiguous interval", y, x)
			}
		}
	}
}

func TestTriangleRightAngleCoversExpectedSet(t *testing.T) {
	p := newRecordingPlotter()
	Triangle(p, 0, 0, 10, 0, 0, 10, 0xFFFF)
	s := p.set()
	for y := int16(0); y <= 10; y++ {
		for x := int16(0); x <= 10-y; x++ {
			if !s[pixel{x, y}] {
				t.Errorf("missing pixel (%d,%d) inside triangle", x, y)
			}
		}
	}
}
