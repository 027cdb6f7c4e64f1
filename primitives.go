// primitives.go - plot sink and integer scan-conversion primitives

package raster

// Plotter is the one required host sink: set pixel (x,y) to color.
// Implementations must be cheap and non-reentrant with respect to the
// Context driving them — DrawArray calls it synchronously, many times
// per frame.
type Plotter interface {
	Plot(x, y uint16, color uint16)
}

// Clearer is an optional host hook for fast whole-buffer clears.
type Clearer interface {
	Clear()
}

// Presenter is an optional host hook for flipping/presenting a frame.
type Presenter interface {
	Present()
}

// Line draws an inclusive Bresenham line from (x0,y0) to (x1,y1), using the
// steep-axis swap so the error accumulates along whichever axis has the
// larger extent. Pixel sets for Line(a,b) and Line(b,a) are identical.
func Line(p Plotter, x0, y0, x1, y1 int16, color uint16) {
	steep := abs16(y1-y0) > abs16(x1-x0)

	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}

	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := abs16(y1 - y0)
	errTerm := dx / 2
	ystep := int16(1)
	if y0 >= y1 {
		ystep = -1
	}
	y := y0

	for x := x0; x <= x1; x++ {
		if steep {
			p.Plot(uint16(y), uint16(x), color)
		} else {
			p.Plot(uint16(x), uint16(y), color)
		}

		errTerm -= dy
		if errTerm < 0 {
			y += ystep
			errTerm += dx
		}
	}
}

// LineHorizontal draws an inclusive horizontal span at row y0 between x0
// and x1 (either order).
func LineHorizontal(p Plotter, x0, y0, x1 int16, color uint16) {
	Line(p, x0, y0, x1, y0, color)
}

// LineVertical draws an inclusive vertical span at column x0 between y0
// and y1 (either order).
func LineVertical(p Plotter, x0, y0, y1 int16, color uint16) {
	Line(p, x0, y0, x0, y1, color)
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}

// Triangle scan-converts a filled triangle using only 16-bit integer
// Bresenham edge steppers: sort vertices by y, walk a long-edge stepper
// (top->bottom) and a short-edge stepper (top->mid, then mid->bot),
// emitting one LineHorizontal span per scanline. A flat (y_top==y_bot)
// triangle degenerates to a single horizontal span across min..max x.
//
// Tie-break: shared edges are not guaranteed pixel-exclusive between two
// adjoining triangles under this stepper scheme (see DESIGN.md); this
// matches the original fixed-point source's own behavior.
func Triangle(p Plotter, x0, y0, x1, y1, x2, y2 int16, color uint16) {
	topX, topY := x0, y0
	midX, midY := x1, y1
	botX, botY := x2, y2

	if topY > midY {
		topX, midX = midX, topX
		topY, midY = midY, topY
	}
	if midY > botY {
		midX, botX = botX, midX
		midY, botY = botY, midY
	}
	if topY > midY {
		topX, midX = midX, topX
		topY, midY = midY, topY
	}

	if topY == botY {
		minX, maxX := topX, topX
		if midX < minX {
			minX = midX
		}
		if midX > maxX {
			maxX = midX
		}
		if botX < minX {
			minX = botX
		}
		if botX > maxX {
			maxX = botX
		}
		LineHorizontal(p, minX, topY, maxX, color)
		return
	}

	// Stepper A: long edge, top -> bottom.
	dxA := botX - topX
	dyA := botY - topY
	stepA := int16(1)
	if dxA < 0 {
		dxA = -dxA
		stepA = -1
	}
	errA := dyA >> 1
	xA := topX

	// Stepper B: short edge, top -> mid first.
	dxB := midX - topX
	dyB := midY - topY
	stepB := int16(1)
	if dxB < 0 {
		dxB = -dxB
		stepB = -1
	}
	errB := dyB >> 1
	xB := topX

	for y := topY; y < midY; y++ {
		LineHorizontal(p, xA, y, xB, color)

		errA -= dxA
		for errA < 0 {
			xA += stepA
			errA += dyA
		}

		if dyB > 0 {
			errB -= dxB
			for errB < 0 {
				xB += stepB
				errB += dyB
			}
		}
	}

	// Re-init stepper B for the lower edge, mid -> bot.
	dxB = botX - midX
	dyB = botY - midY
	stepB = 1
	if dxB < 0 {
		dxB = -dxB
		stepB = -1
	}
	errB = dyB >> 1
	xB = midX

	for y := midY; y <= botY; y++ {
		LineHorizontal(p, xA, y, xB, color)

		errA -= dxA
		for errA < 0 {
			xA += stepA
			errA += dyA
		}

		if dyB > 0 {
			errB -= dxB
			for errB < 0 {
				xB += stepB
				errB += dyB
			}
		}
	}
}
