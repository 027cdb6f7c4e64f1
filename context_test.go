// context_test.go - end-to-end pipeline scenarios

package raster

import "testing"

func TestContextPlotSinglePoint(t *testing.T) {
	rec := newRecordingPlotter()
	ctx := NewContext(rec, 16)
	ctx.SetViewport(20, 20)
	// A point at the NDC origin with no vertex function: NDC (0,0) maps to
	// the window center (10,10) under x*halfW+halfW, -y*halfH+halfH.
	verts := []Fixed{0, 0}
	colors := []uint16{Pack555(255, 0, 0)}
	ctx.SetVertexPointer(2, verts)
	ctx.SetColorPointer(colors)
	ctx.DrawArray(Points, 0, 1)

	if len(rec.pixels) != 1 {
		t.Fatalf("got %d plots, want 1", len(rec.pixels))
	}
	want := pixel{10, 10}
	if rec.pixels[0] != want {
		t.Errorf("plotted at %+v, want %+v", rec.pixels[0], want)
	}
}

func TestContextLineNoOpWithoutPointers(t *testing.T) {
	rec := newRecordingPlotter()
	ctx := NewContext(rec, 16)
	ctx.SetViewport(10, 10)
	// Neither SetVertexPointer nor SetColorPointer called: DrawArray must
	// be a silent no-op, per the no-fail-returns error policy.
	ctx.DrawArray(Lines, 0, 2)
	if len(rec.pixels) != 0 {
		t.Errorf("expected no plots with unset pointers, got %d", len(rec.pixels))
	}
}

func TestContextViewportIdentityVertexMapsToCenter(t *testing.T) {
	rec := newRecordingPlotter()
	ctx := NewContext(rec, 16)
	ctx.SetViewport(240, 160)

	verts := []Fixed{0, 0, 0}
	colors := []uint16{Pack555(0, 255, 0)}
	ctx.SetVertexPointer(3, verts)
	ctx.SetColorPointer(colors)
	ctx.DrawArray(Points, 0, 1)

	if len(rec.pixels) != 1 {
		t.Fatalf("got %d plots, want 1", len(rec.pixels))
	}
	want := pixel{120, 80}
	if rec.pixels[0] != want {
		t.Errorf("plotted at %+v, want %+v", rec.pixels[0], want)
	}
}

func TestContextPerspectiveProjectionCentersVertex(t *testing.T) {
	rec := newRecordingPlotter()
	ctx := NewContext(rec, 16)
	ctx.SetViewport(240, 160)

	proj := Perspective90DegSquare(One, FixedFromInt(1000))
	ctx.SetVertexFunction(VertexFunc(func(v *Vec4) {
		*v = proj.MulVec4(*v)
	}))

	verts := []Fixed{0, 0, FixedFromInt(-2)}
	colors := []uint16{Pack555(0, 0, 255)}
	ctx.SetVertexPointer(3, verts)
	ctx.SetColorPointer(colors)
	ctx.DrawArray(Points, 0, 1)

	if len(rec.pixels) != 1 {
		t.Fatalf("got %d plots, want 1", len(rec.pixels))
	}
	want := pixel{120, 80}
	if rec.pixels[0] != want {
		t.Errorf("plotted at %+v, want %+v (projected center)", rec.pixels[0], want)
	}
}

func TestContextBackFacingTriangleCulled(t *testing.T) {
	rec := newRecordingPlotter()
	ctx := NewContext(rec, 16)
	ctx.SetViewport(100, 100)

	// Front-facing in this pipeline requires a negative signed screen-space
	// area; this winding yields a positive area and must be culled.
	verts := []Fixed{
		FixedFromFloat64(-0.5), FixedFromFloat64(-0.5), 0,
		FixedFromFloat64(-0.5), FixedFromFloat64(-0.3), 0,
		FixedFromFloat64(-0.3), FixedFromFloat64(-0.5), 0,
	}
	colors := []uint16{Pack555(255, 255, 255)}
	ctx.SetVertexPointer(3, verts)
	ctx.SetColorPointer(colors)
	ctx.DrawArray(Triangles, 0, 3)

	if len(rec.pixels) != 0 {
		t.Errorf("expected back-facing triangle to be culled, got %d plots", len(rec.pixels))
	}
}

func TestContextFrontFacingTriangleFills(t *testing.T) {
	rec := newRecordingPlotter()
	ctx := NewContext(rec, 16)
	ctx.SetViewport(100, 100)

	// The culled triangle above with its last two vertices swapped: the
	// screen-space signed area is negative, so it is front-facing.
	verts := []Fixed{
		FixedFromFloat64(-0.5), FixedFromFloat64(-0.5), 0,
		FixedFromFloat64(-0.3), FixedFromFloat64(-0.5), 0,
		FixedFromFloat64(-0.5), FixedFromFloat64(-0.3), 0,
	}
	colors := []uint16{Pack555(255, 255, 255)}
	ctx.SetVertexPointer(3, verts)
	ctx.SetColorPointer(colors)
	ctx.DrawArray(Triangles, 0, 3)

	if len(rec.pixels) == 0 {
		t.Error("expected front-facing triangle to produce plots")
	}
}
