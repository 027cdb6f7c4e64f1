// context.go - draw context and pipeline driver

package raster

// DrawKind selects the primitive assembled from the vertex/color arrays.
type DrawKind uint8

const (
	Points DrawKind = iota + 1
	Lines
	Triangles
)

// VertexFunction is the user-supplied per-vertex transform hook. It is
// invoked once per pre-clip vertex, in place, before clipping.
type VertexFunction interface {
	Transform(v *Vec4)
}

// VertexFunc adapts a plain function to VertexFunction.
type VertexFunc func(v *Vec4)

func (f VertexFunc) Transform(v *Vec4) { f(v) }

// Context owns the non-owning vertex/color array pointers, the viewport,
// the user transform hook, and the fixed-capacity pre-/post-clip buffers.
// It performs no allocation once constructed. The vertex/color slices
// installed by SetVertexPointer/SetColorPointer are borrowed for the
// duration of each DrawArray call; the caller must not mutate them
// concurrently with a call in flight.
type Context struct {
	plotter  Plotter
	viewW    int16
	viewH    int16

	vertexPtr     []Fixed
	vertexComps   uint8 // 2 or 3
	colorPtr      []uint16

	vertexFn VertexFunction

	kind DrawKind

	preVerts  []Vec4
	preColors []uint16

	postVerts  []Vec4
	postColors []uint16

	clipScratch [27]Vec4
}

// NewContext builds a Context whose pre-/post-clip buffers hold at most
// maxVerts entries, replacing a compile-time array bound with a runtime one.
func NewContext(plotter Plotter, maxVerts int) *Context {
	return &Context{
		plotter:    plotter,
		preVerts:   make([]Vec4, maxVerts),
		preColors:  make([]uint16, maxVerts),
		postVerts:  make([]Vec4, maxVerts),
		postColors: make([]uint16, maxVerts),
	}
}

// SetVertexPointer installs a non-owning, tightly packed vertex array with
// componentCount in {2,3} components per vertex. The slice must out-live
// every subsequent DrawArray call until replaced.
func (c *Context) SetVertexPointer(componentCount uint8, vertices []Fixed) {
	c.vertexComps = componentCount
	c.vertexPtr = vertices
}

// SetColorPointer installs a non-owning per-primitive color array (one
// 5-5-5 color per vertex for Points, per pair for Lines, per triple for
// Triangles).
func (c *Context) SetColorPointer(colors []uint16) {
	c.colorPtr = colors
}

// SetViewport sets the window dimensions used by the NDC->window mapping.
func (c *Context) SetViewport(w, h int16) {
	c.viewW = w
	c.viewH = h
}

// SetVertexFunction installs the per-vertex transform hook.
func (c *Context) SetVertexFunction(fn VertexFunction) {
	c.vertexFn = fn
}

// DrawArray copies count vertices starting at first into the pre-clip
// buffer, widens them to Vec4, loads the matching per-primitive colors,
// and runs the pipeline. It is a silent no-op if the vertex or color
// pointer is unset, per the no-fail-returns core error policy.
func (c *Context) DrawArray(kind DrawKind, first, count int) {
	if c.vertexPtr == nil || c.colorPtr == nil {
		return
	}

	c.kind = kind

	nVerts := count
	if nVerts > len(c.preVerts) {
		nVerts = len(c.preVerts)
	}

	switch c.vertexComps {
	case 2:
		for i := 0; i < nVerts; i++ {
			base := (first + i) * 2
			c.preVerts[i] = Vec4{c.vertexPtr[base], c.vertexPtr[base+1], 0, One}
		}
	case 3:
		for i := 0; i < nVerts; i++ {
			base := (first + i) * 3
			c.preVerts[i] = Vec4{c.vertexPtr[base], c.vertexPtr[base+1], c.vertexPtr[base+2], One}
		}
	default:
		return
	}

	var colorsPerGroup int
	switch kind {
	case Points:
		colorsPerGroup = 1
	case Lines:
		colorsPerGroup = 2
	case Triangles:
		colorsPerGroup = 3
	default:
		return
	}

	nGroups := nVerts / colorsPerGroup
	for i := 0; i < nGroups; i++ {
		colorIdx := first/colorsPerGroup + i
		if colorIdx >= len(c.colorPtr) {
			break
		}
		c.preColors[i] = c.colorPtr[colorIdx]
	}

	c.vertexPipeline(nVerts, nGroups)
}

func (c *Context) vertexPipeline(nVerts, nGroups int) {
	if c.vertexFn != nil {
		for i := 0; i < nVerts; i++ {
			c.vertexFn.Transform(&c.preVerts[i])
		}
	}

	postCount := 0

	switch c.kind {
	case Points:
		for i := 0; i < nVerts; i++ {
			if ClipPoint(c.preVerts[i]) {
				c.postVerts[postCount] = perspectiveDivide(c.preVerts[i])
				c.postColors[postCount] = c.preColors[i]
				postCount++
			}
		}

	case Lines:
		// Full homogeneous line clipping is optional for this core; lines
		// pass through with endpoint culling only, per spec.md §4.F.
		for i := 0; i+1 < nVerts; i += 2 {
			a, b := c.preVerts[i], c.preVerts[i+1]
			if !ClipPoint(a) || !ClipPoint(b) {
				continue
			}
			col := c.preColors[i/2]
			a, b = perspectiveDivide(a), perspectiveDivide(b)
			c.postVerts[postCount] = a
			c.postColors[postCount] = col
			postCount++
			c.postVerts[postCount] = b
			c.postColors[postCount] = col
			postCount++
		}

	case Triangles:
		for i := 0; i+2 < nVerts; i += 3 {
			col := c.preColors[i/3]
			n := ClipTriangle(c.preVerts[i], c.preVerts[i+1], c.preVerts[i+2], &c.clipScratch)

			for v := 0; v < n; v++ {
				vert := c.clipScratch[v]
				// perspective divide -> NDC
				vert.X = vert.X.Div(vert.W)
				vert.Y = vert.Y.Div(vert.W)
				vert.Z = vert.Z.Div(vert.W)
				if postCount >= len(c.postVerts) {
					break
				}
				c.postVerts[postCount] = vert
				if v%3 == 0 {
					c.postColors[postCount/3] = col
				}
				postCount++
			}
		}
	}

	halfW := FixedFromInt(int(c.viewW)).Div(FixedFromInt(2))
	halfH := FixedFromInt(int(c.viewH)).Div(FixedFromInt(2))
	halfFixed := Fixed(fixedHalf)

	for i := 0; i < postCount; i++ {
		v := c.postVerts[i]
		v.X = halfW.Mul(v.X).Add(halfW)
		v.Y = halfH.Mul(v.Y).Neg().Add(halfH)
		v.Z = v.Z.Mul(halfFixed).Add(halfFixed)
		c.postVerts[i] = v
	}

	switch c.kind {
	case Points:
		for i := 0; i < postCount; i++ {
			c.plotPoint(c.postVerts[i], c.postColors[i])
		}
	case Lines:
		for i := 0; i+1 < postCount; i += 2 {
			a, b := c.postVerts[i], c.postVerts[i+1]
			LineFixed(c.plotter, a.X, a.Y, b.X, b.Y, c.postColors[i])
		}
	case Triangles:
		for i := 0; i+2 < postCount; i += 3 {
			a, b, cc := c.postVerts[i], c.postVerts[i+1], c.postVerts[i+2]
			if !frontFacing(a, b, cc) {
				continue
			}
			Triangle(c.plotter,
				int16(a.X.Int()), int16(a.Y.Int()),
				int16(b.X.Int()), int16(b.Y.Int()),
				int16(cc.X.Int()), int16(cc.Y.Int()),
				c.postColors[i/3])
		}
	}
}

// perspectiveDivide maps a clip-space vertex to NDC by dividing x, y, z by w.
func perspectiveDivide(v Vec4) Vec4 {
	v.X = v.X.Div(v.W)
	v.Y = v.Y.Div(v.W)
	v.Z = v.Z.Div(v.W)
	return v
}

func (c *Context) plotPoint(v Vec4, color uint16) {
	x, y := v.X.Int(), v.Y.Int()
	if x < 0 || y < 0 {
		return
	}
	c.plotter.Plot(uint16(x), uint16(y), color)
}

// LineFixed truncates fixed-point window coordinates to integers and draws
// a line between them; a small convenience so Lines can share the pipeline
// shape with Triangles above.
func LineFixed(p Plotter, x0, y0, x1, y1 Fixed, color uint16) {
	Line(p, int16(x0.Int()), int16(y0.Int()), int16(x1.Int()), int16(y1.Int()), color)
}

// frontFacing reports whether the screen-space triangle (a,b,c) has a
// negative signed area, i.e. is wound front-facing in this pipeline's
// y-down pixel convention.
func frontFacing(a, b, c Vec4) bool {
	area := b.X.Sub(a.X).Mul(c.Y.Sub(a.Y)).Sub(c.X.Sub(a.X).Mul(b.Y.Sub(a.Y)))
	return area < 0
}
