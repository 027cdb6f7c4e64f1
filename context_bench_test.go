// context_bench_test.go - hot-path benchmark for the scan-conversion pipeline
//
// Run with: go test -bench=DrawArray -benchmem -run="^$" .

package raster_test

import (
	"testing"

	"github.com/intuitionamiga/fixedraster"
	"github.com/intuitionamiga/fixedraster/raster/mesh"
)

type discardPlotter struct{}

func (discardPlotter) Plot(x, y uint16, color uint16) {}

func BenchmarkDrawArray_Cube(b *testing.B) {
	verts := mesh.Cube(raster.FixedFromFloat64(1), raster.FixedFromFloat64(1), raster.FixedFromFloat64(1))
	colors := mesh.FaceColors(
		raster.Pack555(255, 0, 0), raster.Pack555(0, 255, 0), raster.Pack555(0, 0, 255),
		raster.Pack555(255, 255, 0), raster.Pack555(0, 255, 255), raster.Pack555(255, 0, 255),
	)

	ctx := raster.NewContext(discardPlotter{}, len(verts)/3)
	ctx.SetViewport(320, 240)
	ctx.SetVertexPointer(3, verts)
	ctx.SetColorPointer(colors)

	proj := raster.Perspective(raster.FixedFromFloat64(60), raster.FixedFromInt(4).Div(raster.FixedFromInt(3)), raster.FixedFromFloat64(0.1), raster.FixedFromInt(100))
	view := raster.TranslationVec3(raster.Vec3{Z: raster.FixedFromFloat64(-4)})
	angle := raster.FixedFromFloat64(0.4)
	mvp := proj.Mul(view.Mul(raster.RotationY(angle)))
	ctx.SetVertexFunction(raster.VertexFunc(func(v *raster.Vec4) {
		*v = mvp.MulVec4(*v)
	}))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx.DrawArray(raster.Triangles, 0, len(verts)/3)
	}
}
