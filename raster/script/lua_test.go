// lua_test.go

package script

import (
	"testing"

	"github.com/intuitionamiga/fixedraster"
)

func TestLuaVertexFunctionTranslatesX(t *testing.T) {
	fn, err := NewLuaVertexFunction(`x = x + 1.0`)
	if err != nil {
		t.Fatalf("NewLuaVertexFunction: %v", err)
	}
	defer fn.Close()

	v := raster.Vec4{X: raster.FixedFromFloat64(2), Y: 0, Z: 0, W: raster.One}
	fn.Transform(&v)

	if got := v.X.Float64(); got < 2.9 || got > 3.1 {
		t.Errorf("x = %v, want ~3", got)
	}
}

func TestLuaVertexFunctionLeavesUntouchedComponents(t *testing.T) {
	fn, err := NewLuaVertexFunction(`z = 0`)
	if err != nil {
		t.Fatalf("NewLuaVertexFunction: %v", err)
	}
	defer fn.Close()

	v := raster.Vec4{X: raster.FixedFromFloat64(5), Y: raster.FixedFromFloat64(7), Z: raster.FixedFromFloat64(9), W: raster.One}
	fn.Transform(&v)

	if got := v.X.Float64(); got < 4.9 || got > 5.1 {
		t.Errorf("x = %v, want ~5 (untouched)", got)
	}
	if got := v.Y.Float64(); got < 6.9 || got > 7.1 {
		t.Errorf("y = %v, want ~7 (untouched)", got)
	}
}

func TestLuaVertexFunctionScriptErrorLeavesVertexUnchanged(t *testing.T) {
	fn, err := NewLuaVertexFunction(`error("boom")`)
	if err != nil {
		t.Fatalf("NewLuaVertexFunction: %v", err)
	}
	defer fn.Close()

	want := raster.Vec4{X: raster.FixedFromFloat64(1), Y: raster.FixedFromFloat64(2), Z: raster.FixedFromFloat64(3), W: raster.One}
	got := want
	fn.Transform(&got)

	if got != want {
		t.Errorf("vertex modified after script error: got %+v, want %+v", got, want)
	}
}
