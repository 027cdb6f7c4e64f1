// lua.go - Lua-scriptable vertex transform hook

// Package script implements raster.VertexFunction with a user-supplied Lua
// program, so a caller can reshape geometry at draw time without
// recompiling the host binary.
package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/intuitionamiga/fixedraster"
)

// LuaVertexFunction runs a Lua chunk once per vertex. The chunk reads the
// vertex's x/y/z/w as Lua globals (floating point, not fixed-point — the
// conversion happens at the boundary) and may reassign any of them; values
// left untouched pass through unchanged.
type LuaVertexFunction struct {
	state *lua.LState
	chunk *lua.FunctionProto
}

// NewLuaVertexFunction compiles source once and returns a VertexFunction
// that runs it for every vertex passed to Transform. The returned value is
// not safe for concurrent use by multiple goroutines; one LuaVertexFunction
// per Context.
func NewLuaVertexFunction(source string) (*LuaVertexFunction, error) {
	state := lua.NewState()

	chunk, err := state.LoadString(source)
	if err != nil {
		state.Close()
		return nil, fmt.Errorf("script: compile vertex function: %w", err)
	}

	return &LuaVertexFunction{state: state, chunk: chunk.Proto}, nil
}

// Close releases the underlying Lua state. Callers that built a
// LuaVertexFunction should Close it once the Context using it is discarded.
func (f *LuaVertexFunction) Close() {
	f.state.Close()
}

// Transform implements raster.VertexFunction. A script error leaves the
// vertex unmodified and is otherwise silent, matching the core pipeline's
// no-fail-returns policy — a mis-typed script should degrade the frame, not
// crash the caller.
func (f *LuaVertexFunction) Transform(v *raster.Vec4) {
	L := f.state

	L.SetGlobal("x", lua.LNumber(v.X.Float64()))
	L.SetGlobal("y", lua.LNumber(v.Y.Float64()))
	L.SetGlobal("z", lua.LNumber(v.Z.Float64()))
	L.SetGlobal("w", lua.LNumber(v.W.Float64()))

	fn := L.NewFunctionFromProto(f.chunk)
	L.Push(fn)
	if err := L.PCall(0, 0, nil); err != nil {
		return
	}

	v.X = raster.FixedFromFloat64(float64(lua.LVAsNumber(L.GetGlobal("x"))))
	v.Y = raster.FixedFromFloat64(float64(lua.LVAsNumber(L.GetGlobal("y"))))
	v.Z = raster.FixedFromFloat64(float64(lua.LVAsNumber(L.GetGlobal("z"))))
	v.W = raster.FixedFromFloat64(float64(lua.LVAsNumber(L.GetGlobal("w"))))
}

var _ raster.VertexFunction = (*LuaVertexFunction)(nil)
