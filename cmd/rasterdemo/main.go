// main.go - spinning-cube driver for the fixedraster pipeline

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/intuitionamiga/fixedraster"
	"github.com/intuitionamiga/fixedraster/hosts/ebitenhost"
	"github.com/intuitionamiga/fixedraster/hosts/termhost"
	"github.com/intuitionamiga/fixedraster/raster/mesh"
)

func main() {
	backend := flag.String("backend", "ebiten", "presentation backend: ebiten or term")
	width := flag.Int("width", 320, "framebuffer width in pixels")
	height := flag.Int("height", 240, "framebuffer height in pixels")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rasterdemo [options]\n\nSpins a cube through the fixed-point rasterizer onto the chosen backend.\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := log.New(os.Stderr, "rasterdemo: ", log.LstdFlags)

	verts := mesh.Cube(raster.FixedFromFloat64(1), raster.FixedFromFloat64(1), raster.FixedFromFloat64(1))
	colors := mesh.FaceColors(
		raster.Pack555(255, 60, 60),
		raster.Pack555(60, 255, 60),
		raster.Pack555(60, 60, 255),
		raster.Pack555(255, 255, 60),
		raster.Pack555(60, 255, 255),
		raster.Pack555(255, 60, 255),
	)

	switch *backend {
	case "ebiten":
		runEbiten(logger, *width, *height, verts, colors)
	case "term":
		runTerm(logger, *width, *height, verts, colors)
	default:
		logger.Fatalf("unknown backend %q (want ebiten or term)", *backend)
	}
}

func runEbiten(logger *log.Logger, width, height int, verts []raster.Fixed, colors []uint16) {
	host := ebitenhost.New(width, height, "fixedraster demo")
	ctx := raster.NewContext(host, len(verts)/3)
	ctx.SetViewport(int16(width), int16(height))
	ctx.SetVertexPointer(3, verts)
	ctx.SetColorPointer(colors)

	proj := raster.Perspective(raster.FixedFromFloat64(60), raster.FixedFromInt(width).Div(raster.FixedFromInt(height)), raster.FixedFromFloat64(0.1), raster.FixedFromInt(100))
	view := raster.TranslationVec3(raster.Vec3{Z: raster.FixedFromFloat64(-4)})

	angle := raster.Zero
	var paused atomic.Bool
	start := time.Now()
	ctx.SetVertexFunction(raster.VertexFunc(func(v *raster.Vec4) {
		rot := raster.RotationY(angle).Mul(raster.RotationX(angle.Div(raster.FixedFromInt(2))))
		mv := view.Mul(rot)
		mvp := proj.Mul(mv)
		*v = mvp.MulVec4(*v)
	}))

	host.SetKeyHandler(func(key ebiten.Key) {
		switch key {
		case ebiten.KeyEscape:
			logger.Println("escape pressed, exiting")
			os.Exit(0)
		case ebiten.KeyArrowUp, ebiten.KeyArrowDown:
			paused.Store(!paused.Load())
		}
	})

	if err := host.Start(); err != nil {
		logger.Fatalf("start ebiten host: %v", err)
	}

	for range time.Tick(16 * time.Millisecond) {
		if !paused.Load() {
			angle = raster.FixedFromFloat64(time.Since(start).Seconds())
		}
		host.Clear()
		ctx.DrawArray(raster.Triangles, 0, len(verts)/3)
		host.Present()
	}
}

// resolveTermSize fills in width/height from the terminal's own character
// grid (cols x rows, two framebuffer rows packed per terminal row) whenever
// the caller passed a non-positive value for either.
func resolveTermSize(width, height, cols, rows int) (int, int) {
	if width <= 0 {
		width = cols
	}
	if height <= 0 {
		height = rows * 2
	}
	return width, height
}

func runTerm(logger *log.Logger, width, height int, verts []raster.Fixed, colors []uint16) {
	cols, rows := termhost.Size()
	width, height = resolveTermSize(width, height, cols, rows)

	host := termhost.New(width, height, os.Stdout)
	ctx := raster.NewContext(host, len(verts)/3)
	ctx.SetViewport(int16(width), int16(height))
	ctx.SetVertexPointer(3, verts)
	ctx.SetColorPointer(colors)

	proj := raster.Perspective90DegSquare(raster.FixedFromFloat64(0.1), raster.FixedFromInt(100))
	view := raster.TranslationVec3(raster.Vec3{Z: raster.FixedFromFloat64(-4)})

	start := time.Now()
	ctx.SetVertexFunction(raster.VertexFunc(func(v *raster.Vec4) {
		angle := raster.FixedFromFloat64(time.Since(start).Seconds())
		mv := view.Mul(raster.RotationY(angle))
		mvp := proj.Mul(mv)
		*v = mvp.MulVec4(*v)
	}))

	logger.Printf("rendering %dx%d to the terminal, ctrl-C to stop", width, height)
	for range time.Tick(66 * time.Millisecond) {
		host.Clear()
		ctx.DrawArray(raster.Triangles, 0, len(verts)/3)
		host.Present()
	}
}
