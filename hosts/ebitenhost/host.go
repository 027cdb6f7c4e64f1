// host.go - ebiten-backed Plotter/Clearer/Presenter

// Package ebitenhost renders a raster.Context's output through an ebiten
// window: the rasterizer still runs entirely in fixed-point integer math
// on the CPU, this package only owns the RGBA8888 window surface and the
// 5-5-5 -> RGBA8888 pixel expansion, which ebiten's Draw callback performs
// every frame.
package ebitenhost

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/intuitionamiga/fixedraster"
	"github.com/intuitionamiga/fixedraster/hosts"
)

// pollKeys lists the keys Update checks once per frame. Each one that was
// just pressed, Escape included, is forwarded to the registered handler;
// the host itself takes no action on any key, so the driver decides what
// Escape and the arrow keys do without pulling in a full keyboard-to-byte
// terminal emulation layer.
var pollKeys = []ebiten.Key{
	ebiten.KeyEscape,
	ebiten.KeyArrowUp,
	ebiten.KeyArrowDown,
	ebiten.KeyArrowLeft,
	ebiten.KeyArrowRight,
}

// Host implements raster.Plotter, raster.Clearer and raster.Presenter over
// an in-memory 5-5-5 framebuffer that Draw expands to RGBA8888 and blits
// to the window on every ebiten frame.
type Host struct {
	width, height int

	mu   sync.RWMutex
	fb   []uint16 // width*height, 5-5-5 packed
	rgba []byte   // width*height*4, refreshed by Draw every frame

	window  *ebiten.Image
	running bool
	ready   chan struct{}
	title   string

	keyHandler func(ebiten.Key)
}

// New builds a Host sized width x height with the given window title. It
// performs no ebiten calls itself — Start does, so a Host can be
// constructed and unit-tested (Plot/Clear/Layout) without a graphics
// driver present.
func New(width, height int, title string) *Host {
	return &Host{
		width:  width,
		height: height,
		fb:     make([]uint16, width*height),
		rgba:   make([]byte, width*height*4),
		ready:  make(chan struct{}, 1),
		title:  title,
	}
}

// Start configures and launches the ebiten game loop on its own goroutine,
// blocking until the first Draw call so callers can rely on the window
// being visible once Start returns.
func (h *Host) Start() error {
	if h.running {
		return nil
	}
	h.running = true

	ebiten.SetWindowSize(h.width*2, h.height*2)
	ebiten.SetWindowTitle(h.title)
	ebiten.SetWindowResizable(true)

	errCh := make(chan error, 1)
	go func() {
		if err := ebiten.RunGame(h); err != nil {
			errCh <- &hosts.HostError{Operation: "window creation", Details: "ebiten.RunGame", Err: err}
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-h.ready:
		return nil
	}
}

// SetKeyHandler registers fn to be called once per frame for every poll key
// (see pollKeys) that was just pressed. A nil fn disables polling.
func (h *Host) SetKeyHandler(fn func(ebiten.Key)) {
	h.mu.Lock()
	h.keyHandler = fn
	h.mu.Unlock()
}

// Plot implements raster.Plotter.
func (h *Host) Plot(x, y uint16, color uint16) {
	if int(x) >= h.width || int(y) >= h.height {
		return
	}
	h.mu.Lock()
	h.fb[int(y)*h.width+int(x)] = color
	h.mu.Unlock()
}

// Clear implements raster.Clearer.
func (h *Host) Clear() {
	h.mu.Lock()
	for i := range h.fb {
		h.fb[i] = 0
	}
	h.mu.Unlock()
}

// Present implements raster.Presenter and does nothing: Draw expands the
// framebuffer to RGBA on ebiten's own goroutine every frame, whether or
// not Present has been called, so a partly drawn frame can be shown.
func (h *Host) Present() {}

func (h *Host) Update() error {
	if !h.running {
		return ebiten.Termination
	}
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	h.handleKeyboardInput()
	return nil
}

func (h *Host) handleKeyboardInput() {
	h.mu.RLock()
	handler := h.keyHandler
	h.mu.RUnlock()
	if handler == nil {
		return
	}
	for _, key := range pollKeys {
		if inpututil.IsKeyJustPressed(key) {
			handler(key)
		}
	}
}

func (h *Host) Draw(screen *ebiten.Image) {
	if h.window == nil {
		h.window = ebiten.NewImage(h.width, h.height)
	}

	h.mu.RLock()
	for i, packed := range h.fb {
		r, g, b, a := raster.Unpack555(packed)
		h.rgba[i*4+0] = r
		h.rgba[i*4+1] = g
		h.rgba[i*4+2] = b
		h.rgba[i*4+3] = a
	}
	h.mu.RUnlock()

	h.window.WritePixels(h.rgba)
	screen.DrawImage(h.window, nil)

	select {
	case h.ready <- struct{}{}:
	default:
	}
}

func (h *Host) Layout(_, _ int) (int, int) {
	return h.width, h.height
}

var (
	_ raster.Plotter   = (*Host)(nil)
	_ raster.Clearer   = (*Host)(nil)
	_ raster.Presenter = (*Host)(nil)
)
