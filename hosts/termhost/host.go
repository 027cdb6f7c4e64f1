// host.go - terminal Plotter rendering ANSI-256 background blocks

// Package termhost renders a raster.Context's output directly to the
// controlling terminal: each pair of vertically adjacent pixels becomes one
// upper-half-block glyph, the top pixel as its ANSI-256 foreground color
// and the bottom pixel as its background, so two rows are packed per
// printed line and the aspect ratio roughly matches square pixels. Sized from the
// terminal itself via golang.org/x/term — the "no GPU hardware" case made
// literal.
package termhost

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/intuitionamiga/fixedraster"
)

// Host implements raster.Plotter, raster.Clearer and raster.Presenter,
// buffering pixels in memory and flushing them as ANSI escape sequences on
// Present.
type Host struct {
	width, height int
	out           io.Writer

	mu sync.Mutex
	fb []uint16
}

// Size queries the controlling terminal's character-cell dimensions via
// term.GetSize, falling back to 80x24 when stdout is not a terminal (e.g.
// output piped to a file).
func Size() (cols, rows int) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return 80, 24
	}
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80, 24
	}
	return cols, rows
}

// New builds a Host sized width x height pixels, writing to out. Two
// pixel rows are packed per terminal line, so the caller should size
// height to twice the available terminal rows.
func New(width, height int, out io.Writer) *Host {
	return &Host{
		width:  width,
		height: height,
		out:    out,
		fb:     make([]uint16, width*height),
	}
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

// Present implements raster.Presenter: it writes the whole framebuffer as
// ANSI-256 half-block glyphs, moving the cursor home first so repeated
// frames redraw in place rather than scrolling.
func (h *Host) Present() {
	h.mu.Lock()
	defer h.mu.Unlock()

	w := bufio.NewWriter(h.out)
	defer w.Flush()

	fmt.Fprint(w, "\x1b[H")
	for y := 0; y+1 < h.height; y += 2 {
		for x := 0; x < h.width; x++ {
			top := ansi256(h.fb[y*h.width+x])
			bot := ansi256(h.fb[(y+1)*h.width+x])
			fmt.Fprintf(w, "\x1b[38;5;%dm\x1b[48;5;%dm▀", top, bot)
		}
		fmt.Fprint(w, "\x1b[0m\n")
	}
}

// ansi256 maps a 5-5-5 packed color to an entry in the 6x6x6 ANSI-256
// color cube (codes 16-231) by scaling each 8-bit channel to 0..5 with
// truncation; it does not pick the nearest cube entry.
func ansi256(packed uint16) int {
	r, g, b, _ := raster.Unpack555(packed)
	ri := int(r) * 5 / 255
	gi := int(g) * 5 / 255
	bi := int(b) * 5 / 255
	return 16 + 36*ri + 6*gi + bi
}

var (
	_ raster.Plotter   = (*Host)(nil)
	_ raster.Clearer   = (*Host)(nil)
	_ raster.Presenter = (*Host)(nil)
)
