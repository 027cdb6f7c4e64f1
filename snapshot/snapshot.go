// snapshot.go - framebuffer capture: PNG export and clipboard copy

// Package snapshot turns a 5-5-5 framebuffer into a standard image.Image,
// nearest-neighbour upscaled so thin fixed-point-rasterized edges stay
// legible at typical screen resolutions, and offers PNG and clipboard
// sinks for it.
package snapshot

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"sync"

	"golang.design/x/clipboard"
	"golang.org/x/image/draw"

	"github.com/intuitionamiga/fixedraster"
	"github.com/intuitionamiga/fixedraster/hosts"
)

// ToImage expands a 5-5-5 framebuffer of the given dimensions into an
// *image.NRGBA at its native size. Every pixel becomes opaque (alpha 255),
// matching Unpack555's contract.
func ToImage(fb []uint16, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, packed := range fb {
		r, g, b, a := raster.Unpack555(packed)
		o := img.PixOffset(i%width, i/width)
		img.Pix[o+0] = r
		img.Pix[o+1] = g
		img.Pix[o+2] = b
		img.Pix[o+3] = a
	}
	return img
}

// Upscale nearest-neighbour scales src to width*factor x height*factor,
// where width/height are src's own dimensions.
func Upscale(src image.Image, factor int) *image.NRGBA {
	if factor < 1 {
		factor = 1
	}
	b := src.Bounds()
	dstRect := image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor)
	dst := image.NewNRGBA(dstRect)
	draw.NearestNeighbor.Scale(dst, dstRect, src, b, draw.Over, nil)
	return dst
}

// WritePNG encodes img as PNG to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return &hosts.HostError{Operation: "file write", Details: "png.Encode", Err: err}
	}
	return nil
}

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// CopyToClipboard PNG-encodes img and writes it to the system clipboard as
// an image, returning a *hosts.HostError if the platform clipboard is
// unavailable (headless CI, missing X11/Wayland) or the encode fails.
func CopyToClipboard(img image.Image) error {
	clipboardOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			clipboardErr = &hosts.HostError{Operation: "clipboard copy", Details: "clipboard unavailable", Err: err}
		}
	})
	if clipboardErr != nil {
		return clipboardErr
	}

	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtImage, buf.Bytes())
	return nil
}
