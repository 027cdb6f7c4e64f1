// host_test.go
//
// New() requires a real Vulkan driver, which is not available in every
// test environment; these tests exercise the CPU-side framebuffer logic
// directly against a Host built without going through New(), the same way
// Plot/Clear/Present never touch the Vulkan fields.

package gpuhost

import "testing"

func newTestHost(w, h int) *Host {
	return &Host{
		width:  w,
		height: h,
		fb:     make([]uint16, w*h),
		rgb:    make([]byte, w*h*4),
	}
}

func TestPlotWritesFramebuffer(t *testing.T) {
	h := newTestHost(4, 4)
	h.Plot(1, 2, 0x1234)
	if got := h.fb[2*4+1]; got != 0x1234 {
		t.Errorf("fb[2*4+1] = %#x, want 0x1234", got)
	}
}

func TestPlotOutOfBoundsIgnored(t *testing.T) {
	h := newTestHost(4, 4)
	h.Plot(10, 10, 0x1234)
	for i, v := range h.fb {
		if v != 0 {
			t.Errorf("fb[%d] = %#x, want 0", i, v)
		}
	}
}

func TestClearResetsFramebuffer(t *testing.T) {
	h := newTestHost(2, 2)
	h.Plot(0, 0, 0xFFFF)
	h.Clear()
	for i, v := range h.fb {
		if v != 0 {
			t.Errorf("fb[%d] = %#x after Clear, want 0", i, v)
		}
	}
}
