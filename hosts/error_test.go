// error_test.go

package hosts

import (
	"errors"
	"strings"
	"testing"
)

func TestHostErrorWithUnderlyingErr(t *testing.T) {
	underlying := errors.New("device lost")
	err := &HostError{Operation: "device creation", Details: "vkCreateDevice returned -4", Err: underlying}

	got := err.Error()
	if !strings.Contains(got, "device creation") || !strings.Contains(got, "device lost") {
		t.Errorf("Error() = %q, want it to mention operation and underlying error", got)
	}
	if !errors.Is(err, underlying) {
		t.Error("errors.Is did not unwrap to the underlying error")
	}
}

func TestHostErrorWithoutUnderlyingErr(t *testing.T) {
	err := &HostError{Operation: "device enumeration", Details: "no Vulkan-capable GPUs found"}
	got := err.Error()
	if !strings.Contains(got, "device enumeration") || !strings.Contains(got, "no Vulkan-capable GPUs found") {
		t.Errorf("Error() = %q, want it to mention operation and details", got)
	}
}
