// host.go - Vulkan-backed present path for the fixed-point rasterizer

// Package gpuhost is an optional, hardware-accelerated *presentation* path:
// the triangle pipeline itself still runs entirely in fixed-point integer
// math on the CPU (raster.Context never touches the GPU); this package only
// owns getting the resulting 5-5-5 framebuffer onto a GPU-visible buffer
// through github.com/goki/vulkan, as a software/hardware dual-backend split
// alongside hosts/ebitenhost, at a fraction of a full rasterizer's scope —
// there is no triangle pipeline, depth test or blend state here, only an
// upload path.
package gpuhost

import (
	"fmt"
	"sync"
	"unsafe"

	vk "github.com/goki/vulkan"

	"github.com/intuitionamiga/fixedraster"
	"github.com/intuitionamiga/fixedraster/hosts"
)

var (
	initOnce sync.Once
	initErr  error
)

func ensureLoader() error {
	initOnce.Do(func() {
		if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
			initErr = &hosts.HostError{Operation: "load vulkan library", Details: "SetDefaultGetInstanceProcAddr", Err: err}
			return
		}
		if err := vk.Init(); err != nil {
			initErr = &hosts.HostError{Operation: "init vulkan loader", Details: "vk.Init", Err: err}
			return
		}
	})
	return initErr
}

// Host implements raster.Plotter and raster.Presenter, staging an expanded
// RGBA8888 framebuffer in host-visible, host-coherent GPU memory. Present
// flushes the CPU-side 5-5-5 buffer into that memory; a real window
// integration would chain a transfer from this buffer into a swapchain
// image, which is deliberately out of scope here.
type Host struct {
	width, height int

	instance       vk.Instance
	physicalDevice vk.PhysicalDevice
	device         vk.Device
	queueFamily    uint32
	queue          vk.Queue

	buffer       vk.Buffer
	bufferMemory vk.DeviceMemory
	mapped       unsafe.Pointer

	mu  sync.Mutex
	fb  []uint16
	rgb []byte
}

// New initializes a Vulkan instance, selects the first physical device
// exposing a graphics queue, and allocates a host-visible staging buffer
// sized width*height*4 bytes (RGBA8888). Returns an error on any machine
// without a usable Vulkan driver — callers should fall back to
// hosts/ebitenhost or hosts/termhost when this fails.
func New(width, height int) (*Host, error) {
	if err := ensureLoader(); err != nil {
		return nil, err
	}

	h := &Host{
		width:  width,
		height: height,
		fb:     make([]uint16, width*height),
		rgb:    make([]byte, width*height*4),
	}

	if err := h.createInstance(); err != nil {
		return nil, err
	}
	if err := h.selectPhysicalDevice(); err != nil {
		h.destroyInstance()
		return nil, err
	}
	if err := h.createDevice(); err != nil {
		h.destroyInstance()
		return nil, err
	}
	if err := h.createStagingBuffer(); err != nil {
		h.destroyDevice()
		h.destroyInstance()
		return nil, err
	}

	return h, nil
}

func (h *Host) createInstance() error {
	appInfo := vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		PApplicationName:   safeString("fixedraster"),
		ApplicationVersion: vk.MakeVersion(1, 0, 0),
		PEngineName:        safeString("fixedraster gpuhost"),
		EngineVersion:      vk.MakeVersion(1, 0, 0),
		ApiVersion:         vk.MakeVersion(1, 1, 0),
	}
	createInfo := vk.InstanceCreateInfo{
		SType:            vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo: &appInfo,
	}

	var instance vk.Instance
	if res := vk.CreateInstance(&createInfo, nil, &instance); res != vk.Success {
		return &hosts.HostError{Operation: "instance creation", Details: fmt.Sprintf("vkCreateInstance returned %d", res)}
	}
	h.instance = instance
	vk.InitInstance(instance)
	return nil
}

func (h *Host) destroyInstance() {
	if h.instance != nil {
		vk.DestroyInstance(h.instance, nil)
	}
}

func (h *Host) selectPhysicalDevice() error {
	var deviceCount uint32
	vk.EnumeratePhysicalDevices(h.instance, &deviceCount, nil)
	if deviceCount == 0 {
		return &hosts.HostError{Operation: "device enumeration", Details: "no Vulkan-capable GPUs found"}
	}

	devices := make([]vk.PhysicalDevice, deviceCount)
	vk.EnumeratePhysicalDevices(h.instance, &deviceCount, devices)

	for _, device := range devices {
		var queueFamilyCount uint32
		vk.GetPhysicalDeviceQueueFamilyProperties(device, &queueFamilyCount, nil)
		queueFamilies := make([]vk.QueueFamilyProperties, queueFamilyCount)
		vk.GetPhysicalDeviceQueueFamilyProperties(device, &queueFamilyCount, queueFamilies)

		for i, qf := range queueFamilies {
			qf.Deref()
			if qf.QueueFlags&vk.QueueFlags(vk.QueueGraphicsBit) != 0 {
				h.physicalDevice = device
				h.queueFamily = uint32(i)
				return nil
			}
		}
	}
	return &hosts.HostError{Operation: "device enumeration", Details: "no GPU with a graphics queue found"}
}

func (h *Host) createDevice() error {
	queuePriority := float32(1.0)
	queueInfo := vk.DeviceQueueCreateInfo{
		SType:            vk.StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: h.queueFamily,
		QueueCount:       1,
		PQueuePriorities: []float32{queuePriority},
	}
	deviceInfo := vk.DeviceCreateInfo{
		SType:                vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount: 1,
		PQueueCreateInfos:    []vk.DeviceQueueCreateInfo{queueInfo},
	}

	var device vk.Device
	if res := vk.CreateDevice(h.physicalDevice, &deviceInfo, nil, &device); res != vk.Success {
		return &hosts.HostError{Operation: "device creation", Details: fmt.Sprintf("vkCreateDevice returned %d", res)}
	}
	h.device = device

	var queue vk.Queue
	vk.GetDeviceQueue(device, h.queueFamily, 0, &queue)
	h.queue = queue
	return nil
}

func (h *Host) destroyDevice() {
	if h.device != nil {
		vk.DestroyDevice(h.device, nil)
	}
}

func (h *Host) createStagingBuffer() error {
	size := vk.DeviceSize(h.width * h.height * 4)

	bufferInfo := vk.BufferCreateInfo{
		SType:       vk.StructureTypeBufferCreateInfo,
		Size:        size,
		Usage:       vk.BufferUsageFlags(vk.BufferUsageTransferSrcBit),
		SharingMode: vk.SharingModeExclusive,
	}

	var buffer vk.Buffer
	if res := vk.CreateBuffer(h.device, &bufferInfo, nil, &buffer); res != vk.Success {
		return &hosts.HostError{Operation: "staging buffer creation", Details: fmt.Sprintf("vkCreateBuffer returned %d", res)}
	}
	h.buffer = buffer

	var memReqs vk.MemoryRequirements
	vk.GetBufferMemoryRequirements(h.device, buffer, &memReqs)
	memReqs.Deref()

	memType, err := h.findMemoryType(memReqs.MemoryTypeBits,
		vk.MemoryPropertyFlags(vk.MemoryPropertyHostVisibleBit|vk.MemoryPropertyHostCoherentBit))
	if err != nil {
		return err
	}

	allocInfo := vk.MemoryAllocateInfo{
		SType:           vk.StructureTypeMemoryAllocateInfo,
		AllocationSize:  memReqs.Size,
		MemoryTypeIndex: memType,
	}

	var memory vk.DeviceMemory
	if res := vk.AllocateMemory(h.device, &allocInfo, nil, &memory); res != vk.Success {
		return &hosts.HostError{Operation: "staging buffer creation", Details: fmt.Sprintf("vkAllocateMemory returned %d", res)}
	}
	h.bufferMemory = memory
	vk.BindBufferMemory(h.device, buffer, memory, 0)

	var mapped unsafe.Pointer
	if res := vk.MapMemory(h.device, memory, 0, size, 0, &mapped); res != vk.Success {
		return &hosts.HostError{Operation: "staging buffer creation", Details: fmt.Sprintf("vkMapMemory returned %d", res)}
	}
	h.mapped = mapped
	return nil
}

func (h *Host) findMemoryType(typeFilter uint32, properties vk.MemoryPropertyFlags) (uint32, error) {
	var memProps vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(h.physicalDevice, &memProps)
	memProps.Deref()

	for i := uint32(0); i < memProps.MemoryTypeCount; i++ {
		memProps.MemoryTypes[i].Deref()
		if (typeFilter&(1<<i)) != 0 && (memProps.MemoryTypes[i].PropertyFlags&properties) == properties {
			return i, nil
		}
	}
	return 0, &hosts.HostError{Operation: "staging buffer creation", Details: "no suitable memory type"}
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

// Present implements raster.Presenter: expand the 5-5-5 framebuffer to
// RGBA8888 and copy it into the mapped, host-coherent staging buffer.
func (h *Host) Present() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, packed := range h.fb {
		r, g, b, a := raster.Unpack555(packed)
		h.rgb[i*4+0] = r
		h.rgb[i*4+1] = g
		h.rgb[i*4+2] = b
		h.rgb[i*4+3] = a
	}

	dst := unsafe.Slice((*byte)(h.mapped), len(h.rgb))
	copy(dst, h.rgb)
}

// Close releases the Vulkan resources owned by Host.
func (h *Host) Close() {
	if h.device != nil {
		if h.bufferMemory != nil {
			vk.UnmapMemory(h.device, h.bufferMemory)
			vk.FreeMemory(h.device, h.bufferMemory, nil)
		}
		if h.buffer != nil {
			vk.DestroyBuffer(h.device, h.buffer, nil)
		}
	}
	h.destroyDevice()
	h.destroyInstance()
}

// safeString null-terminates s for the C-string fields Vulkan structs take.
func safeString(s string) string {
	return s + "\x00"
}

var (
	_ raster.Plotter   = (*Host)(nil)
	_ raster.Clearer   = (*Host)(nil)
	_ raster.Presenter = (*Host)(nil)
)
