package core

import (
	"github.com/cockroachdb/errors"
	vk "github.com/goki/vulkan"
)

// VulkanDevice is an active connection to one selected physical device with
// a fixed set of enabled extensions and created queues. The queue handles
// die with the device and are never destroyed separately.
type VulkanDevice struct {
	device  vk.Device
	indices QueueFamilyIndices

	graphicsQueue vk.Queue
	presentQueue  vk.Queue
}

// queueCreateInfos builds one single-queue request per unique family index,
// each at priority 1.0. Graphics and presentation sharing a family yields
// exactly one request.
func queueCreateInfos(indices QueueFamilyIndices) []vk.DeviceQueueCreateInfo {
	unique := indices.UniqueIndices()
	infos := make([]vk.DeviceQueueCreateInfo, len(unique))
	for i, family := range unique {
		infos[i] = vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: family,
			QueueCount:       1,
			PQueuePriorities: []float32{1.0},
		}
	}
	return infos
}

// NewVulkanDevice creates the logical device for the selected physical
// device, enabling the required device extensions (plus the portability
// subset when negotiated) and mirroring the instance-level layer decision.
// Queue handles are retrieved immediately; when graphics and presentation
// share a family both handles refer to the same queue, which is expected.
func NewVulkanDevice(pd vk.PhysicalDevice, indices QueueFamilyIndices, support InstanceSupport, requiredExts []string) (*VulkanDevice, error) {
	if !indices.Complete() {
		return nil, errors.Wrap(ErrQueueFamiliesMissing, "device creation")
	}

	queueInfos := queueCreateInfos(indices)
	extensions := support.DeviceExtensions(requiredExts)

	deviceInfo := vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       queueInfos,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: safeStrings(extensions),
		EnabledLayerCount:       uint32(len(support.Layers)),
		PpEnabledLayerNames:     safeStrings(support.Layers),
		PEnabledFeatures:        []vk.PhysicalDeviceFeatures{{}},
	}

	d := &VulkanDevice{indices: indices}
	if err := vk.Error(vk.CreateDevice(pd, &deviceInfo, nil, &d.device)); err != nil {
		return nil, errors.Wrap(err, "vk.CreateDevice()")
	}

	vk.GetDeviceQueue(d.device, *indices.Graphics, 0, &d.graphicsQueue)
	vk.GetDeviceQueue(d.device, *indices.Present, 0, &d.presentQueue)

	return d, nil
}

// Handle returns the raw device handle.
func (d *VulkanDevice) Handle() vk.Device {
	return d.device
}

// Indices returns the queue family indices the device was created with.
func (d *VulkanDevice) Indices() QueueFamilyIndices {
	return d.indices
}

// GraphicsQueue returns the queue used to submit rendering work.
func (d *VulkanDevice) GraphicsQueue() vk.Queue {
	return d.graphicsQueue
}

// PresentQueue returns the queue used to present to the surface. May equal
// GraphicsQueue.
func (d *VulkanDevice) PresentQueue() vk.Queue {
	return d.presentQueue
}

// Destroy releases the device and with it both queues. Safe to call more
// than once.
func (d *VulkanDevice) Destroy() {
	if d.device != nil {
		vk.DestroyDevice(d.device, nil)
		d.device = nil
		d.graphicsQueue = nil
		d.presentQueue = nil
	}
}
