package device

import (
	vk "github.com/goki/vulkan"
)

// PhysicalDeviceInfo describes available physical properties of a rendering device
type PhysicalDeviceInfo struct {
	ID            int
	VendorID      int
	DriverVersion uint32
	APIVersion    uint32
	Name          string
	Invalid       bool
	Extensions    []string
	Layers        []string
	Memory        vk.DeviceSize
}

// ReadInfo queries a single physical device for its identity, extension and
// layer lists and total local memory. A failed query marks the info Invalid
// but the remaining queries still run, so a partial report stays useful.
func ReadInfo(pd vk.PhysicalDevice) PhysicalDeviceInfo {
	var info PhysicalDeviceInfo

	var numDeviceExtensions uint32
	if err := vk.Error(vk.EnumerateDeviceExtensionProperties(pd, "", &numDeviceExtensions, nil)); err != nil {
		info.Invalid = true
	}
	deviceExt := make([]vk.ExtensionProperties, numDeviceExtensions)
	if err := vk.Error(vk.EnumerateDeviceExtensionProperties(pd, "", &numDeviceExtensions, deviceExt)); err != nil {
		info.Invalid = true
	}
	for _, ext := range deviceExt {
		ext.Deref()
		info.Extensions = append(info.Extensions, vk.ToString(ext.ExtensionName[:]))
	}

	var numDeviceLayers uint32
	if err := vk.Error(vk.EnumerateDeviceLayerProperties(pd, &numDeviceLayers, nil)); err != nil {
		info.Invalid = true
	}
	deviceLayers := make([]vk.LayerProperties, numDeviceLayers)
	if err := vk.Error(vk.EnumerateDeviceLayerProperties(pd, &numDeviceLayers, deviceLayers)); err != nil {
		info.Invalid = true
	}
	for _, layer := range deviceLayers {
		layer.Deref()
		info.Layers = append(info.Layers, vk.ToString(layer.LayerName[:]))
	}

	var memoryProperties vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(pd, &memoryProperties)
	memoryProperties.Deref()
	info.Memory = totalHeapMemory(&memoryProperties)

	var physicalDeviceProperties vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(pd, &physicalDeviceProperties)
	physicalDeviceProperties.Deref()
	info.ID = (int)(physicalDeviceProperties.DeviceID)
	info.VendorID = (int)(physicalDeviceProperties.VendorID)
	info.Name = vk.ToString(physicalDeviceProperties.DeviceName[:])
	info.DriverVersion = physicalDeviceProperties.DriverVersion
	info.APIVersion = physicalDeviceProperties.ApiVersion

	return info
}

// totalHeapMemory sums the heap sizes. The parent struct's Deref only
// stores each heap's C reference, so every heap needs its own Deref before
// Size is readable.
func totalHeapMemory(props *vk.PhysicalDeviceMemoryProperties) vk.DeviceSize {
	var total vk.DeviceSize
	for iMem := (uint32)(0); iMem < props.MemoryHeapCount; iMem++ {
		props.MemoryHeaps[iMem].Deref()
		total += props.MemoryHeaps[iMem].Size
	}
	return total
}

// ReadAllInfo queries every enumerated physical device.
func ReadAllInfo(devices []vk.PhysicalDevice) []PhysicalDeviceInfo {
	infos := make([]PhysicalDeviceInfo, len(devices))
	for i, pd := range devices {
		infos[i] = ReadInfo(pd)
	}
	return infos
}
