package core

import (
	"github.com/cockroachdb/errors"
	vk "github.com/goki/vulkan"
)

// SwapchainSupport bundles what one (device, surface) pair can do: the
// surface capabilities and the supported formats and present modes, in
// driver order. It is a pure query result; adequacy is judged by the caller.
type SwapchainSupport struct {
	Capabilities vk.SurfaceCapabilities
	Formats      []vk.SurfaceFormat
	PresentModes []vk.PresentMode
}

// Adequate reports whether the device can present at all: at least one
// format and at least one present mode.
func (s SwapchainSupport) Adequate() bool {
	return len(s.Formats) > 0 && len(s.PresentModes) > 0
}

// ProbeSwapchainSupport runs the three independent surface queries with no
// filtering.
func ProbeSwapchainSupport(pd vk.PhysicalDevice, surface vk.Surface) (SwapchainSupport, error) {
	var support SwapchainSupport

	if err := vk.Error(vk.GetPhysicalDeviceSurfaceCapabilities(pd, surface, &support.Capabilities)); err != nil {
		return SwapchainSupport{}, errors.Wrap(err, "vk.GetPhysicalDeviceSurfaceCapabilities()")
	}
	support.Capabilities.Deref()

	var formatCount uint32
	if err := vk.Error(vk.GetPhysicalDeviceSurfaceFormats(pd, surface, &formatCount, nil)); err != nil {
		return SwapchainSupport{}, errors.Wrap(err, "vk.GetPhysicalDeviceSurfaceFormats()")
	}
	if formatCount > 0 {
		support.Formats = make([]vk.SurfaceFormat, formatCount)
		if err := vk.Error(vk.GetPhysicalDeviceSurfaceFormats(pd, surface, &formatCount, support.Formats)); err != nil {
			return SwapchainSupport{}, errors.Wrap(err, "vk.GetPhysicalDeviceSurfaceFormats()")
		}
		for i := range support.Formats {
			support.Formats[i].Deref()
		}
	}

	var modeCount uint32
	if err := vk.Error(vk.GetPhysicalDeviceSurfacePresentModes(pd, surface, &modeCount, nil)); err != nil {
		return SwapchainSupport{}, errors.Wrap(err, "vk.GetPhysicalDeviceSurfacePresentModes()")
	}
	if modeCount > 0 {
		support.PresentModes = make([]vk.PresentMode, modeCount)
		if err := vk.Error(vk.GetPhysicalDeviceSurfacePresentModes(pd, surface, &modeCount, support.PresentModes)); err != nil {
			return SwapchainSupport{}, errors.Wrap(err, "vk.GetPhysicalDeviceSurfacePresentModes()")
		}
	}

	return support, nil
}
