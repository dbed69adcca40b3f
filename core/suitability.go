package core

import (
	"strings"

	"github.com/cockroachdb/errors"
	vk "github.com/goki/vulkan"
)

// EvaluateDevice applies the acceptance checks in fixed order: queue family
// resolution, required device extensions, swapchain adequacy. It is a pure
// filter, not a scorer; on success it returns the resolved queue family
// indices so the caller need not resolve twice.
func EvaluateDevice(pd vk.PhysicalDevice, surface vk.Surface, requiredExts []string) (QueueFamilyIndices, error) {
	indices, err := ResolveQueueFamilies(pd, surface)
	if err != nil {
		return QueueFamilyIndices{}, err
	}

	available, err := deviceExtensionNames(pd)
	if err != nil {
		return QueueFamilyIndices{}, err
	}
	if missing := missingNames(requiredExts, available); len(missing) > 0 {
		return QueueFamilyIndices{}, errors.Wrapf(ErrExtensionsMissing, "%s", strings.Join(missing, ", "))
	}

	support, err := ProbeSwapchainSupport(pd, surface)
	if err != nil {
		return QueueFamilyIndices{}, err
	}
	if !support.Adequate() {
		return QueueFamilyIndices{}, errors.Wrapf(ErrSwapchainInsufficient,
			"%d formats, %d present modes", len(support.Formats), len(support.PresentModes))
	}

	return indices, nil
}

func deviceExtensionNames(pd vk.PhysicalDevice) ([]string, error) {
	var extCount uint32
	if err := vk.Error(vk.EnumerateDeviceExtensionProperties(pd, "", &extCount, nil)); err != nil {
		return nil, errors.Wrap(err, "vk.EnumerateDeviceExtensionProperties()")
	}
	exts := make([]vk.ExtensionProperties, extCount)
	if err := vk.Error(vk.EnumerateDeviceExtensionProperties(pd, "", &extCount, exts)); err != nil {
		return nil, errors.Wrap(err, "vk.EnumerateDeviceExtensionProperties()")
	}

	names := make([]string, len(exts))
	for i := range exts {
		exts[i].Deref()
		names[i] = vk.ToString(exts[i].ExtensionName[:])
	}
	return names, nil
}
