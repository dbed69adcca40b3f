package core

import (
	vk "github.com/goki/vulkan"
)

// ValidationLayerName is the single layer enabled when diagnostics are on.
const ValidationLayerName = "VK_LAYER_KHRONOS_validation"

// portabilitySubsetExtensionName is not exported by the binding.
const portabilitySubsetExtensionName = "VK_KHR_portability_subset"

// InstanceSupport is the negotiated instance-level capability set: the
// extensions and layers to enable, the instance creation flags, and whether
// the portability path was taken.
type InstanceSupport struct {
	Extensions  []string
	Layers      []string
	Flags       vk.InstanceCreateFlags
	Portability bool
}

// NegotiateInstanceSupport computes the extension and layer set for instance
// creation. It starts from the windowing collaborator's required extensions,
// appends the debug report extension and the validation layer when
// diagnostics are enabled, and applies the platform defaults, which on macOS
// take the portability path.
func NegotiateInstanceSupport(windowExts []string, diagnostics bool) InstanceSupport {
	support := InstanceSupport{
		Extensions: append([]string(nil), windowExts...),
	}

	if diagnostics {
		support.Extensions = append(support.Extensions, vk.ExtDebugReportExtensionName)
		support.Layers = append(support.Layers, ValidationLayerName)
	}

	platformDefaults(&support)

	return support
}

// applyPortability requests enumeration of non-conformant devices. MoltenVK
// loaders from SDK 1.3.216 onward hide such devices unless this is asked
// for explicitly.
func applyPortability(s *InstanceSupport) {
	s.Extensions = append(s.Extensions,
		vk.KhrGetPhysicalDeviceProperties2ExtensionName,
		vk.KhrPortabilityEnumerationExtensionName)
	s.Flags |= vk.InstanceCreateFlags(vk.InstanceCreateEnumeratePortabilityBit)
	s.Portability = true
}

// DeviceExtensions mirrors the instance-level portability decision at device
// scope: the required list, plus the portability subset extension when the
// portability path was taken.
func (s InstanceSupport) DeviceExtensions(required []string) []string {
	exts := append([]string(nil), required...)
	if s.Portability {
		exts = append(exts, portabilitySubsetExtensionName)
	}
	return exts
}
