package core

import (
	"testing"

	vk "github.com/goki/vulkan"
	"github.com/stretchr/testify/require"
)

func TestNegotiateDiagnosticsOff(t *testing.T) {
	windowExts := []string{"VK_KHR_surface", "VK_KHR_xlib_surface"}

	support := NegotiateInstanceSupport(windowExts, false)

	require.Empty(t, support.Layers)
	for _, ext := range windowExts {
		require.Contains(t, support.Extensions, ext)
	}
	require.NotContains(t, support.Extensions, vk.ExtDebugReportExtensionName)
}

func TestNegotiateDiagnosticsOn(t *testing.T) {
	windowExts := []string{"VK_KHR_surface"}

	support := NegotiateInstanceSupport(windowExts, true)

	require.Contains(t, support.Extensions, "VK_KHR_surface")
	require.Contains(t, support.Extensions, vk.ExtDebugReportExtensionName)
	require.Equal(t, []string{ValidationLayerName}, support.Layers)
}

func TestNegotiateDoesNotAliasWindowExtensions(t *testing.T) {
	windowExts := make([]string, 1, 4)
	windowExts[0] = "VK_KHR_surface"

	support := NegotiateInstanceSupport(windowExts, true)

	require.Equal(t, []string{"VK_KHR_surface"}, windowExts)
	require.GreaterOrEqual(t, len(support.Extensions), 2)
}

func TestApplyPortability(t *testing.T) {
	support := InstanceSupport{Extensions: []string{"VK_KHR_surface", "VK_EXT_metal_surface"}}

	applyPortability(&support)

	require.True(t, support.Portability)
	require.Equal(t, []string{
		"VK_KHR_surface",
		"VK_EXT_metal_surface",
		vk.KhrGetPhysicalDeviceProperties2ExtensionName,
		vk.KhrPortabilityEnumerationExtensionName,
	}, support.Extensions)
	require.Equal(t, vk.InstanceCreateFlags(vk.InstanceCreateEnumeratePortabilityBit), support.Flags)
}

func TestDeviceExtensionsMirrorPortability(t *testing.T) {
	required := []string{vk.KhrSwapchainExtensionName}

	plain := InstanceSupport{}
	require.Equal(t, required, plain.DeviceExtensions(required))

	portable := InstanceSupport{Portability: true}
	require.Equal(t,
		[]string{vk.KhrSwapchainExtensionName, portabilitySubsetExtensionName},
		portable.DeviceExtensions(required))

	require.Equal(t, []string{vk.KhrSwapchainExtensionName}, required)
}
