package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSafeString(t *testing.T) {
	require.Equal(t, "VK_KHR_swapchain\x00", safeString("VK_KHR_swapchain"))
	require.Equal(t, "\x00", safeString(""))
}

func TestSafeStrings(t *testing.T) {
	require.Equal(t,
		[]string{"a\x00", "b\x00"},
		safeStrings([]string{"a", "b"}))
	require.Empty(t, safeStrings(nil))
}

func TestMissingNames(t *testing.T) {
	available := []string{"VK_KHR_swapchain", "VK_KHR_maintenance1"}

	require.Nil(t, missingNames(nil, available))
	require.Nil(t, missingNames([]string{"VK_KHR_swapchain"}, available))
	require.Equal(t,
		[]string{"VK_EXT_absent", "VK_EXT_gone"},
		missingNames([]string{"VK_EXT_absent", "VK_KHR_swapchain", "VK_EXT_gone"}, available))
	require.Equal(t,
		[]string{"VK_KHR_swapchain"},
		missingNames([]string{"VK_KHR_swapchain"}, nil))
}
