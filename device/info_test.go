package device

import (
	"testing"

	vk "github.com/goki/vulkan"
	"github.com/stretchr/testify/require"
)

func TestTotalHeapMemory(t *testing.T) {
	props := vk.PhysicalDeviceMemoryProperties{MemoryHeapCount: 2}
	props.MemoryHeaps[0] = vk.MemoryHeap{Size: 1 << 30}
	props.MemoryHeaps[1] = vk.MemoryHeap{Size: 1 << 20}

	// Round-trip through the C representation the way a driver query
	// arrives: after the parent Deref the heap structs carry only C
	// references and each one must be dereferenced itself.
	props.PassRef()
	props.Deref()

	require.Equal(t, vk.DeviceSize(1<<30+1<<20), totalHeapMemory(&props))
}

func TestTotalHeapMemoryNoHeaps(t *testing.T) {
	props := vk.PhysicalDeviceMemoryProperties{}
	props.PassRef()
	props.Deref()

	require.Equal(t, vk.DeviceSize(0), totalHeapMemory(&props))
}
