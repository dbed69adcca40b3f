package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDestroyRunsReleasesInReverseOrder(t *testing.T) {
	c := &VulkanContext{}

	var order []string
	for _, name := range []string{"instance", "messenger", "surface", "device"} {
		name := name
		c.push(name, func() {
			order = append(order, name)
		})
	}

	c.Destroy()
	require.Equal(t, []string{"device", "surface", "messenger", "instance"}, order)
}

func TestDestroyIsIdempotent(t *testing.T) {
	c := &VulkanContext{}

	calls := 0
	c.push("instance", func() { calls++ })

	c.Destroy()
	c.Destroy()
	require.Equal(t, 1, calls)
}

func TestDestroyWithoutReleases(t *testing.T) {
	(&VulkanContext{}).Destroy()
}

func TestDestroyMessengerWithoutMessenger(t *testing.T) {
	v := &VulkanInstance{}
	v.DestroyMessenger()
	v.DestroyMessenger()
}
