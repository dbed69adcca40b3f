package core

import (
	"github.com/cockroachdb/errors"
	vk "github.com/goki/vulkan"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// QueueFamilyIndices holds the resolved queue family indices needed for
// rendering. Both must be set for a device to be usable; they may name the
// same family.
type QueueFamilyIndices struct {
	Graphics *uint32
	Present  *uint32
}

// Complete reports whether both searches succeeded.
func (q QueueFamilyIndices) Complete() bool {
	return q.Graphics != nil && q.Present != nil
}

// UniqueIndices returns the distinct family indices in ascending order.
func (q QueueFamilyIndices) UniqueIndices() []uint32 {
	set := make(map[uint32]struct{}, 2)
	if q.Graphics != nil {
		set[*q.Graphics] = struct{}{}
	}
	if q.Present != nil {
		set[*q.Present] = struct{}{}
	}

	unique := maps.Keys(set)
	slices.Sort(unique)
	return unique
}

// findQueueFamilies scans the families in driver order. Graphics takes the
// first family with the graphics bit; presentation takes the first family
// canPresent accepts. The two scans are independent and may land on
// different indices.
func findQueueFamilies(flags []vk.QueueFlags, canPresent func(uint32) (bool, error)) (QueueFamilyIndices, error) {
	var indices QueueFamilyIndices
	for i := range flags {
		index := uint32(i)

		if indices.Graphics == nil && flags[i]&vk.QueueFlags(vk.QueueGraphicsBit) != 0 {
			indices.Graphics = &index
		}

		if indices.Present == nil {
			supported, err := canPresent(index)
			if err != nil {
				return QueueFamilyIndices{}, err
			}
			if supported {
				indices.Present = &index
			}
		}

		if indices.Complete() {
			break
		}
	}

	if !indices.Complete() {
		return QueueFamilyIndices{}, errors.Wrapf(ErrQueueFamiliesMissing,
			"graphics found: %t, presentation found: %t",
			indices.Graphics != nil, indices.Present != nil)
	}
	return indices, nil
}

// ResolveQueueFamilies inspects the device's queue families against the
// given surface.
func ResolveQueueFamilies(pd vk.PhysicalDevice, surface vk.Surface) (QueueFamilyIndices, error) {
	var familyCount uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(pd, &familyCount, nil)
	families := make([]vk.QueueFamilyProperties, familyCount)
	vk.GetPhysicalDeviceQueueFamilyProperties(pd, &familyCount, families)

	flags := make([]vk.QueueFlags, len(families))
	for i := range families {
		families[i].Deref()
		flags[i] = families[i].QueueFlags
	}

	return findQueueFamilies(flags, func(index uint32) (bool, error) {
		var supported vk.Bool32
		if err := vk.Error(vk.GetPhysicalDeviceSurfaceSupport(pd, index, surface, &supported)); err != nil {
			return false, errors.Wrap(err, "vk.GetPhysicalDeviceSurfaceSupport()")
		}
		return supported.B(), nil
	})
}
