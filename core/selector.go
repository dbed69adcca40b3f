package core

import (
	vk "github.com/goki/vulkan"
	log "github.com/sirupsen/logrus"
)

// firstSuitable returns the index of the first candidate accepted by
// evaluate, scanning strictly in order. Capability rejections are logged
// with the candidate's name and skipped; any other failure aborts the scan.
// There is no ranking between passing candidates.
func firstSuitable(count int, name func(int) string, evaluate func(int) error) (int, error) {
	for i := 0; i < count; i++ {
		err := evaluate(i)
		if err == nil {
			return i, nil
		}
		if !isCapabilityError(err) {
			return 0, err
		}
		log.WithFields(log.Fields{
			"device": name(i),
			"reason": err.Error(),
		}).Info("skipping unsuitable device")
	}
	return 0, ErrNoSuitableDevice
}

// SelectPhysicalDevice picks the first device in enumeration order that
// passes EvaluateDevice against the given surface, returning it together
// with its resolved queue family indices.
func SelectPhysicalDevice(devices []vk.PhysicalDevice, surface vk.Surface, requiredExts []string) (vk.PhysicalDevice, QueueFamilyIndices, error) {
	var indices QueueFamilyIndices

	chosen, err := firstSuitable(len(devices),
		func(i int) string {
			return deviceName(devices[i])
		},
		func(i int) error {
			resolved, err := EvaluateDevice(devices[i], surface, requiredExts)
			if err != nil {
				return err
			}
			indices = resolved
			return nil
		})
	if err != nil {
		return nil, QueueFamilyIndices{}, err
	}

	log.WithField("device", deviceName(devices[chosen])).Info("selected physical device")
	return devices[chosen], indices, nil
}

func deviceName(pd vk.PhysicalDevice) string {
	var props vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(pd, &props)
	props.Deref()
	return vk.ToString(props.DeviceName[:])
}
