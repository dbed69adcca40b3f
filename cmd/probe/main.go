// Command probe creates a windowless instance and prints a JSON report of
// every physical device the loader exposes.
package main

import (
	"fmt"
	"runtime"

	vk "github.com/goki/vulkan"
	log "github.com/sirupsen/logrus"

	"github.com/goopey7/vulkan-tutorial/core"
	"github.com/goopey7/vulkan-tutorial/device"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
		log.WithError(err).Fatal("vulkan loader not found")
	}
	if err := vk.Init(); err != nil {
		log.WithError(err).Fatal("vulkan binding init failed")
	}

	// No window, no surface extensions, no validation.
	support := core.NegotiateInstanceSupport(nil, false)

	instance, err := core.NewVulkanInstance(core.DefaultVulkanApplicationInfo, support, false)
	if err != nil {
		log.WithError(err).Fatal("instance creation failed")
	}
	defer instance.Destroy()

	infos := device.ReadAllInfo(instance.AvailableDevices())
	fmt.Println(device.BuildReportString(infos))
}
