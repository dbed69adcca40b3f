package core

import (
	vk "github.com/goki/vulkan"
	log "github.com/sirupsen/logrus"
)

// release is a named teardown step recorded during bring-up.
type release struct {
	name string
	fn   func()
}

// VulkanContext owns the whole graphics bring-up chain: instance, optional
// debug messenger, surface, selected physical device and logical device.
// Teardown runs the recorded steps in reverse acquisition order.
type VulkanContext struct {
	instance *VulkanInstance
	surface  vk.Surface
	physical vk.PhysicalDevice
	device   *VulkanDevice
	support  InstanceSupport

	releases []release
}

func (c *VulkanContext) push(name string, fn func()) {
	c.releases = append(c.releases, release{name: name, fn: fn})
}

// NewVulkanContext performs the full bring-up sequence. On any failure the
// resources acquired so far are released before the error is returned, so a
// nil context never leaks handles.
func NewVulkanContext(cfg Configuration, provider SurfaceProvider) (*VulkanContext, error) {
	c := &VulkanContext{}

	c.support = NegotiateInstanceSupport(provider.InstanceExtensions(), cfg.App.Diagnostics)

	appInfo := *DefaultVulkanApplicationInfo
	appInfo.PApplicationName = safeString(cfg.App.Title)

	instance, err := NewVulkanInstance(&appInfo, c.support, cfg.App.Diagnostics)
	if err != nil {
		return nil, err
	}
	c.instance = instance
	c.push("instance", instance.Destroy)
	if cfg.App.Diagnostics {
		c.push("messenger", instance.DestroyMessenger)
	}

	surface, err := provider.CreateSurface(instance.Handle())
	if err != nil {
		c.Destroy()
		return nil, err
	}
	c.surface = surface
	c.push("surface", func() {
		if c.surface != vk.NullSurface {
			vk.DestroySurface(instance.Handle(), c.surface, nil)
			c.surface = vk.NullSurface
		}
	})

	physical, indices, err := SelectPhysicalDevice(instance.AvailableDevices(), surface, cfg.Renderer.DeviceExtensions)
	if err != nil {
		c.Destroy()
		return nil, err
	}
	c.physical = physical

	device, err := NewVulkanDevice(physical, indices, c.support, cfg.Renderer.DeviceExtensions)
	if err != nil {
		c.Destroy()
		return nil, err
	}
	c.device = device
	c.push("device", device.Destroy)

	return c, nil
}

// Instance returns the owning instance wrapper.
func (c *VulkanContext) Instance() *VulkanInstance {
	return c.instance
}

// Surface returns the presentation surface handle.
func (c *VulkanContext) Surface() vk.Surface {
	return c.surface
}

// PhysicalDevice returns the selected physical device.
func (c *VulkanContext) PhysicalDevice() vk.PhysicalDevice {
	return c.physical
}

// Device returns the logical device wrapper.
func (c *VulkanContext) Device() *VulkanDevice {
	return c.device
}

// Support returns the negotiated instance support decision.
func (c *VulkanContext) Support() InstanceSupport {
	return c.support
}

// Destroy tears everything down in reverse acquisition order. Calling it
// again after it has run is a no-op.
func (c *VulkanContext) Destroy() {
	for i := len(c.releases) - 1; i >= 0; i-- {
		log.WithField("handle", c.releases[i].name).Trace("releasing")
		c.releases[i].fn()
	}
	c.releases = nil
}
