package core

import (
	vk "github.com/goki/vulkan"
)

// SurfaceProvider is the windowing collaborator. It supplies the instance
// extensions the platform window type needs and creates the rendering
// surface once an instance exists. The core treats both as black boxes.
type SurfaceProvider interface {
	// InstanceExtensions returns the instance extensions required to
	// present to this provider's window type.
	InstanceExtensions() []string

	// CreateSurface creates a surface tying the given instance to the
	// provider's window.
	CreateSurface(instance vk.Instance) (vk.Surface, error)
}
