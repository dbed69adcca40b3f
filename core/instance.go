package core

import (
	"runtime"
	"unsafe"

	"github.com/cockroachdb/errors"
	vk "github.com/goki/vulkan"
)

// DefaultVulkanApplicationInfo application info describes a Vulkan application
var DefaultVulkanApplicationInfo = &vk.ApplicationInfo{
	SType:              vk.StructureTypeApplicationInfo,
	ApiVersion:         uint32(vk.MakeVersion(1, 0, 0)),
	ApplicationVersion: uint32(vk.MakeVersion(1, 0, 0)),
	PApplicationName:   "Vulkan Tutorial (Go)\x00",
	PEngineName:        "No Engine\x00",
}

// VulkanInstance owns one live connection to the Vulkan driver, the optional
// diagnostics messenger attached to it, and the physical device enumeration.
type VulkanInstance struct {
	instance  vk.Instance
	messenger vk.DebugReportCallback

	availableDevices []vk.PhysicalDevice
}

// NewVulkanInstance creates the instance with the negotiated support set.
// With diagnostics enabled it first verifies the validation layer is
// available, chains a messenger into instance creation so violations during
// vkCreateInstance itself are reported, and installs the standalone
// messenger immediately after. The chained messenger only lives for the
// duration of the create call.
func NewVulkanInstance(appInfo *vk.ApplicationInfo, support InstanceSupport, diagnostics bool) (*VulkanInstance, error) {
	if diagnostics {
		if err := checkLayerSupport(support.Layers); err != nil {
			return nil, err
		}
	}

	instanceInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		Flags:                   support.Flags,
		PApplicationInfo:        appInfo,
		EnabledExtensionCount:   uint32(len(support.Extensions)),
		PpEnabledExtensionNames: safeStrings(support.Extensions),
		EnabledLayerCount:       uint32(len(support.Layers)),
		PpEnabledLayerNames:     safeStrings(support.Layers),
	}
	// Ref on a freshly built struct is nil; PassRef allocates the C copy.
	// chained must stay alive until the create call returns.
	var chained *vk.DebugReportCallbackCreateInfo
	if diagnostics {
		chained = messengerCreateInfo()
		ref, _ := chained.PassRef()
		instanceInfo.PNext = unsafe.Pointer(ref)
	}

	v := &VulkanInstance{}
	err := vk.Error(vk.CreateInstance(&instanceInfo, nil, &v.instance))
	runtime.KeepAlive(chained)
	if err != nil {
		return nil, errors.Wrap(err, "vk.CreateInstance()")
	}
	vk.InitInstance(v.instance)

	if diagnostics {
		if err := vk.Error(vk.CreateDebugReportCallback(v.instance, messengerCreateInfo(), nil, &v.messenger)); err != nil {
			v.Destroy()
			return nil, errors.Wrap(err, "vk.CreateDebugReportCallback()")
		}
	}

	if err := v.enumerateDevices(); err != nil {
		v.DestroyMessenger()
		v.Destroy()
		return nil, err
	}

	return v, nil
}

func checkLayerSupport(required []string) error {
	available, err := supportedLayerNames()
	if err != nil {
		return err
	}
	if missing := missingNames(required, available); len(missing) > 0 {
		return errors.Wrapf(ErrLayerUnavailable, "%v", missing)
	}
	return nil
}

func supportedLayerNames() ([]string, error) {
	var layerCount uint32
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&layerCount, nil)); err != nil {
		return nil, errors.Wrap(err, "vk.EnumerateInstanceLayerProperties()")
	}
	layers := make([]vk.LayerProperties, layerCount)
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&layerCount, layers)); err != nil {
		return nil, errors.Wrap(err, "vk.EnumerateInstanceLayerProperties()")
	}

	names := make([]string, len(layers))
	for i := range layers {
		layers[i].Deref()
		names[i] = vk.ToString(layers[i].LayerName[:])
	}
	return names, nil
}

func (v *VulkanInstance) enumerateDevices() error {
	var deviceCount uint32
	if err := vk.Error(vk.EnumeratePhysicalDevices(v.instance, &deviceCount, nil)); err != nil {
		return errors.Wrap(err, "vk.EnumeratePhysicalDevices()")
	}
	v.availableDevices = make([]vk.PhysicalDevice, deviceCount)
	if err := vk.Error(vk.EnumeratePhysicalDevices(v.instance, &deviceCount, v.availableDevices)); err != nil {
		return errors.Wrap(err, "vk.EnumeratePhysicalDevices()")
	}
	return nil
}

// AvailableDevices returns the physical devices in driver enumeration order.
func (v *VulkanInstance) AvailableDevices() []vk.PhysicalDevice {
	return v.availableDevices
}

// Handle returns the raw instance handle.
func (v *VulkanInstance) Handle() vk.Instance {
	return v.instance
}

// DestroyMessenger tears down the diagnostics messenger if one was
// installed. Must run before Destroy. Safe to call more than once.
func (v *VulkanInstance) DestroyMessenger() {
	if v.messenger != vk.NullDebugReportCallback {
		vk.DestroyDebugReportCallback(v.instance, v.messenger, nil)
		v.messenger = vk.NullDebugReportCallback
	}
}

// Destroy releases the instance itself. Every dependent handle, the
// messenger included, must already be gone. Safe to call more than once.
func (v *VulkanInstance) Destroy() {
	if v.instance != nil {
		v.availableDevices = nil
		vk.DestroyInstance(v.instance, nil)
		v.instance = nil
	}
}
