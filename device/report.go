package device

import (
	"fmt"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// versionString renders a packed Vulkan version number.
func versionString(version uint32) string {
	return fmt.Sprintf("%d.%d.%d", version>>22, (version>>12)&0x3ff, version&0xfff)
}

func (info *PhysicalDeviceInfo) printParameters(json *jwriter.ObjectState) {
	json.Name("Name").String(info.Name)
	json.Name("ID").Int(info.ID)
	json.Name("VendorID").Int(info.VendorID)
	// Driver versions use vendor-specific encodings, so the raw number
	// goes out as-is. The API version is the standard packed format.
	json.Name("DriverVersion").Int(int(info.DriverVersion))
	json.Name("APIVersion").String(versionString(info.APIVersion))
	json.Name("Memory").Int(int(info.Memory))

	if info.Invalid {
		json.Name("Invalid").Bool(true)
	}

	exts := json.Name("Extensions").Array()
	for _, ext := range info.Extensions {
		exts.String(ext)
	}
	exts.End()

	layers := json.Name("Layers").Array()
	for _, layer := range info.Layers {
		layers.String(layer)
	}
	layers.End()
}

// BuildReportString renders the queried device infos as a JSON document,
// one object per device under a top level "Devices" array.
func BuildReportString(infos []PhysicalDeviceInfo) string {
	writer := jwriter.NewWriter()

	obj := writer.Object()
	devices := obj.Name("Devices").Array()
	for i := range infos {
		o := devices.Object()
		infos[i].printParameters(&o)
		o.End()
	}
	devices.End()
	obj.End()

	return string(writer.Bytes())
}
