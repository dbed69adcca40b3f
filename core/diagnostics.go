package core

import (
	"unsafe"

	vk "github.com/goki/vulkan"
	log "github.com/sirupsen/logrus"
)

func messengerCreateInfo() *vk.DebugReportCallbackCreateInfo {
	return &vk.DebugReportCallbackCreateInfo{
		SType: vk.StructureTypeDebugReportCallbackCreateInfo,
		Flags: vk.DebugReportFlags(vk.DebugReportErrorBit |
			vk.DebugReportWarningBit |
			vk.DebugReportPerformanceWarningBit |
			vk.DebugReportInformationBit |
			vk.DebugReportDebugBit),
		PfnCallback: debugReport,
	}
}

// severityLevel maps driver report flags onto log levels.
func severityLevel(flags vk.DebugReportFlags) log.Level {
	switch {
	case flags&vk.DebugReportFlags(vk.DebugReportErrorBit) != 0:
		return log.ErrorLevel
	case flags&vk.DebugReportFlags(vk.DebugReportWarningBit|vk.DebugReportPerformanceWarningBit) != 0:
		return log.WarnLevel
	case flags&vk.DebugReportFlags(vk.DebugReportInformationBit) != 0:
		return log.InfoLevel
	default:
		return log.TraceLevel
	}
}

// debugReport is invoked by the driver at arbitrary points during any API
// call. It must not fail across the C boundary and always returns vk.False
// so the triggering call is never aborted.
func debugReport(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType,
	object uint64, location uint64, messageCode int32, layerPrefix string,
	message string, userData unsafe.Pointer) vk.Bool32 {

	defer func() {
		// Swallow anything the log hook may throw; a panic may not
		// unwind into the driver.
		_ = recover()
	}()

	log.WithFields(log.Fields{
		"layer": layerPrefix,
		"code":  messageCode,
	}).Log(severityLevel(flags), message)

	return vk.False
}
