package core

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gobuffalo/envy"
	vk "github.com/goki/vulkan"
)

// Configuration defines a global application configuration setting
type Configuration struct {
	App      AppConfiguration
	Renderer RendererConfiguration
	Time     TimeConfiguration
}

// AppConfiguration identifies the application and toggles diagnostics
type AppConfiguration struct {
	Title string

	// Diagnostics enables the validation layer and the debug messenger
	Diagnostics bool
}

// RendererConfiguration is used to configure the rendering window and device
type RendererConfiguration struct {
	ScreenWidth  uint32
	ScreenHeight uint32

	// DeviceExtensions a device must support to be selected
	DeviceExtensions []string
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out.
	// To unlimit, set to 0
	FramesPerSecond int

	// EventPollDelay is the interval between event pump runs, in milliseconds
	EventPollDelay int
}

// FromEnv assembles a Configuration from VKTUT_* environment variables.
// Defaults are a 1024x768 window, validation on, and swapchain as the only
// required device extension.
func FromEnv() (Configuration, error) {
	width, err := envUint32("VKTUT_WIDTH", 1024)
	if err != nil {
		return Configuration{}, err
	}
	height, err := envUint32("VKTUT_HEIGHT", 768)
	if err != nil {
		return Configuration{}, err
	}
	diagnostics, err := envBool("VKTUT_DEBUG", true)
	if err != nil {
		return Configuration{}, err
	}
	fps, err := envInt("VKTUT_FPS", 60)
	if err != nil {
		return Configuration{}, err
	}
	pollDelay, err := envInt("VKTUT_EVENT_POLL_MS", 10)
	if err != nil {
		return Configuration{}, err
	}

	return Configuration{
		App: AppConfiguration{
			Title:       envy.Get("VKTUT_TITLE", "Vulkan Tutorial (Go)"),
			Diagnostics: diagnostics,
		},
		Renderer: RendererConfiguration{
			ScreenWidth:  width,
			ScreenHeight: height,
			DeviceExtensions: splitList(
				envy.Get("VKTUT_DEVICE_EXTENSIONS", vk.KhrSwapchainExtensionName)),
		},
		Time: TimeConfiguration{
			FramesPerSecond: fps,
			EventPollDelay:  pollDelay,
		},
	}, nil
}

func envBool(key string, fallback bool) (bool, error) {
	value, err := strconv.ParseBool(envy.Get(key, strconv.FormatBool(fallback)))
	if err != nil {
		return false, errors.Wrapf(err, "%s", key)
	}
	return value, nil
}

func envInt(key string, fallback int) (int, error) {
	value, err := strconv.Atoi(envy.Get(key, strconv.Itoa(fallback)))
	if err != nil {
		return 0, errors.Wrapf(err, "%s", key)
	}
	return value, nil
}

func envUint32(key string, fallback uint32) (uint32, error) {
	value, err := strconv.ParseUint(envy.Get(key, strconv.FormatUint(uint64(fallback), 10)), 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "%s", key)
	}
	return uint32(value), nil
}

func splitList(value string) []string {
	var list []string
	for _, entry := range strings.Split(value, ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			list = append(list, entry)
		}
	}
	return list
}
