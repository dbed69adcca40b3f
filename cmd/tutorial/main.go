package main

import (
	"runtime"

	vk "github.com/goki/vulkan"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/goopey7/vulkan-tutorial/core"
	"github.com/goopey7/vulkan-tutorial/device"
)

func init() {
	runtime.LockOSThread()
}

// sdlSurfaceProvider adapts an SDL window into the surface source the
// context builder expects.
type sdlSurfaceProvider struct {
	window *sdl.Window
}

func (p *sdlSurfaceProvider) InstanceExtensions() []string {
	return p.window.VulkanGetInstanceExtensions()
}

func (p *sdlSurfaceProvider) CreateSurface(instance vk.Instance) (vk.Surface, error) {
	srf, err := p.window.VulkanCreateSurface(instance)
	if err != nil {
		return vk.NullSurface, err
	}
	return vk.SurfaceFromPointer(uintptr(srf)), nil
}

func newWindow(cfg core.Configuration) *sdl.Window {
	window, err := sdl.CreateWindow(cfg.App.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Renderer.ScreenWidth),
		int32(cfg.Renderer.ScreenHeight),
		sdl.WINDOW_VULKAN)
	if err != nil {
		log.WithError(err).Fatal("window creation failed")
	}
	return window
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debug("no .env file loaded")
	}

	cfg, err := core.FromEnv()
	if err != nil {
		log.WithError(err).Fatal("configuration invalid")
	}
	if cfg.App.Diagnostics {
		log.SetLevel(log.TraceLevel)
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		log.WithError(err).Fatal("sdl init failed")
	}
	defer sdl.Quit()

	if err := sdl.VulkanLoadLibrary(""); err != nil {
		log.WithError(err).Fatal("vulkan library load failed")
	}
	defer sdl.VulkanUnloadLibrary()

	vk.SetGetInstanceProcAddr(sdl.VulkanGetVkGetInstanceProcAddr())
	if err := vk.Init(); err != nil {
		log.WithError(err).Fatal("vulkan binding init failed")
	}

	window := newWindow(cfg)
	defer window.Destroy()

	ctx, err := core.NewVulkanContext(cfg, &sdlSurfaceProvider{window: window})
	if err != nil {
		log.WithError(err).Fatal("vulkan context creation failed")
	}

	infos := device.ReadAllInfo(ctx.Instance().AvailableDevices())
	log.WithField("report", device.BuildReportString(infos)).Debug("physical devices")

	time := core.NewTime(cfg.Time)
	exitC := make(chan struct{}, 2)

EventLoop:
	for {
		select {
		case <-exitC:
			log.Info("event loop exited")
			break EventLoop
		case <-time.FpsTicker().C:
			var event sdl.Event
			for event = sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
				switch et := event.(type) {
				case *sdl.KeyboardEvent:
					if et.Keysym.Sym == sdl.K_ESCAPE {
						exitC <- struct{}{}
						continue EventLoop
					}
				case *sdl.QuitEvent:
					exitC <- struct{}{}
					continue EventLoop
				}
			}
		}
	}

	time.Stop()
	ctx.Destroy()
}
