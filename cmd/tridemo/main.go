package main

import (
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/voxfly/tridemo/internal/glbackend"
	"github.com/voxfly/tridemo/pkg/render"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	// Fixed configuration; there is no runtime flag surface
	const (
		width  = 800
		height = 600
		title  = "tridemo"
		vsync  = true
	)

	window, err := glbackend.NewWindow(width, height, title, vsync)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer window.Close()

	window.SetMouseCaptured(true)

	device := glbackend.NewDevice(window)
	defer device.Release()

	stage, err := render.NewStage(device, width, height)
	if err != nil {
		log.Fatalf("Failed to create stage: %v", err)
	}
	defer stage.Release()

	stage.OnQuit(window.RequestClose)

	window.Run(stage)
}
