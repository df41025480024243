package main

import (
	"log"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/wking83/CS330-Graphic-and-Visualization/engine"
	"github.com/wking83/CS330-Graphic-and-Visualization/scene"
)

func init() {
	// glfw event handling must run on the main thread
	runtime.LockOSThread()
}

func main() {
	cfg := LoadConfig("config.yml")

	window := initWindow(cfg)
	defer glfw.Terminate()

	program, err := engine.NewSceneProgram()
	if err != nil {
		log.Fatalf("scene program: %v", err)
	}
	defer program.Dispose()

	camera := NewCamera()
	window.SetCursorPosCallback(camera.OnMouseMove)
	window.SetScrollCallback(camera.OnScroll)

	meshes := scene.NewMeshSet(scene.DeskTorusTube)
	desk := scene.Desk(program, engine.GLTextureBackend{}, meshes, cfg.TextureDir)

	program.Use()
	if err := desk.Prepare(); err != nil {
		log.Fatalf("prepare scene: %v", err)
	}
	defer desk.Release()

	lastFrame := time.Now()
	for !window.ShouldClose() {
		now := time.Now()
		dt := float32(now.Sub(lastFrame).Seconds())
		lastFrame = now

		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}
		camera.ProcessKeys(window, dt)

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		program.Use()
		w, h := window.GetFramebufferSize()
		aspect := float32(w) / float32(h)
		if err := pushCamera(program, camera, aspect); err != nil {
			log.Fatalf("camera uniforms: %v", err)
		}
		if err := desk.Render(); err != nil {
			log.Fatalf("render: %v", err)
		}

		window.SwapBuffers()
		glfw.PollEvents()
	}
}

func pushCamera(stage engine.UniformSetter, c *Camera, aspect float32) error {
	if err := stage.SetUniform("view", c.View()); err != nil {
		return err
	}
	if err := stage.SetUniform("projection", c.Projection(aspect)); err != nil {
		return err
	}
	return stage.SetUniform("viewPosition", c.Position)
}

func initWindow(cfg Config) *glfw.Window {
	if err := glfw.Init(); err != nil {
		log.Fatalf("initialize glfw: %v", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		log.Fatalf("create window: %v", err)
	}
	window.MakeContextCurrent()
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		log.Fatalf("initialize opengl: %v", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if width < 1 {
			width = 1
		}
		if height < 1 {
			height = 1
		}
		gl.Viewport(0, 0, int32(width), int32(height))
	})

	return window
}
