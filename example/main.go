// Example draws a few GUI primitives through the guibridge renderer.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//	go run ./example/ -headless   # print one frame's device calls, no window
//
// A TOML file given with -config may set [window], [font], [buffers] and
// [log] sections; see guibridge.Config.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pelletier/go-toml/v2"

	"github.com/go-theft-auto/guibridge"
	"github.com/go-theft-auto/guibridge/backend/opengl"
	"github.com/go-theft-auto/guibridge/backend/recording"
	"github.com/go-theft-auto/guibridge/imgui"
)

type windowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type appConfig struct {
	guibridge.Config
	Window windowConfig `toml:"window"`
}

func defaultAppConfig() appConfig {
	return appConfig{
		Config: guibridge.DefaultConfig(),
		Window: windowConfig{Width: 800, Height: 600, Title: "guibridge example"},
	}
}

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "TOML configuration file")
	headless := flag.Bool("headless", false, "render one frame on the recording device and print its calls")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if err := run(*configPath, *headless, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(path string) (appConfig, error) {
	cfg := defaultAppConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Config.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func run(configPath string, headless, verbose bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	guibridge.SetVerbose(verbose || cfg.Log.Verbose)

	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	if headless {
		return runHeadless(cfg, opts)
	}
	return runWindow(cfg, opts)
}

func runHeadless(cfg appConfig, opts []guibridge.Option) error {
	device := recording.NewDevice(cfg.Window.Width, cfg.Window.Height)
	host := recording.NewHost()

	renderer, err := guibridge.New(host, device, opts...)
	if err != nil {
		return err
	}
	defer renderer.Close()

	if err := renderer.RebuildFontAtlas(); err != nil {
		return err
	}
	d := newDemo(renderer, device)

	if err := renderer.Begin(1.0 / 60.0); err != nil {
		return err
	}
	d.draw()
	if err := renderer.End(); err != nil {
		return fmt.Errorf("gui render: %w", err)
	}
	return device.Dump(os.Stdout)
}

func runWindow(cfg appConfig, opts []guibridge.Option) error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fbw, fbh := window.GetFramebufferSize()
	device, err := opengl.NewDevice(fbw, fbh)
	if err != nil {
		return fmt.Errorf("gui device: %w", err)
	}
	defer device.Delete()
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		device.Resize(w, h)
	})

	host := opengl.NewGLFWHost(window)

	renderer, err := guibridge.New(host, device, opts...)
	if err != nil {
		return err
	}
	defer renderer.Close()

	if err := renderer.RebuildFontAtlas(); err != nil {
		return err
	}
	d := newDemo(renderer, device)
	defer d.close()

	last := glfw.GetTime()
	for !window.ShouldClose() {
		glfw.PollEvents()

		now := glfw.GetTime()
		dt := float32(now - last)
		last = now

		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := renderer.Begin(dt); err != nil {
			return err
		}
		d.draw()
		if err := renderer.End(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

// demo draws a panel with text, shapes and a bound checkerboard texture.
type demo struct {
	renderer *guibridge.Renderer
	checker  guibridge.Texture
	handle   guibridge.TextureHandle
	clicks   int
}

func newDemo(r *guibridge.Renderer, device guibridge.Device) *demo {
	d := &demo{renderer: r}

	const size = 8
	pixels := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := byte(60)
			if (x+y)%2 == 0 {
				v = 220
			}
			i := (y*size + x) * 4
			pixels[i], pixels[i+1], pixels[i+2], pixels[i+3] = v, v, v, 255
		}
	}
	tex, err := device.NewTexture(size, size, pixels)
	if err == nil {
		d.checker = tex
		d.handle = r.Bind(tex)
	}
	return d
}

func (d *demo) draw() {
	ctx := d.renderer.Context()
	io := ctx.IO()
	dl := ctx.DrawList()

	if io.MouseClicked(imgui.MouseButtonLeft) {
		d.clicks++
	}

	dl.AddRect(20, 20, 320, 220, imgui.RGBA(40, 40, 48, 230))
	dl.AddRectOutline(20, 20, 320, 220, imgui.ColorGray, 1)

	dl.PushClipRect(20, 20, 340, 240)
	ctx.Text(32, 32, "Hello from guibridge!", imgui.ColorWhite)
	ctx.Text(32, 56, fmt.Sprintf("Frame %d, clicks %d", ctx.FrameCount(), d.clicks), imgui.ColorYellow)
	ctx.Text(32, 80, fmt.Sprintf("Mouse %.0f, %.0f  wheel %+.0f", io.MousePos.X, io.MousePos.Y, io.MouseWheel), imgui.ColorWhite)
	dl.AddLine(32, 110, 300, 110, imgui.ColorGreen, 2)
	dl.AddTriangle(40, 200, 80, 130, 120, 200, imgui.ColorRed)
	if d.handle != 0 {
		dl.AddImage(d.handle, 160, 130, 64, 64, imgui.Vec2{}, imgui.Vec2{X: 1, Y: 1}, imgui.ColorWhite)
	}
	dl.PopClipRect()

	if text := string(io.InputQueueCharacters()); text != "" {
		ctx.ForegroundDrawList().AddText(20, 240, "typed: "+text, imgui.ColorWhite)
	}
}

func (d *demo) close() {
	if d.handle != 0 {
		d.renderer.Unbind(d.handle)
	}
	if t, ok := d.checker.(*opengl.Texture); ok {
		t.Delete()
	}
}
