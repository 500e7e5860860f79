/*
Package guibridge renders an immediate-mode GUI on a GPU device and feeds it
host input, one frame at a time.

# Overview

The GUI (package imgui) rebuilds its geometry every frame as draw lists of
vertices, 16-bit indices and draw commands. The renderer packs those lists
into two GPU buffers and replays every command as an indexed draw with its
own texture and scissor rectangle. Before each frame it copies keyboard,
mouse, wheel and display state from the host window into the GUI's IO.

The renderer talks to the outside world through two small interfaces:

	Device   GPU buffers, textures, viewport, scissor, render state, draws
	Host     focus, key and mouse polling, text input events

Package backend/opengl implements them with go-gl and GLFW. Package
backend/recording implements them in memory for tests and headless runs.

# Quick Start

	device, _ := opengl.NewDevice(fbWidth, fbHeight)
	host := opengl.NewGLFWHost(window)

	r, _ := guibridge.New(host, device)
	defer r.Close()
	r.RebuildFontAtlas() // once before the first frame, and after font changes

	img := r.Bind(myTexture) // handle usable in imgui.DrawList.AddImage

	for !window.ShouldClose() {
	    glfw.PollEvents()

	    r.Begin(deltaTime)
	    dl := r.Context().DrawList()
	    dl.AddRect(10, 10, 200, 100, imgui.RGBA(40, 40, 48, 230))
	    dl.AddImage(img, 20, 20, 64, 64, imgui.Vec2{}, imgui.Vec2{X: 1, Y: 1}, imgui.ColorWhite)
	    r.Context().Text(100, 20, "Hello", imgui.ColorWhite)
	    r.End()

	    window.SwapBuffers()
	}

# Frame Lifecycle

Begin and End must alternate. Begin sets the frame time, translates input
sized to the device back buffer and starts a GUI frame. End finishes the GUI
frame, uploads its geometry and issues the draws. Calling either out of order
returns ErrFrameInProgress or ErrNoFrame. A frame whose rendering fails still
ends; the next Begin is valid.

While drawing, the renderer sets DefaultRenderState and a full-screen
viewport. The device viewport and scissor rectangle in effect before End are
restored afterwards.

# Textures

GUI content refers to textures by TextureHandle. Bind returns the same
handle for the same texture until it is unbound; handles are never reused.
The renderer does not own bound textures. A draw command whose handle is not
bound aborts the frame with a *TextureNotFoundError, which matches
ErrTextureNotFound.

# Input

Input is read only while the host window is focused; otherwise the previous
frame's input stays in effect. The wheel is reported as one step per frame
in its direction. Shift, Ctrl, Alt and Super are down when either side is
down. Typed characters are forwarded as they arrive, except Tab.

# Buffers

Vertex and index buffers are allocated on first use and grown to 1.5 times
the required size (see WithBufferGrowth) when a frame needs more. They never
shrink. A frame without vertices uploads and draws nothing.

# Configuration

Options can be built from a TOML file with LoadConfig and Config.Options.
Debug logging goes through log/slog; enable it with SetVerbose or
WithLogger.
*/
package guibridge
