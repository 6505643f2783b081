//go:build !android && !js

package desktop

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"driftfield/internal/field"
)

// Options configure the window.
type Options struct {
	Width, Height int
	Title         string

	// OnKey receives printable key presses (lower case) other than quit keys.
	OnKey func(r rune)
}

// Host runs the field in a GLFW window. Window coordinates play the role of
// CSS pixels; the framebuffer ratio is the device pixel ratio.
type Host struct {
	opts   Options
	log    *zap.Logger
	window *glfw.Window
	rend   *Renderer
}

func NewHost(opts Options, log *zap.Logger) *Host {
	if log == nil {
		log = zap.NewNop()
	}
	return &Host{opts: opts, log: log}
}

// A desktop has no reduced-motion or data-saver signal of its own; config
// and flags force them through field.Forced.
func (h *Host) PrefersReducedMotion() bool { return false }
func (h *Host) SaveData() (bool, bool)     { return false, false }

func (h *Host) Viewport() (int, int, float64) {
	if h.window == nil {
		return h.opts.Width, h.opts.Height, 1
	}
	w, hh := h.window.GetSize()
	return w, hh, pixelRatio(h.window)
}

// Acquire opens the window and GL context. The calling goroutine becomes the
// render thread.
func (h *Host) Acquire() (field.Surface, error) {
	runtime.LockOSThread()

	window, err := initWindow(h.opts.Width, h.opts.Height, h.opts.Title)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", field.ErrNoContext, err)
	}
	h.window = window
	if err := gl.Init(); err != nil {
		h.RemoveCanvas()
		return nil, fmt.Errorf("%w: gl init: %v", field.ErrNoContext, err)
	}
	rend, err := NewRenderer()
	if err != nil {
		h.RemoveCanvas()
		return nil, fmt.Errorf("%w: renderer: %v", field.ErrNoContext, err)
	}
	h.rend = rend
	rend.SetFramebuffer(window.GetFramebufferSize())
	h.log.Debug("window ready",
		zap.String("gl", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.Float64("pixel_ratio", pixelRatio(window)))
	return rend, nil
}

// RemoveCanvas closes the window if one was opened.
func (h *Host) RemoveCanvas() {
	if h.rend != nil {
		h.rend.Destroy()
		h.rend = nil
	}
	if h.window != nil {
		h.window.Destroy()
		h.window = nil
		glfw.Terminate()
	}
}

// Listen maps GLFW callbacks onto the listener.
func (h *Host) Listen(l field.Listener) {
	win := h.window
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		l.PointerMove(x, y)
	})
	win.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if !entered {
			l.PointerLeave()
		}
	})
	win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if !focused {
			l.PointerLeave()
		}
	})
	resize := func() {
		w, hh := win.GetSize()
		if h.rend != nil {
			h.rend.SetFramebuffer(win.GetFramebufferSize())
		}
		l.Resize(w, hh, pixelRatio(win))
	}
	win.SetSizeCallback(func(*glfw.Window, int, int) { resize() })
	win.SetFramebufferSizeCallback(func(*glfw.Window, int, int) { resize() })
	win.SetContentScaleCallback(func(*glfw.Window, float32, float32) { resize() })
	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape, glfw.KeyQ:
			w.SetShouldClose(true)
		default:
			if r, ok := keyRune(key); ok && h.opts.OnKey != nil {
				h.opts.OnKey(r)
			}
		}
	})
}

// Schedule runs frames at the display refresh rate until the window closes,
// then releases the window.
func (h *Host) Schedule(frame field.FrameFunc) {
	defer h.RemoveCanvas()
	for !h.window.ShouldClose() {
		glfw.PollEvents()
		frame(glfw.GetTime() * 1000)
		h.window.SwapBuffers()
	}
}

func keyRune(k glfw.Key) (rune, bool) {
	if k >= glfw.KeyA && k <= glfw.KeyZ {
		return rune('a' + (k - glfw.KeyA)), true
	}
	return 0, false
}
