package field

import "errors"

// ErrNoContext is returned by Host.Acquire when no drawing context exists.
var ErrNoContext = errors.New("drawing context unavailable")

type State int

const (
	StateDisabled State = iota
	StateRunning
)

func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "disabled"
}

// Listener receives input and resize events from a host.
type Listener interface {
	PointerMove(x, y float64)
	PointerLeave()
	TouchMove(points []TouchPoint)
	TouchEnd()
	Resize(w, h int, ratio float64)
}

// FrameFunc is called once per animation frame with a monotonic clock.
type FrameFunc func(nowMS float64)

// Host is the platform the engine runs on: a window, a page, a terminal.
type Host interface {
	Sampler
	// Acquire returns the drawing surface, or an error when none exists.
	Acquire() (Surface, error)
	// RemoveCanvas takes the drawing element away for good.
	RemoveCanvas()
	// Listen attaches input and resize listeners.
	Listen(l Listener)
	// Schedule drives frame until the host goes away. It may block.
	Schedule(frame FrameFunc)
}

// Controller decides once whether the field runs and then drives it.
type Controller struct {
	State   State
	Sim     *Sim
	Source  Source
	Palette Palette
	Targets []DepthTarget

	// OnFrame observes the simulation after every rendered frame.
	OnFrame func(s *Sim)
	// OnDisabled is told why the field did not start.
	OnDisabled func(reason string)
}

// Start samples the environment and either disables the field or runs it.
// There is no way back from either state.
func (c *Controller) Start(h Host) State {
	flags := Sample(h)
	if flags.Disabled() {
		reason := "reduced motion"
		if !flags.ReducedMotion {
			reason = "data saver"
		}
		c.disable(h, reason)
		return c.State
	}
	surf, err := h.Acquire()
	if err != nil || surf == nil {
		c.disable(h, "no drawing context")
		return c.State
	}

	sim := NewSim(flags, c.Source)
	if c.Palette.Name != "" {
		sim.Palette = c.Palette
	}
	sim.Parallax.Targets = c.Targets
	w, hh, ratio := h.Viewport()
	sim.Resize(w, hh, ratio)
	sim.Pointer.Snap()

	c.Sim = sim
	c.State = StateRunning
	h.Listen(sim)
	h.Schedule(func(nowMS float64) {
		sim.Frame(surf, nowMS)
		if c.OnFrame != nil {
			c.OnFrame(sim)
		}
	})
	return c.State
}

func (c *Controller) disable(h Host, reason string) {
	c.State = StateDisabled
	h.RemoveCanvas()
	if c.OnDisabled != nil {
		c.OnDisabled(reason)
	}
}
