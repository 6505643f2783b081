package terminal

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"driftfield/internal/field"
)

// Options configure the terminal host.
type Options struct {
	FPS int
	// Screen overrides the real terminal (tests use a simulation screen).
	Screen tcell.Screen
	// OnKey receives printable keys other than quit keys.
	OnKey func(r rune)
}

// Host runs the field in a terminal. Mouse motion is the pointer, losing
// focus is pointer-leave, and a ticker paces frames.
type Host struct {
	opts   Options
	log    *zap.Logger
	screen tcell.Screen
	ready  bool
	l      field.Listener

	stopOnce sync.Once
	quit     chan struct{}
}

func NewHost(opts Options, log *zap.Logger) *Host {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Host{opts: opts, log: log, screen: opts.Screen, quit: make(chan struct{})}
}

// Terminals expose neither preference.
func (h *Host) PrefersReducedMotion() bool { return false }
func (h *Host) SaveData() (bool, bool)     { return false, false }

func (h *Host) Viewport() (int, int, float64) {
	if !h.ready {
		return 80 * CellW, 24 * CellH, 1
	}
	cols, rows := h.screen.Size()
	return cols * CellW, rows * CellH, 1
}

type surface struct {
	*Canvas
	screen tcell.Screen
}

func (s surface) End() { s.Blit(s.screen) }

func (h *Host) Acquire() (field.Surface, error) {
	if h.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", field.ErrNoContext, err)
		}
		h.screen = s
	}
	if err := h.screen.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", field.ErrNoContext, err)
	}
	h.ready = true
	h.screen.EnableMouse(tcell.MouseMotionEvents)
	h.screen.EnableFocus()
	h.screen.HideCursor()
	h.screen.Clear()
	return surface{Canvas: &Canvas{}, screen: h.screen}, nil
}

// RemoveCanvas restores the terminal.
func (h *Host) RemoveCanvas() {
	if h.ready {
		h.screen.Fini()
		h.ready = false
	}
}

func (h *Host) Listen(l field.Listener) { h.l = l }

// Stop ends Schedule after the current frame.
func (h *Host) Stop() {
	h.stopOnce.Do(func() { close(h.quit) })
}

// Schedule ticks frames until a quit key, Stop, or the screen closing.
func (h *Host) Schedule(frame field.FrameFunc) {
	done := make(chan struct{})
	defer h.RemoveCanvas()
	defer close(done)

	events := make(chan tcell.Event, 100)
	go pump(h.screen, events, done)

	ticker := time.NewTicker(time.Second / time.Duration(h.opts.FPS))
	defer ticker.Stop()
	start := time.Now()

	for {
		select {
		case <-h.quit:
			return
		case ev, ok := <-events:
			if !ok || !h.handle(ev) {
				return
			}
		case <-ticker.C:
			frame(float64(time.Since(start).Microseconds()) / 1000)
		}
	}
}

// pump forwards screen events until the screen finishes or done closes.
func pump(screen interface{ PollEvent() tcell.Event }, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handle routes one event; false means quit.
func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
			if h.opts.OnKey != nil {
				h.opts.OnKey(ev.Rune())
			}
		}
	case *tcell.EventMouse:
		if h.l != nil {
			col, row := ev.Position()
			h.l.PointerMove(float64(col*CellW+CellW/2), float64(row*CellH+CellH/2))
		}
	case *tcell.EventFocus:
		if !ev.Focused && h.l != nil {
			h.l.PointerLeave()
		}
	case *tcell.EventResize:
		h.screen.Sync()
		if h.l != nil {
			w, hh, r := h.Viewport()
			h.log.Debug("terminal resized", zap.Int("w", w), zap.Int("h", hh))
			h.l.Resize(w, hh, r)
		}
	}
	return true
}
