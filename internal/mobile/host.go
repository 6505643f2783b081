//go:build android

package mobile

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/gl"

	"driftfield/internal/field"
)

// Host runs the field inside an x/mobile app. The app delivers the GL
// context and size asynchronously, so the controller starts once both are
// known and frames are driven by paint events.
type Host struct {
	log   *zap.Logger
	rend  renderer
	sz    size.Event
	l     field.Listener
	frame field.FrameFunc
	touch touches
	start time.Time
	gone  bool
}

func (h *Host) PrefersReducedMotion() bool { return false }
func (h *Host) SaveData() (bool, bool)     { return false, false }

func (h *Host) Viewport() (int, int, float64) { return viewport(h.sz) }

func (h *Host) Acquire() (field.Surface, error) {
	if h.rend.glctx == nil {
		return nil, field.ErrNoContext
	}
	return &h.rend, nil
}

func (h *Host) RemoveCanvas() {
	h.gone = true
	h.rend.release()
}

func (h *Host) Listen(l field.Listener) { h.l = l }

// Schedule records frame; paint events call it.
func (h *Host) Schedule(frame field.FrameFunc) { h.frame = frame }

// Run blocks in app.Main until the activity dies.
func Run(ctl *field.Controller, log *zap.Logger) {
	h := &Host{log: log, start: time.Now()}
	var gate startGate

	app.Main(func(a app.App) {
		start := func() {
			state := ctl.Start(h)
			log.Info("field", zap.Stringer("state", state))
			a.Send(paint.Event{})
		}
		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx, ok := e.DrawContext.(gl.Context)
					if !ok || h.gone {
						continue
					}
					if err := h.rend.init(glctx); err != nil {
						log.Error("gl init", zap.Error(err))
						continue
					}
					if gate.context(true) {
						start()
					} else {
						a.Send(paint.Event{})
					}
				case lifecycle.CrossOff:
					gate.context(false)
					h.rend.release()
				}
				if e.To == lifecycle.StageDead {
					return
				}

			case size.Event:
				h.sz = e
				h.rend.fbW, h.rend.fbH = e.WidthPx, e.HeightPx
				if h.l != nil {
					h.l.Resize(h.Viewport())
				}
				if gate.size(e) {
					start()
				}

			case touch.Event:
				if h.l != nil {
					_, _, ratio := h.Viewport()
					h.touch.handle(e, float32(ratio), h.l)
				}

			case paint.Event:
				if h.frame == nil || h.rend.glctx == nil || e.External {
					continue
				}
				h.frame(float64(time.Since(h.start)) / float64(time.Millisecond))
				a.Publish()
				a.Send(paint.Event{})
			}
		}
	})
}
