package mobile

import (
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"

	"driftfield/internal/field"
)

// touches follows the first finger down until it lifts; later fingers are
// ignored so the field has one pointer.
type touches struct {
	seq  touch.Sequence
	down bool
	pts  [1]field.TouchPoint
}

// handle forwards e to l in points.
func (t *touches) handle(e touch.Event, ppt float32, l field.Listener) {
	if ppt <= 0 {
		ppt = 1
	}
	switch e.Type {
	case touch.TypeBegin:
		if t.down {
			return
		}
		t.seq, t.down = e.Sequence, true
		t.move(e, ppt, l)
	case touch.TypeMove:
		if t.down && e.Sequence == t.seq {
			t.move(e, ppt, l)
		}
	case touch.TypeEnd:
		if t.down && e.Sequence == t.seq {
			t.down = false
			l.TouchEnd()
		}
	}
}

func (t *touches) move(e touch.Event, ppt float32, l field.Listener) {
	t.pts[0] = field.TouchPoint{X: float64(e.X / ppt), Y: float64(e.Y / ppt)}
	l.TouchMove(t.pts[:])
}

// viewport reports a size event in points with the pixel density as ratio.
func viewport(sz size.Event) (int, int, float64) {
	if sz.WidthPx <= 0 || sz.HeightPx <= 0 {
		return 0, 0, 1
	}
	ratio := field.ClampPixelRatio(float64(sz.PixelsPerPt))
	return int(float64(sz.WidthPx)/ratio + 0.5), int(float64(sz.HeightPx)/ratio + 0.5), ratio
}
