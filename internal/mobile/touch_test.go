package mobile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"

	"driftfield/internal/field"
)

type spy struct {
	moves []field.TouchPoint
	ends  int
}

func (s *spy) PointerMove(x, y float64)         {}
func (s *spy) PointerLeave()                    {}
func (s *spy) Resize(w, h int, r float64)       {}
func (s *spy) TouchEnd()                        { s.ends++ }
func (s *spy) TouchMove(pts []field.TouchPoint) { s.moves = append(s.moves, pts[0]) }

func TestTouchesFollowFirstFinger(t *testing.T) {
	var tr touches
	l := &spy{}

	tr.handle(touch.Event{X: 100, Y: 50, Sequence: 1, Type: touch.TypeBegin}, 2, l)
	tr.handle(touch.Event{X: 400, Y: 400, Sequence: 2, Type: touch.TypeBegin}, 2, l)
	tr.handle(touch.Event{X: 400, Y: 400, Sequence: 2, Type: touch.TypeMove}, 2, l)
	tr.handle(touch.Event{X: 120, Y: 60, Sequence: 1, Type: touch.TypeMove}, 2, l)
	tr.handle(touch.Event{Sequence: 2, Type: touch.TypeEnd}, 2, l)
	assert.Equal(t, 0, l.ends)
	tr.handle(touch.Event{Sequence: 1, Type: touch.TypeEnd}, 2, l)

	assert.Equal(t, []field.TouchPoint{{X: 50, Y: 25}, {X: 60, Y: 30}}, l.moves)
	assert.Equal(t, 1, l.ends)

	// A new first finger is picked up after the old one lifts.
	tr.handle(touch.Event{X: 10, Y: 10, Sequence: 3, Type: touch.TypeBegin}, 0, l)
	assert.Equal(t, field.TouchPoint{X: 10, Y: 10}, l.moves[len(l.moves)-1])
}

func TestViewportInPoints(t *testing.T) {
	w, h, r := viewport(size.Event{WidthPx: 1080, HeightPx: 2340, PixelsPerPt: 2.75})
	assert.Equal(t, 393, w)
	assert.Equal(t, 851, h)
	assert.InDelta(t, 2.75, r, 1e-6)

	w, h, r = viewport(size.Event{})
	assert.Equal(t, 0, w)
	assert.Equal(t, 0, h)
	assert.Equal(t, 1.0, r)
}
