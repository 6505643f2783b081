package mobile

import "golang.org/x/mobile/event/size"

// startGate holds the controller back until the activity has both a GL
// context and a non-empty size. x/mobile delivers the first visible stage
// before the first size event.
type startGate struct {
	gl      bool
	sz      size.Event
	started bool
}

func (g *startGate) context(ok bool) bool    { g.gl = ok; return g.ready() }
func (g *startGate) size(sz size.Event) bool { g.sz = sz; return g.ready() }

// ready reports true exactly once, when both conditions first hold.
func (g *startGate) ready() bool {
	if g.started || !g.gl || g.sz.WidthPx <= 0 || g.sz.HeightPx <= 0 {
		return false
	}
	g.started = true
	return true
}
