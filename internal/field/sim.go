package field

// Sim owns every piece of mutable engine state. Hosts feed it input and
// resize events and call Frame once per animation frame, all from one thread.
type Sim struct {
	W, H    int
	Ratio   float64
	Flags   Flags
	Profile Profile

	Store    *Store
	Pointer  Pointer
	Parallax Parallax
	Palette  Palette

	Frames uint64
	Links  int // links drawn in the last frame
}

// NewSim builds an empty simulation; call Resize before the first frame.
func NewSim(flags Flags, src Source) *Sim {
	return &Sim{
		Flags:   flags,
		Ratio:   ClampPixelRatio(flags.PixelRatio),
		Profile: ProfileFor(flags.Compact),
		Store:   NewStore(src),
		Palette: DarkPalette,
	}
}

// Resize recomputes compact mode and the particle count for a new viewport.
// Repeating a call with the same arguments changes nothing.
func (s *Sim) Resize(w, h int, ratio float64) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s.W, s.H = w, h
	s.Ratio = ClampPixelRatio(ratio)
	s.Flags.PixelRatio = s.Ratio
	s.Flags.Compact = IsCompact(w, h)
	s.Profile = ProfileFor(s.Flags.Compact)

	fw, fh := float64(w), float64(h)
	s.Store.Fit(s.Profile.TargetCount(w, h), fw, fh, s.Profile)
	s.Pointer.SetRest(fw*RestX, fh*RestY)
}

func (s *Sim) PointerMove(x, y float64)      { s.Pointer.Move(x, y) }
func (s *Sim) PointerLeave()                 { s.Pointer.Leave() }
func (s *Sim) TouchMove(points []TouchPoint) { s.Pointer.Touch(points) }
func (s *Sim) TouchEnd()                     { s.Pointer.TouchEnd() }

// Forces returns the integrator input for the current frame.
func (s *Sim) Forces(nowMS float64) Forces {
	return Forces{
		W:        float64(s.W),
		H:        float64(s.H),
		NowMS:    nowMS,
		PointerX: s.Pointer.X,
		PointerY: s.Pointer.Y,
		Active:   s.Pointer.Active,
		Profile:  s.Profile,
	}
}

// Step smooths the pointer and integrates every particle.
func (s *Sim) Step(nowMS float64) {
	s.Pointer.Smooth()
	f := s.Forces(nowMS)
	f.Integrate(s.Store.P)
}

// Render draws particles, then links, then applies parallax. Cards are drawn
// last on surfaces that own them.
func (s *Sim) Render(surf Surface) {
	fw, fh := float64(s.W), float64(s.H)
	surf.Begin(s.W, s.H, s.Ratio)
	surf.Clear(s.Palette.Background)
	DrawParticles(surf, s.Store.P, s.Palette)
	s.Links = DrawLinks(surf, s.Store.P, s.Profile, s.Palette)
	s.Parallax.Apply(s.Pointer.X, s.Pointer.Y, fw, fh, s.Profile)
	if cs, ok := surf.(CardSurface); ok {
		for _, t := range s.Parallax.Targets {
			if c, ok := t.(*Card); ok {
				cs.Card(c, fw, fh, s.Palette)
			}
		}
	}
	surf.End()
}

// Frame runs one full animation frame.
func (s *Sim) Frame(surf Surface, nowMS float64) {
	s.Step(nowMS)
	s.Render(surf)
	s.Frames++
}
