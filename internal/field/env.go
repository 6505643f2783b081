package field

// Sampler reads the host's capability signals.
type Sampler interface {
	// PrefersReducedMotion is read once at start.
	PrefersReducedMotion() bool
	// SaveData reports the data-saver preference; ok is false when the
	// platform has no such signal.
	SaveData() (on, ok bool)
	// Viewport returns the drawable size in CSS pixels and the device pixel ratio.
	Viewport() (w, h int, pixelRatio float64)
}

// Flags are the environment signals the engine adapts to.
type Flags struct {
	ReducedMotion bool
	SaveData      bool
	Compact       bool
	PixelRatio    float64
}

// Disabled reports whether decorative animation must not run at all.
func (f Flags) Disabled() bool {
	return f.ReducedMotion || f.SaveData
}

// Sample evaluates every flag once. Compact and PixelRatio are refreshed by
// Resize afterwards; the preferences are not re-read.
func Sample(s Sampler) Flags {
	saveData, ok := s.SaveData()
	w, h, ratio := s.Viewport()
	return Flags{
		ReducedMotion: s.PrefersReducedMotion(),
		SaveData:      ok && saveData,
		Compact:       IsCompact(w, h),
		PixelRatio:    ClampPixelRatio(ratio),
	}
}

// IsCompact is true for small viewports on either axis.
func IsCompact(w, h int) bool {
	return w <= CompactMaxWidth || h <= CompactMaxHeight
}

// ClampPixelRatio keeps the ratio at or above 1.
func ClampPixelRatio(r float64) float64 {
	if !finite(r) || r < 1 {
		return 1
	}
	return r
}

// Forced wraps a Sampler and forces either preference on. Settings and flags
// can only ever disable animation, never re-enable it against the platform.
type Forced struct {
	Sampler
	ReducedMotion bool
	SaveDataOn    bool
}

func (f Forced) PrefersReducedMotion() bool {
	return f.ReducedMotion || f.Sampler.PrefersReducedMotion()
}

func (f Forced) SaveData() (bool, bool) {
	if f.SaveDataOn {
		return true, true
	}
	return f.Sampler.SaveData()
}

type forcedHost struct {
	Host
	f Forced
}

func (h forcedHost) PrefersReducedMotion() bool { return h.f.PrefersReducedMotion() }
func (h forcedHost) SaveData() (bool, bool)     { return h.f.SaveData() }

// Force returns h with either preference forced on.
func Force(h Host, reducedMotion, saveData bool) Host {
	if !reducedMotion && !saveData {
		return h
	}
	return forcedHost{Host: h, f: Forced{Sampler: h, ReducedMotion: reducedMotion, SaveDataOn: saveData}}
}
