package ngon

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/superngon/internal/config"
	"github.com/vovakirdan/superngon/internal/core"
)

// Pulse bounds: expansion always lies in [PulseMin, PulseMax].
const (
	PulseMin = 0.81
	PulseMax = 1.21
)

// Motion holds the parameters of the track's rotation, pulse and hue between
// two beats. It is an immutable value: a beat replaces it wholesale, and the
// samplers are pure functions of the value and a point in time.
type Motion struct {
	Anchor        time.Time     // Time the parameters were captured
	PastRotation  float64       // Rotation at Anchor, degrees
	RotationDelta float64       // Angular speed, degrees per second
	PulseInterval float64       // Seconds per pulse; <= 0 disables the pulse
	PastHue       float64       // Hue at Anchor, [0,1)
	NextHue       float64       // Hue reached after HueFade, [0,1)
	HueFade       time.Duration // Hue interpolation window
	NextBeat      time.Time     // When the parameters are due to be replaced
}

// IdentityMotion returns a still track at rotation with a constant hue and no
// pulse. It is due immediately so the first running tick draws real motion.
func IdentityMotion(rotation, hue float64, now time.Time) Motion {
	return Motion{
		Anchor:       now,
		PastRotation: core.NormalizeDegrees(rotation),
		PastHue:      hue,
		NextHue:      hue,
		NextBeat:     now,
	}
}

func (m Motion) since(now time.Time) float64 {
	return now.Sub(m.Anchor).Seconds()
}

// Rotation returns the track rotation in degrees [0,360) at now.
func (m Motion) Rotation(now time.Time) float64 {
	return core.NormalizeDegrees(m.PastRotation + m.RotationDelta*m.since(now))
}

// Expansion returns the pulse scale at now: a sawtooth that starts each
// interval at PulseMax and eases down towards PulseMin.
func (m Motion) Expansion(now time.Time) float64 {
	if m.PulseInterval <= 0 {
		return 1
	}
	e := math.Mod(m.since(now), m.PulseInterval)
	if e < 0 {
		e += m.PulseInterval
	}
	x := (m.PulseInterval-e)/m.PulseInterval*0.2 + 0.9
	return x * x
}

// Hue returns the track hue at now, moving linearly from PastHue to NextHue
// over HueFade and holding NextHue afterwards.
func (m Motion) Hue(now time.Time) float64 {
	s := m.since(now)
	fade := m.HueFade.Seconds()
	switch {
	case s <= 0:
		return m.PastHue
	case fade <= 0 || s >= fade:
		return m.NextHue
	}
	return m.PastHue + (m.NextHue-m.PastHue)*s/fade
}

// Due reports whether the next beat has arrived.
func (m Motion) Due(now time.Time) bool {
	return !now.Before(m.NextBeat)
}

// Reanchor starts a new beat at now. The rotation and hue continue from
// their current values; speed, direction, pulse, target hue and the next
// beat time are drawn from rng.
func (m Motion) Reanchor(now time.Time, rng *rand.Rand, cfg config.MotionConfig) Motion {
	r := rng.Float64()
	sign := 1.0
	if rng.Intn(2) == 0 {
		sign = -1
	}
	beat := cfg.BeatMinSecs
	if span := cfg.BeatMaxSecs - cfg.BeatMinSecs; span > 0 {
		beat += rng.Intn(span + 1)
	}

	return Motion{
		Anchor:        now,
		PastRotation:  m.Rotation(now),
		RotationDelta: (r*(cfg.MaxSpeed-cfg.MinSpeed) + cfg.MinSpeed) * sign,
		PulseInterval: 1 - r*cfg.PulseSpread,
		PastHue:       m.Hue(now),
		NextHue:       rng.Float64(),
		HueFade:       time.Duration(cfg.HueFadeSecs * float64(time.Second)),
		NextBeat:      now.Add(time.Duration(beat) * time.Second),
	}
}

// Freeze stops rotation and hue at their values at now. The pulse keeps
// running.
func (m Motion) Freeze(now time.Time) Motion {
	hue := m.Hue(now)
	return Motion{
		Anchor:        now,
		PastRotation:  m.Rotation(now),
		PulseInterval: m.PulseInterval,
		PastHue:       hue,
		NextHue:       hue,
		NextBeat:      m.NextBeat,
	}
}
