// Package visual describes the decorative particle field behind the site.
package visual

import "math/rand/v2"

const (
	DefaultCount   = 2000
	MaxCount       = 10000
	Spread         = 15.0
	ParticleSize   = 0.02
	Color          = "#38bdf8"
	Opacity        = 0.8
	CameraZ        = 3.0
	spinY          = 0.05
	spinX          = 0.02
	mouseInfluence = 0.00005
)

// Field is a cloud of particles centred on the origin
type Field struct {
	Count     int       `json:"count"`
	Positions []float64 `json:"positions"`
	Size      float64   `json:"size"`
	Color     string    `json:"color"`
	Opacity   float64   `json:"opacity"`
	CameraZ   float64   `json:"camera_z"`
}

// NewField scatters count particles uniformly in a cube of side Spread.
// Positions holds x, y, z for each particle in turn.
func NewField(count int, rng *rand.Rand) Field {
	count = ClampCount(count)
	pos := make([]float64, count*3)
	for i := range pos {
		pos[i] = (rng.Float64() - 0.5) * Spread
	}
	return Field{
		Count:     count,
		Positions: pos,
		Size:      ParticleSize,
		Color:     Color,
		Opacity:   Opacity,
		CameraZ:   CameraZ,
	}
}

// ClampCount keeps count within [1, MaxCount]
func ClampCount(count int) int {
	return max(1, min(count, MaxCount))
}

// Rotation returns the field's rotation about the x and y axes after elapsed
// seconds, nudged by the pointer's client coordinates in pixels (measured
// from the top-left of the viewport, not its centre).
func Rotation(elapsed, mouseX, mouseY float64) (x, y float64) {
	y = elapsed*spinY + mouseX*mouseInfluence
	x = elapsed*spinX + mouseY*mouseInfluence
	return x, y
}
