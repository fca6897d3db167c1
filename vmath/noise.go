package vmath

import "github.com/aquilax/go-perlin"

// Perlin parameters: alpha controls smoothing, beta frequency, octaves detail
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
)

// Noise is a seeded perlin source mapped to [0, 1]
type Noise struct {
	p *perlin.Perlin
}

func NewNoise(seed int64) *Noise {
	return &Noise{p: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)}
}

// At1D samples the noise curve at x
func (n *Noise) At1D(x float64) float64 {
	return Clamp((n.p.Noise1D(x)+1)/2, 0, 1)
}

// At2D samples the noise field at (x, y)
func (n *Noise) At2D(x, y float64) float64 {
	return Clamp((n.p.Noise2D(x, y)+1)/2, 0, 1)
}
