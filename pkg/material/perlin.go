package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

const perlinPointCount = 256

// DefaultTurbulenceDepth is the number of octaves summed by Turbulence
const DefaultTurbulenceDepth = 7

// Perlin is a gradient noise generator over a 256-entry lattice.
// Read-only after construction, safe for concurrent use.
type Perlin struct {
	gradients [perlinPointCount]core.Vec3
	permX     [perlinPointCount]int
	permY     [perlinPointCount]int
	permZ     [perlinPointCount]int
}

// NewPerlin builds the gradient and permutation tables from random.
// The same seed always yields the same noise field.
func NewPerlin(random *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := range p.gradients {
		for {
			g := core.NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 2*random.Float64()-1)
			if l := g.LengthSquared(); l > 1e-6 && l <= 1 {
				p.gradients[i] = g.Normalize()
				break
			}
		}
	}
	p.permX = perlinPermutation(random)
	p.permY = perlinPermutation(random)
	p.permZ = perlinPermutation(random)
	return p
}

func perlinPermutation(random *rand.Rand) [perlinPointCount]int {
	var perm [perlinPointCount]int
	for i := range perm {
		perm[i] = i
	}
	for i := perlinPointCount - 1; i > 0; i-- {
		target := random.Intn(i + 1)
		perm[i], perm[target] = perm[target], perm[i]
	}
	return perm
}

// Noise returns smoothed gradient noise at p, approximately in [-1, 1].
// It is zero on integer lattice points and continuous across cell boundaries.
func (p *Perlin) Noise(point core.Vec3) float64 {
	fx, fy, fz := math.Floor(point.X), math.Floor(point.Y), math.Floor(point.Z)
	u := point.X - fx
	v := point.Y - fy
	w := point.Z - fz

	i, j, k := int(fx), int(fy), int(fz)

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.gradients[p.permX[(i+di)&255]^p.permY[(j+dj)&255]^p.permZ[(k+dk)&255]]
			}
		}
	}

	return perlinInterp(c, u, v, w)
}

// perlinInterp blends the corner gradients with Hermite-smoothed trilinear weights
func perlinInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Turbulence sums depth octaves of noise with halving weight and doubling frequency
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return math.Abs(accum)
}
