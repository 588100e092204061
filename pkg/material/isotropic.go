package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Isotropic scatters uniformly in all directions, used inside participating media
type Isotropic struct {
	Albedo Texture
}

// NewIsotropic creates an isotropic phase function with a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic phase function from a texture
func NewTexturedIsotropic(albedo Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter returns the albedo with a uniform sphere PDF
func (i *Isotropic) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{
		Attenuation: i.Albedo.Value(hit.UV, hit.Point),
		PDF:         pdf.SpherePDF{},
	}, true
}

// ScatteringPDF returns 1/(4π) for every direction
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 1.0 / (4.0 * math.Pi)
}
