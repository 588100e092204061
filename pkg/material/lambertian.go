package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo Texture // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter returns the albedo as attenuation and a cosine PDF about the normal
func (l *Lambertian) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{
		Attenuation: l.Albedo.Value(hit.UV, hit.Point),
		PDF:         pdf.NewCosinePDF(hit.Normal),
	}, true
}

// ScatteringPDF returns max(0, cos θ) / π
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	cosine := hit.Normal.Dot(scattered.Direction.Normalize())
	if cosine < 0 {
		return 0
	}
	return cosine / math.Pi
}
