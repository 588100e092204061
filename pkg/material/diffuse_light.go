package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight emits light from its front face and never scatters
type DiffuseLight struct {
	Emit Texture
}

// NewDiffuseLight creates an emitter with a constant color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates an emitter whose radiance comes from a texture
func NewTexturedDiffuseLight(emit Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter always absorbs
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

// ScatteringPDF is zero since lights do not scatter
func (d *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted returns the texture value on the front face and black on the back
func (d *DiffuseLight) Emitted(rayIn core.Ray, hit *HitRecord) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return d.Emit.Value(hit.UV, hit.Point)
}
