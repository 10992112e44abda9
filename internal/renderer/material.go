package renderer

var (
	Gray  = [3]float32{0.5, 0.5, 0.5}
	White = [3]float32{1.0, 1.0, 1.0}
)

type Material struct {
	DiffuseColor  [3]float32 // Base color
	SpecularColor [3]float32
	Alpha         float32 // 0.0 = transparent, 1.0 = opaque
	Name          string
}

// DefaultMaterial is the fallback for markers created without one
var DefaultMaterial = &Material{
	Name:          "default",
	DiffuseColor:  White,
	SpecularColor: White,
	Alpha:         1.0,
}

// NewFlatMaterial returns an opaque unlit material of a single color
func NewFlatMaterial(name string, color [3]float32) *Material {
	return &Material{
		Name:          name,
		DiffuseColor:  color,
		SpecularColor: color,
		Alpha:         1.0,
	}
}

func (m *Material) SetDiffuseColor(color [3]float32) {
	m.DiffuseColor = color
}
