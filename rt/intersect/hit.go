package intersect

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Hit is the payload of one intersection query. It is constructed fresh per
// query and never retained across rays.
type Hit struct {
	Ok         bool
	Position   mgl32.Vec3
	Normal     mgl32.Vec3
	MaterialID int32
	T          float32
}

// miss is the zero payload.
func miss() Hit {
	return Hit{}
}
