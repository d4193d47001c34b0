package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/skyhook/component"
	"github.com/lixenwraith/skyhook/parameter"
)

// thingamajigOffsets returns member offsets from the composite center for a shape
// Both lattices are centered, cell pitch parameter.ThingamajigSpacing
func thingamajigOffsets(shape component.ThingamajigShape) []mgl64.Vec3 {
	switch shape {
	case component.ShapeSphereShell:
		return sphereShellOffsets(parameter.ThingamajigShellRadius, parameter.ThingamajigShellThickness, parameter.ThingamajigSpacing)
	default:
		return hollowBoxOffsets(parameter.ThingamajigBoxCells, parameter.ThingamajigSpacing)
	}
}

// hollowBoxOffsets keeps the boundary cells of an n*n*n lattice
func hollowBoxOffsets(n int, spacing float64) []mgl64.Vec3 {
	if n <= 0 {
		return nil
	}
	mid := float64(n-1) / 2
	out := make([]mgl64.Vec3, 0, n*n*n)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				if x != 0 && x != n-1 && y != 0 && y != n-1 && z != 0 && z != n-1 {
					continue
				}
				out = append(out, mgl64.Vec3{
					(float64(x) - mid) * spacing,
					(float64(y) - mid) * spacing,
					(float64(z) - mid) * spacing,
				})
			}
		}
	}
	return out
}

// sphereShellOffsets keeps lattice cells whose distance from center is within thickness of radius
func sphereShellOffsets(radius, thickness, spacing float64) []mgl64.Vec3 {
	r := int(math.Ceil(radius + thickness))
	out := make([]mgl64.Vec3, 0, 4*r*r*r)
	for x := -r; x <= r; x++ {
		for y := -r; y <= r; y++ {
			for z := -r; z <= r; z++ {
				d := math.Sqrt(float64(x*x + y*y + z*z))
				if math.Abs(d-radius) >= thickness {
					continue
				}
				out = append(out, mgl64.Vec3{float64(x) * spacing, float64(y) * spacing, float64(z) * spacing})
			}
		}
	}
	return out
}

// boundingHalf returns the cube half size enclosing all member cuboids
func boundingHalf(offsets []mgl64.Vec3, cubeHalf float64) float64 {
	var m float64
	for _, o := range offsets {
		m = math.Max(m, math.Max(math.Abs(o.X()), math.Max(math.Abs(o.Y()), math.Abs(o.Z()))))
	}
	return m + cubeHalf
}
