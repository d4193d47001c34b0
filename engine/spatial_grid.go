package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/skyhook/core"
)

// CellKey addresses one cube of a SpatialHash
type CellKey struct {
	X, Y, Z int32
}

// SpatialHash is a sparse 3D grid for broad-phase queries over axis-aligned bounds
// An entity spanning several cells is listed in each of them
// Not synchronized; the dedupe set is shared between queries
type SpatialHash struct {
	cellSize float64
	cells    map[CellKey][]core.Entity
	entries  int
	seen     map[core.Entity]struct{}
}

// NewSpatialHash creates a hash with the given cell edge length
func NewSpatialHash(cellSize float64) *SpatialHash {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &SpatialHash{
		cellSize: cellSize,
		cells:    make(map[CellKey][]core.Entity),
		seen:     make(map[core.Entity]struct{}),
	}
}

// Insert adds an entity covering the box center ± half
func (h *SpatialHash) Insert(e core.Entity, center, half mgl64.Vec3) {
	lo, hi := h.keyRange(center.Sub(half), center.Add(half))
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for z := lo.Z; z <= hi.Z; z++ {
				k := CellKey{x, y, z}
				h.cells[k] = append(h.cells[k], e)
			}
		}
	}
	h.entries++
}

// Query appends to out every entity whose cells overlap [min, max], without duplicates
func (h *SpatialHash) Query(min, max mgl64.Vec3, out []core.Entity) []core.Entity {
	lo, hi := h.keyRange(min, max)
	clear(h.seen)
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for z := lo.Z; z <= hi.Z; z++ {
				out = h.collect(CellKey{x, y, z}, out)
			}
		}
	}
	return out
}

// QueryRay appends every entity listed in a cell the segment origin + dir*[0, maxDist] passes through
// dir must be unit length; cells are walked in ray order (3D DDA)
func (h *SpatialHash) QueryRay(origin, dir mgl64.Vec3, maxDist float64, out []core.Entity) []core.Entity {
	clear(h.seen)
	start := h.key(origin)
	end := h.key(origin.Add(dir.Mul(maxDist)))
	steps := span(start.X, end.X) + span(start.Y, end.Y) + span(start.Z, end.Z)

	cell := [3]int32{start.X, start.Y, start.Z}
	var step [3]int32
	var next, delta [3]float64
	for i := 0; i < 3; i++ {
		d := dir[i]
		switch {
		case d > 0:
			step[i] = 1
			next[i] = ((float64(cell[i])+1)*h.cellSize - origin[i]) / d
			delta[i] = h.cellSize / d
		case d < 0:
			step[i] = -1
			next[i] = (float64(cell[i])*h.cellSize - origin[i]) / d
			delta[i] = -h.cellSize / d
		default:
			next[i] = math.Inf(1)
			delta[i] = math.Inf(1)
		}
	}

	for n := int64(0); ; n++ {
		out = h.collect(CellKey{cell[0], cell[1], cell[2]}, out)
		if n >= steps {
			break
		}
		axis := 0
		if next[1] < next[axis] {
			axis = 1
		}
		if next[2] < next[axis] {
			axis = 2
		}
		if next[axis] > maxDist {
			break
		}
		cell[axis] += step[axis]
		next[axis] += delta[axis]
	}
	return out
}

func (h *SpatialHash) collect(k CellKey, out []core.Entity) []core.Entity {
	for _, e := range h.cells[k] {
		if _, dup := h.seen[e]; dup {
			continue
		}
		h.seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}

// span is the cell distance between two coordinates on one axis
func span(a, b int32) int64 {
	d := int64(b) - int64(a)
	if d < 0 {
		return -d
	}
	return d
}

// Len returns the number of inserted entities
func (h *SpatialHash) Len() int {
	return h.entries
}

// Clear removes all entities, keeping cell storage for reuse
func (h *SpatialHash) Clear() {
	for k, v := range h.cells {
		h.cells[k] = v[:0]
	}
	h.entries = 0
}

func (h *SpatialHash) keyRange(min, max mgl64.Vec3) (CellKey, CellKey) {
	return h.key(min), h.key(max)
}

func (h *SpatialHash) key(p mgl64.Vec3) CellKey {
	return CellKey{
		X: h.coord(p.X()),
		Y: h.coord(p.Y()),
		Z: h.coord(p.Z()),
	}
}

// coord clamps to int32 so extreme positions stay addressable
func (h *SpatialHash) coord(v float64) int32 {
	c := math.Floor(v / h.cellSize)
	if c != c {
		return 0
	}
	if c < math.MinInt32 {
		return math.MinInt32
	}
	if c > math.MaxInt32-1 {
		return math.MaxInt32 - 1
	}
	return int32(c)
}
