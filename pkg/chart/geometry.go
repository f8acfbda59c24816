package chart

// Vec3 is a point in scene coordinates.
type Vec3 struct {
	X, Y, Z float64
}

// Triangle indexes three vertices of a [Cuboid].
type Triangle [3]int

// Faces is the triangulation shared by every cuboid: two triangles per side,
// indexing the vertex order produced by [NewCuboid]. It must not be modified.
var Faces = [12]Triangle{
	{7, 3, 0}, {0, 4, 7}, {0, 1, 2}, {0, 2, 3},
	{4, 5, 6}, {4, 6, 7}, {6, 5, 1}, {6, 2, 1},
	{4, 0, 5}, {0, 1, 5}, {3, 6, 7}, {2, 3, 6},
}

// FaceIndices returns the i, j and k index lists of [Faces], the layout mesh
// consumers such as plotly expect.
func FaceIndices() (i, j, k []int) {
	i, j, k = make([]int, len(Faces)), make([]int, len(Faces)), make([]int, len(Faces))
	for n, f := range Faces {
		i[n], j[n], k[n] = f[0], f[1], f[2]
	}
	return i, j, k
}

// PlaceholderOpacity is the opacity of missing cells. The mesh stays in the
// scene but is visually negligible.
const PlaceholderOpacity = 0.01

// Cuboid is an axis-aligned box approximated by eight vertices. Vertices 0-3
// form the bottom ring and 4-7 the top ring in the same (x, y) order.
type Cuboid struct {
	Vertices [8]Vec3
	Color    string
	Opacity  float64
	Hover    string
}

// NewCuboid returns the box spanning the given bounds with full opacity and
// no color.
func NewCuboid(xMin, xMax, yMin, yMax, zBase, zTop float64) Cuboid {
	xs := [8]float64{xMin, xMin, xMax, xMax, xMin, xMin, xMax, xMax}
	ys := [8]float64{yMin, yMax, yMax, yMin, yMin, yMax, yMax, yMin}
	var c Cuboid
	for i := range c.Vertices {
		z := zBase
		if i >= 4 {
			z = zTop
		}
		c.Vertices[i] = Vec3{X: xs[i], Y: ys[i], Z: z}
	}
	c.Opacity = 1
	return c
}

// Min returns the lowest corner.
func (c Cuboid) Min() Vec3 { return c.Vertices[0] }

// Max returns the highest corner.
func (c Cuboid) Max() Vec3 { return c.Vertices[6] }

// Coords returns the vertex coordinates as three parallel slices.
func (c Cuboid) Coords() (xs, ys, zs []float64) {
	xs, ys, zs = make([]float64, 8), make([]float64, 8), make([]float64, 8)
	for i, v := range c.Vertices {
		xs[i], ys[i], zs[i] = v.X, v.Y, v.Z
	}
	return xs, ys, zs
}
