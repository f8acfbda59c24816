package chart

// Palette is the qualitative color sequence used for bars: the first nine
// colors of the default plotly sequence, so indices wrap modulo 9. It must
// not be modified.
var Palette = [...]string{
	"#636EFA",
	"#EF553B",
	"#00CC96",
	"#AB63FA",
	"#FFA15A",
	"#19D3F3",
	"#FF6692",
	"#B6E880",
	"#FF97FF",
}

// ColorFor picks the palette entry of one bar. grid is true for dense and
// sparse scenes, where x+y colors use the cell position; paired scenes use
// the point index instead. Indices wrap around the palette.
func ColorFor(mode ColorMode, xi, yi, yCount, pointIndex int, grid bool) string {
	var n int
	switch mode {
	case ColorY:
		n = yi
	case ColorXY:
		if grid {
			n = xi + yi*yCount
		} else {
			n = pointIndex
		}
	default:
		n = xi
	}
	return Palette[n%len(Palette)]
}
