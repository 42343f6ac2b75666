// SPDX-License-Identifier: MIT
// Command planarplot renders a polygon before and after an affine transform,
// as a quick visual sanity check of the composition pipeline. The transform
// is Mul(translate, Mul(rotate, scale)): scale first, then rotate, then move.
//
// Usage:
//
//	planarplot [-o out.png] [-angle rad] [-sx f] [-sy f] [-tx f] [-ty f]
package main

import (
	"flag"
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/planar/affine"
	"github.com/katalvlaran/planar/vec2"
)

// polygon is the source shape, an L-shaped hexagon that makes orientation
// flips and rotations visible (a square would hide them).
var polygon = []vec2.Vec2d{
	{X: 0, Y: 0},
	{X: 2, Y: 0},
	{X: 2, Y: 1},
	{X: 1, Y: 1},
	{X: 1, Y: 3},
	{X: 0, Y: 3},
}

func main() {
	out := flag.String("o", "planarplot.png", "output PNG path")
	angle := flag.Float64("angle", 0.5, "rotation angle, radians")
	sx := flag.Float64("sx", 1.5, "x scale factor")
	sy := flag.Float64("sy", 0.75, "y scale factor")
	tx := flag.Float64("tx", 4, "x translation")
	ty := flag.Float64("ty", 1, "y translation")
	flag.Parse()

	m := affine.Mul(
		affine.Translation[float64, affine.ColMajor](vec2.New(*tx, *ty)),
		affine.Mul(
			affine.Rotation[float64, affine.ColMajor](*angle),
			affine.Scaling[float64, affine.ColMajor](*sx, *sy),
		),
	)

	if err := render(m, *out); err != nil {
		fmt.Fprintln(os.Stderr, "planarplot:", err)
		os.Exit(1)
	}
	fmt.Println("wrote", *out, "det =", m.Determinant())
}

// render draws the source polygon and its image under m into a PNG.
func render(m affine.Aff3d, path string) error {
	p := plot.New()
	p.Title.Text = "affine transform"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	src, err := outline(polygon, nil)
	if err != nil {
		return err
	}
	src.LineStyle.Width = vg.Points(1)
	p.Add(src)
	p.Legend.Add("source", src)

	dst, err := outline(polygon, &m)
	if err != nil {
		return err
	}
	dst.LineStyle.Width = vg.Points(2)
	p.Add(dst)
	p.Legend.Add("transformed", dst)

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

// outline converts a polygon into a closed plotter.Line, applying m to each
// vertex when m is non-nil.
func outline(poly []vec2.Vec2d, m *affine.Aff3d) (*plotter.Line, error) {
	pts := make(plotter.XYs, 0, len(poly)+1)
	for _, v := range poly {
		if m != nil {
			v = m.TransformPoint(v)
		}
		pts = append(pts, plotter.XY{X: v.X, Y: v.Y})
	}
	pts = append(pts, pts[0]) // close the loop

	return plotter.NewLine(pts)
}
