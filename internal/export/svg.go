// Package export renders stored trajectories as standalone SVG line plots.
package export

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/san-kum/suvat/internal/motion"
)

var (
	// ErrTooFewPoints indicates fewer than two plottable points.
	ErrTooFewPoints = errors.New("export: need at least two finite points")

	ErrUnknownSeries = errors.New("export: unknown series")
)

// Series selects which pair of sample fields is plotted.
type Series string

const (
	DistanceTime Series = "distance"
	SpeedTime    Series = "speed"
	Phase        Series = "phase"
)

func ParseSeries(s string) (Series, error) {
	switch Series(strings.ToLower(s)) {
	case DistanceTime:
		return DistanceTime, nil
	case SpeedTime:
		return SpeedTime, nil
	case Phase:
		return Phase, nil
	}
	return "", fmt.Errorf("%w: %q (want distance, speed or phase)", ErrUnknownSeries, s)
}

type Point struct {
	X, Y float64
}

// Points extracts the series from res. Non-finite samples are skipped.
func Points(res *motion.Result, series Series) ([]Point, error) {
	pts := make([]Point, 0, len(res.Samples))
	for _, s := range res.Samples {
		var p Point
		switch series {
		case DistanceTime:
			p = Point{s.T.Value(), s.S.Value()}
		case SpeedTime:
			p = Point{s.T.Value(), s.V.Value()}
		case Phase:
			p = Point{s.S.Value(), s.V.Value()}
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownSeries, series)
		}
		if isFinite(p.X) && isFinite(p.Y) {
			pts = append(pts, p)
		}
	}
	return pts, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Options controls the SVG canvas.
type Options struct {
	Width, Height int
	Stroke        string
	Background    string
}

func DefaultOptions() Options {
	return Options{Width: 640, Height: 360, Stroke: "#00ff00", Background: "#0a0a0a"}
}

// WriteSVG draws pts as a single path scaled to fill the canvas with a 10%
// margin on each axis.
func WriteSVG(w io.Writer, pts []Point, opts Options) error {
	if len(pts) < 2 {
		return ErrTooFewPoints
	}

	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	width, height := float64(opts.Width), float64(opts.Height)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		opts.Width, opts.Height, opts.Width, opts.Height, opts.Background, opts.Stroke)

	for i, p := range pts {
		x := (p.X - minX) / rangeX * width
		y := height - (p.Y-minY)/rangeY*height
		if i > 0 {
			sb.WriteString(" L")
		}
		fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
	}
	sb.WriteString("\"/>\n</svg>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
