package analysis

import (
	"strings"

	"github.com/san-kum/suvat/internal/motion"
)

// PhasePoint is one (s, v) pair.
type PhasePoint struct {
	S, V float64
}

// PhasePortrait is the trajectory of a run in the (s, v) plane. Under
// constant acceleration it traces a parabola.
type PhasePortrait struct {
	Points []PhasePoint
}

func GeneratePhasePortrait(res *motion.Result) *PhasePortrait {
	if res == nil {
		return nil
	}
	portrait := &PhasePortrait{Points: make([]PhasePoint, 0, len(res.Samples))}
	for _, s := range res.Samples {
		portrait.Points = append(portrait.Points, PhasePoint{S: s.S.Value(), V: s.V.Value()})
	}
	return portrait
}

// TurningPoints returns the samples at which v reaches zero or changes sign.
func TurningPoints(res *motion.Result) []motion.Sample {
	var out []motion.Sample
	for i := 1; i < len(res.Samples); i++ {
		prev, cur := res.Samples[i-1].V.Sign(), res.Samples[i].V.Sign()
		if prev != 0 && cur != prev {
			out = append(out, res.Samples[i])
		}
	}
	return out
}

// ToASCII plots s across and v up on a width×height character grid, with
// axes drawn where they fall inside the plotted range.
func (p *PhasePortrait) ToASCII(width, height int) string {
	if p == nil || len(p.Points) == 0 || width < 2 || height < 2 {
		return ""
	}

	minS, maxS := p.Points[0].S, p.Points[0].S
	minV, maxV := p.Points[0].V, p.Points[0].V
	for _, pt := range p.Points {
		minS, maxS = min(minS, pt.S), max(maxS, pt.S)
		minV, maxV = min(minV, pt.V), max(maxV, pt.V)
	}

	spanS, spanV := pad(&minS, &maxS), pad(&minV, &maxV)

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	col := func(s float64) int { return int((s - minS) / spanS * float64(width-1)) }
	row := func(v float64) int { return height - 1 - int((v-minV)/spanV*float64(height-1)) }

	for _, pt := range p.Points {
		r, c := row(pt.V), col(pt.S)
		if r >= 0 && r < height && c >= 0 && c < width {
			grid[r][c] = '•'
		}
	}

	if minS <= 0 && maxS >= 0 {
		c := col(0)
		for r := range grid {
			if grid[r][c] == ' ' {
				grid[r][c] = '│'
			}
		}
	}
	if minV <= 0 && maxV >= 0 {
		r := row(0)
		for c := range grid[r] {
			if grid[r][c] == ' ' {
				grid[r][c] = '─'
			}
		}
	}

	var sb strings.Builder
	for _, line := range grid {
		sb.WriteString(string(line))
		sb.WriteRune('\n')
	}
	return sb.String()
}

// pad widens [lo, hi] by 10% each side and returns the new span.
func pad(lo, hi *float64) float64 {
	span := *hi - *lo
	if span == 0 {
		span = 1
	}
	*lo -= span * 0.1
	*hi += span * 0.1
	return *hi - *lo
}
