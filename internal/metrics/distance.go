package metrics

import (
	"github.com/san-kum/suvat/internal/motion"
	"github.com/san-kum/suvat/internal/quantity"
)

// Displacement reports the last observed s.
type Displacement struct {
	name string
	last quantity.Distance
}

func NewDisplacement() *Displacement {
	return &Displacement{name: "displacement"}
}

func (d *Displacement) Name() string { return d.name }

func (d *Displacement) Observe(s motion.Sample) { d.last = s.S }

func (d *Displacement) Value() float64 { return d.last.Value() }

func (d *Displacement) Reset() { d.last = quantity.Distance{} }

// PathLength sums the distance between consecutive samples, so a body that
// turns around accumulates both legs.
type PathLength struct {
	name    string
	total   quantity.Distance
	prev    quantity.Distance
	started bool
}

func NewPathLength() *PathLength {
	return &PathLength{name: "path_length"}
}

func (p *PathLength) Name() string { return p.name }

func (p *PathLength) Observe(s motion.Sample) {
	if p.started {
		p.total = p.total.Add(s.S.Dist(p.prev))
	}
	p.prev = s.S
	p.started = true
}

func (p *PathLength) Value() float64 { return p.total.Value() }

func (p *PathLength) Reset() {
	p.total = quantity.Distance{}
	p.prev = quantity.Distance{}
	p.started = false
}

// Bounded is the fraction of samples with |s| within limit.
type Bounded struct {
	name       string
	limit      quantity.Distance
	violations int
	samples    int
}

func NewBounded(limit quantity.Distance) *Bounded {
	return &Bounded{name: "bounded", limit: limit.Abs()}
}

func (b *Bounded) Name() string { return b.name }

func (b *Bounded) Observe(s motion.Sample) {
	b.samples++
	if s.S.Abs().Gt(b.limit) {
		b.violations++
	}
}

func (b *Bounded) Value() float64 {
	if b.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(b.violations)/float64(b.samples)
}

func (b *Bounded) Reset() {
	b.violations = 0
	b.samples = 0
}
