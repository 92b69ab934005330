package poolprobe

import (
	"errors"
	"math/rand/v2"
	"slices"
)

var (
	// ErrInvalidCount is returned when a pool size is negative.
	ErrInvalidCount = errors.New("poolprobe: invalid pool size")

	// ErrInvalidRange is returned when a value range has min greater than max.
	ErrInvalidRange = errors.New("poolprobe: invalid value range")
)

// Pool is an ordered, immutable sequence of integers within [Min, Max].
type Pool struct {
	values []int
	min    int
	max    int
}

// FromValues creates a pool holding a copy of values, in order.
// The pool's bounds are the smallest and largest value given, or [0, 0] when
// values is empty.
func FromValues(values []int) *Pool {
	p := &Pool{values: slices.Clone(values)}
	if len(values) > 0 {
		p.min = slices.Min(values)
		p.max = slices.Max(values)
	}
	return p
}

// Len returns the number of values in the pool.
func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.values)
}

// At returns the value at index i. It panics if i is out of range.
func (p *Pool) At(i int) int {
	return p.values[i]
}

// Values returns a copy of the pool's values.
func (p *Pool) Values() []int {
	if p == nil {
		return nil
	}
	return slices.Clone(p.values)
}

// Min returns the lower bound of the range the pool was drawn from.
func (p *Pool) Min() int {
	return p.min
}

// Max returns the upper bound (inclusive) of the range the pool was drawn from.
func (p *Pool) Max() int {
	return p.max
}

// Generator draws pools of uniformly distributed integers.
type Generator struct {
	rng    *rand.Rand // nil means the unseeded global source
	seed   uint64
	seeded bool
	min    int
	max    int
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes the generator deterministic: two generators with the same
// seed and range produce identical pools.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.seed = seed
		g.seeded = true
	}
}

// WithRange sets the inclusive range values are drawn from.
func WithRange(lo, hi int) Option {
	return func(g *Generator) {
		g.min = lo
		g.max = hi
	}
}

// NewGenerator creates a generator drawing from [DefaultMin, DefaultMax]
// using an unseeded source unless options say otherwise.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		min: DefaultMin,
		max: DefaultMax,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.seeded {
		g.rng = rand.New(rand.NewPCG(g.seed, g.seed))
	}
	return g
}

// Seed returns the generator's seed and whether one was set.
func (g *Generator) Seed() (uint64, bool) {
	return g.seed, g.seeded
}

// Generate draws a pool of n values, each sampled independently and with
// replacement. A size of zero yields an empty pool.
func (g *Generator) Generate(n int) (*Pool, error) {
	if err := validateCount(n); err != nil {
		return nil, err
	}
	if err := validateRange(g.min, g.max); err != nil {
		return nil, err
	}

	values := make([]int, n)
	for i := range values {
		values[i] = g.draw()
	}

	return &Pool{values: values, min: g.min, max: g.max}, nil
}

// draw returns one value in [g.min, g.max].
func (g *Generator) draw() int {
	// Unsigned arithmetic keeps the span exact for ranges wider than MaxInt.
	// A span of zero means the range covers every uint64.
	span := uint64(g.max) - uint64(g.min) + 1

	var off uint64
	switch {
	case span == 0 && g.rng != nil:
		off = g.rng.Uint64()
	case span == 0:
		off = rand.Uint64()
	case g.rng != nil:
		off = g.rng.Uint64N(span)
	default:
		off = rand.Uint64N(span)
	}

	return int(uint64(g.min) + off)
}

// Generate draws a pool of n values from [DefaultMin, DefaultMax] using the
// unseeded global source.
func Generate(n int) (*Pool, error) {
	return NewGenerator().Generate(n)
}
