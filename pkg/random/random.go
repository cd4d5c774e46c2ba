package random

import (
	"math"
	"math/rand/v2"
	"sync"

	"github.com/dmitrymomot/simplehelpers/pkg/validator"
)

// DefaultMax is the upper bound used by Default when none is configured.
const DefaultMax = 10

// Generator produces random integers in [1, max].
type Generator struct {
	check      *validator.Checker
	mu         sync.Mutex
	rnd        *rand.Rand
	defaultMax int
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource replaces the random source, e.g. with a seeded rand.NewPCG for tests.
func WithSource(src rand.Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.rnd = rand.New(src)
		}
	}
}

// WithDefaultMax sets the bound used by Default. Values below 1 are ignored.
func WithDefaultMax(max int) Option {
	return func(g *Generator) {
		if max >= 1 {
			g.defaultMax = max
		}
	}
}

// New creates a Generator backed by a randomly seeded PCG source.
func New(check *validator.Checker, opts ...Option) *Generator {
	g := &Generator{
		check:      check,
		rnd:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		defaultMax: DefaultMax,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Int returns a uniformly distributed integer in [1, max], computed as
// floor(u*max)+1 with u uniform in [0, 1). It returns 0, which is never a valid
// result, when max is zero or negative.
func (g *Generator) Int(max int) int {
	if !g.check.Check(max, "max") {
		return 0
	}
	if max < 1 {
		g.check.Check(0, "max")
		return 0
	}

	g.mu.Lock()
	u := g.rnd.Float64()
	g.mu.Unlock()

	return int(math.Floor(u*float64(max))) + 1
}

// Default returns Int(defaultMax).
func (g *Generator) Default() int {
	return g.Int(g.defaultMax)
}
