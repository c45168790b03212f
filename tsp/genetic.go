// Package tsp - genetic heuristic solver.
//
// Population: n chromosomes (one per location) stored in a single n*n arena,
// row i holding slot i's tour, plus a parallel fitness slice. Rows are
// rewritten in place, so "replace parent" and "replace worst" are plain
// copies into a row.
//
// Each generation draws u∈[0,1): u < MutationRate runs a crossover step,
// otherwise a mutation step.
//
//   - Crossover: two binary tournaments pick the parents; PMX between random
//     cut points yields two offspring; each replaces its own parent's slot
//     only if strictly lighter than that parent was before the step.
//   - Mutation: a tournament winner is cloned and two positions in 1..n-1
//     are swapped; the clone replaces the heaviest slot (ties broken
//     uniformly among all slots at the maximum) only if strictly lighter.
//
// After every step the population minimum is re-scanned and the incumbent
// updated. The incumbent is rotated so index 0 comes first before return.
//
// Deterministic for a fixed seed: the RNG is created per Solve call from
// Options.Seed and never shared.
//
// Complexity: O(n²) init + O(G·n) for G generations.
package tsp

import (
	"fmt"
	"math/rand"

	"github.com/MaxHalford/eaopt"

	"github.com/katalvlaran/tourplan/costmatrix"
)

type geneticSolver struct {
	generations int
	rate        float64
	seed        int64
}

// NewGenetic returns the genetic solver configured from opts.Generations,
// opts.MutationRate and opts.Seed.
func NewGenetic(opts Options) Solver {
	return geneticSolver{
		generations: opts.Generations,
		rate:        opts.MutationRate,
		seed:        opts.Seed,
	}
}

func (geneticSolver) Algorithm() Algorithm { return Genetic }

// population is the arena-backed set of candidate tours.
type population struct {
	n     int
	genes []int
	fit   []float64
	ties  []int
}

func newPopulation(n int) *population {
	return &population{
		n:     n,
		genes: make([]int, n*n),
		fit:   make([]float64, n),
		ties:  make([]int, 0, n),
	}
}

// row returns slot i's tour; the capacity is clipped so appends cannot
// spill into the next row.
func (p *population) row(i int) []int {
	return p.genes[i*p.n : (i+1)*p.n : (i+1)*p.n]
}

// argmin returns the lightest slot (first on ties).
func (p *population) argmin() int {
	var (
		best = 0
		i    int
	)
	for i = 1; i < p.n; i++ {
		if p.fit[i] < p.fit[best] {
			best = i
		}
	}
	return best
}

// worst returns a slot of maximum weight, chosen uniformly among all slots
// whose weight equals the maximum.
func (p *population) worst(rng *rand.Rand) int {
	var (
		hi = p.fit[0]
		i  int
	)
	for i = 1; i < p.n; i++ {
		if p.fit[i] > hi {
			hi = p.fit[i]
		}
	}
	p.ties = p.ties[:0]
	for i = 0; i < p.n; i++ {
		if p.fit[i] == hi {
			p.ties = append(p.ties, i)
		}
	}
	return p.ties[rng.Intn(len(p.ties))]
}

// tournament draws two random slots and returns the lighter (first draw on
// ties).
func (p *population) tournament(rng *rand.Rand) int {
	a := rng.Intn(p.n)
	b := rng.Intn(p.n)
	if p.fit[b] < p.fit[a] {
		return b
	}
	return a
}

// cutPoints returns two distinct cut points 0 ≤ cp1 < cp2 ≤ n.
func cutPoints(n int, rng *rand.Rand) (int, int) {
	a := rng.Intn(n + 1)
	b := rng.Intn(n)
	if b >= a {
		b++
	}
	if a > b {
		a, b = b, a
	}
	return a, b
}

// geneticRun is the per-call state of one Solve.
type geneticRun struct {
	m      *costmatrix.Matrix
	metric costmatrix.Metric
	rng    *rand.Rand
	pop    *population
	c1     []int
	c2     []int
	clone  []int
	pmx    *pmxScratch
}

func newGeneticRun(m *costmatrix.Matrix, metric costmatrix.Metric, seed int64) *geneticRun {
	n := m.Size()
	return &geneticRun{
		m:      m,
		metric: metric,
		rng:    rngFromSeed(seed),
		pop:    newPopulation(n),
		c1:     make([]int, n),
		c2:     make([]int, n),
		clone:  make([]int, n),
		pmx:    newPMXScratch(n),
	}
}

func (g geneticSolver) Solve(m *costmatrix.Matrix, metric costmatrix.Metric) ([]int, float64, error) {
	n := m.Size()
	if n < 2 {
		return nil, 0, fmt.Errorf("genetic: %d locations: %w", n, ErrInsufficientInput)
	}

	r := newGeneticRun(m, metric, g.seed)

	var (
		i  int
		err error
	)
	for i = 0; i < n; i++ {
		randomFixedStart(r.pop.row(i), r.rng)
		if r.pop.fit[i], err = r.weight(r.pop.row(i)); err != nil {
			return nil, 0, err
		}
	}

	bi := r.pop.argmin()
	best := CopyTour(r.pop.row(bi))
	bestW := r.pop.fit[bi]

	var gen int
	for gen = 0; gen < g.generations; gen++ {
		if r.rng.Float64() < g.rate {
			err = r.crossover()
		} else {
			err = r.mutate()
		}
		if err != nil {
			return nil, 0, err
		}
		bi = r.pop.argmin()
		if r.pop.fit[bi] < bestW {
			bestW = r.pop.fit[bi]
			copy(best, r.pop.row(bi))
		}
	}

	tour, err := RotateToStart(best, 0)
	if err != nil {
		return nil, 0, err
	}
	return tour, bestW, nil
}

func (r *geneticRun) weight(tour []int) (float64, error) {
	return r.m.EdgeCost(tour, true, r.metric)
}

// crossover runs one PMX step with parent replacement.
func (r *geneticRun) crossover() error {
	p1 := r.pop.tournament(r.rng)
	p2 := r.pop.tournament(r.rng)
	cp1, cp2 := cutPoints(r.pop.n, r.rng)
	return r.crossoverAt(p1, p2, cp1, cp2)
}

// crossoverAt crosses slots p1 and p2 between the cut points. Each child
// replaces its own parent only if strictly lighter than that parent's
// fitness before the step. With p1 == p2 both children equal the parent.
func (r *geneticRun) crossoverAt(p1, p2, cp1, cp2 int) error {
	prior1, prior2 := r.pop.fit[p1], r.pop.fit[p2]

	pmxChild(r.pop.row(p1), r.pop.row(p2), cp1, cp2, r.c1, r.pmx, r.rng)
	pmxChild(r.pop.row(p2), r.pop.row(p1), cp1, cp2, r.c2, r.pmx, r.rng)

	w1, err := r.weight(r.c1)
	if err != nil {
		return err
	}
	w2, err := r.weight(r.c2)
	if err != nil {
		return err
	}

	if w1 < prior1 {
		copy(r.pop.row(p1), r.c1)
		r.pop.fit[p1] = w1
	}
	if w2 < prior2 {
		copy(r.pop.row(p2), r.c2)
		r.pop.fit[p2] = w2
	}
	return nil
}

// mutate runs one swap-mutation step with worst-slot replacement.
func (r *geneticRun) mutate() error {
	s := r.pop.tournament(r.rng)
	copy(r.clone, r.pop.row(s))
	if r.pop.n > 2 {
		// position 0 stays put; swap two distinct positions of the tail
		eaopt.MutPermute(eaopt.IntSlice(r.clone[1:]), 1, r.rng)
	}

	w, err := r.weight(r.clone)
	if err != nil {
		return err
	}
	worst := r.pop.worst(r.rng)
	if w < r.pop.fit[worst] {
		copy(r.pop.row(worst), r.clone)
		r.pop.fit[worst] = w
	}
	return nil
}
