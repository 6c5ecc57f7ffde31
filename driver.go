package hypergrasp

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// GRASP is the Hyper-GRASP outer loop: iterated randomized-greedy
// construction driven by hypervolume contributions of problem-specific
// bounds, optionally followed by local search.
type GRASP struct {
	Problem      Problem
	Stopping     StoppingCriteria
	Alpha        float64
	LocalSearch  bool
	Maximization bool
	// Seed fixes the PRNG; nil seeds from the wall clock.
	Seed *int64
	// Log receives checkpoint-boundary tracing. A nil Log is a silent run.
	Log *logrus.Entry
}

// New builds a GRASP driver with the given parameters.
func New(problem Problem, stopping StoppingCriteria, alpha float64, localSearch, maximization bool) *GRASP {
	return &GRASP{
		Problem:      problem,
		Stopping:     stopping,
		Alpha:        alpha,
		LocalSearch:  localSearch,
		Maximization: maximization,
	}
}

// Solve runs the GRASP loop until the stopping criterion fires and returns
// the resulting Statistics. An empty-archive result is not an error — it
// means the stopping criterion fired before any feasible solution was
// accepted. A returned error always indicates an invariant violation: the
// algorithm produced an archive that does not respect its own contract.
func (g *GRASP) Solve() (*Statistics, error) {
	rng, seed := newRNG(g.Seed)

	var solutions []Solution
	refPoint := g.Problem.ReferencePoint()
	hv := NewHVIndicator(refPoint, g.Maximization)

	checkpoints := []Checkpoint{{Time: 0, Size: 0, HV: 0}}
	var iterations, skippedIterations int64

	start := time.Now()
	g.Stopping.Start()

	for !g.Stopping.ShouldStop() {
		iterations++

		g.Problem.Reset()
		current := g.Problem.EmptySolution()
		candidates := g.Problem.GenerateCandidates(current, hv)

		for len(candidates) > 0 {
			rcl := SelectCandidates(candidates, g.Alpha)
			current = g.Problem.ChooseCandidate(rcl, rng)
			candidates = g.Problem.GenerateCandidates(current, hv)
		}

		if g.Problem.IsFeasible(current) && hv.Contribution(current) > 0 {
			var others []Solution
			if g.LocalSearch {
				improved, found := g.Problem.ImproveSolution(current, solutions, rng)
				if improved != nil {
					current = improved
				}
				others = found
			}

			solutions = RemoveWeaklyDominated(solutions, current, g.Maximization)
			solutions = RemoveWeaklyDominatedBySet(solutions, others, g.Maximization)
			solutions = append(solutions, current)
			solutions = append(solutions, others...)

			hv.Insert(current)
			for _, o := range others {
				hv.Insert(o)
			}
		} else {
			skippedIterations++
			// Strict greedy (alpha=0): further iterations are deterministic
			// and would repeat the same skip, so stop now.
			if g.Alpha == 0 {
				break
			}
		}

		g.Stopping.Increment()
		if g.Stopping.ShouldRetrieve() {
			checkpoints = append(checkpoints, Checkpoint{
				Time: time.Since(start).Seconds(),
				Size: len(solutions),
				HV:   hv.Value(),
			})
			g.Stopping.ResetRetrieve()
			if g.Log != nil {
				g.Log.WithFields(logrus.Fields{
					"iteration":  iterations,
					"archiveSize": len(solutions),
					"hv":         hv.Value(),
				}).Debug("checkpoint")
			}
		}
	}

	elapsed := time.Since(start).Seconds()

	if !ValidSolutions(solutions, g.Problem.NonDominatedSet(), g.Maximization) {
		return nil, fmt.Errorf("%w: archive contains a weakly-dominated pair or dominates ground truth", ErrInvariant)
	}

	return newStatistics(statisticsInput{
		Problem:           g.Problem,
		Solutions:         solutions,
		Seed:              seed,
		Checkpoints:       checkpoints,
		ElapsedSeconds:    elapsed,
		Iterations:        iterations,
		SkippedIterations: skippedIterations,
		Maximization:      g.Maximization,
	}), nil
}
