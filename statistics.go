package hypergrasp

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"
)

// Checkpoint is one (time, archive size, hypervolume) sample taken at a
// stopping-criterion retrieval boundary.
type Checkpoint struct {
	Time float64
	Size int
	HV   int64
}

// Statistics is the end-of-run report: the archive, its hypervolume
// relative to both the problem's reference point and the non-dominated
// set's own nadir, checkpoint trace, and run bookkeeping. Layout follows
// the original reference implementation's statistics.hpp exactly (see
// SPEC_FULL.md §4.1).
type Statistics struct {
	RunID             string
	Seed              int64
	Checkpoints       []Checkpoint
	Iterations        int64
	SkippedIterations int64
	ElapsedSeconds    float64
	Maximization      bool

	Solutions       []Solution
	NonDominatedSet []Solution

	SolutionsHV     int64
	NonDominatedHV  int64
	RatioHV         float64
	NadirNonDomHV   int64
	NadirSolutionHV int64
	RatioNadirHV    float64
	MatchCount      int

	CheckpointHVMean   float64
	CheckpointHVStdDev float64
}

type statisticsInput struct {
	Problem           Problem
	Solutions         []Solution
	Seed              int64
	Checkpoints       []Checkpoint
	ElapsedSeconds    float64
	Iterations        int64
	SkippedIterations int64
	Maximization      bool
}

func newStatistics(in statisticsInput) *Statistics {
	refPoint := in.Problem.ReferencePoint()
	nonDominated := in.Problem.NonDominatedSet()

	s := &Statistics{
		RunID:             uuid.NewString(),
		Seed:              in.Seed,
		Checkpoints:       in.Checkpoints,
		Iterations:        in.Iterations,
		SkippedIterations: in.SkippedIterations,
		ElapsedSeconds:    in.ElapsedSeconds,
		Maximization:      in.Maximization,
		Solutions:         in.Solutions,
		NonDominatedSet:   nonDominated,
	}

	s.SolutionsHV = calculateHV(refPoint, in.Solutions, in.Maximization)

	if len(nonDominated) > 0 {
		s.NonDominatedHV = calculateHV(refPoint, nonDominated, in.Maximization)
		if s.NonDominatedHV != 0 {
			s.RatioHV = float64(s.SolutionsHV) / float64(s.NonDominatedHV)
		}

		arity := len(refPoint)
		nadir := NadirOf(nonDominated, arity, in.Maximization)
		s.NadirNonDomHV = calculateHV(nadir, nonDominated, in.Maximization)
		s.NadirSolutionHV = calculateHV(nadir, in.Solutions, in.Maximization)
		if s.NadirNonDomHV != 0 {
			s.RatioNadirHV = float64(s.NadirSolutionHV) / float64(s.NadirNonDomHV)
		}
		s.MatchCount = matchCount(nonDominated, in.Solutions)
	}

	if len(in.Checkpoints) > 0 {
		hvSamples := make([]float64, len(in.Checkpoints))
		for i, c := range in.Checkpoints {
			hvSamples[i] = float64(c.HV)
		}
		s.CheckpointHVMean, s.CheckpointHVStdDev = stat.MeanStdDev(hvSamples, nil)
	}

	return s
}

func calculateHV(refPoint Solution, solutions []Solution, maximization bool) int64 {
	hv := NewHVIndicator(refPoint, maximization)
	return hv.SetHVC(solutions)
}

func matchCount(nonDominated, solutions []Solution) int {
	n := 0
	for _, sol := range solutions {
		for _, nd := range nonDominated {
			if solutionsEqual(sol, nd) {
				n++
				break
			}
		}
	}
	return n
}

func solutionsEqual(a, b Solution) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String renders the plain-text statistics report: seed; checkpoint trace;
// iteration counts; the archive; hypervolume ratios; sizes and match
// count; elapsed seconds.
func (s *Statistics) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d\n", s.Seed)

	parts := make([]string, len(s.Checkpoints))
	for i, c := range s.Checkpoints {
		parts[i] = fmt.Sprintf("(%g,%d,%d)", c.Time, c.Size, c.HV)
	}
	fmt.Fprintf(&b, "%s\n", strings.Join(parts, " "))

	fmt.Fprintf(&b, "%d %d\n", s.Iterations, s.SkippedIterations)

	solParts := make([]string, len(s.Solutions))
	for i, sol := range s.Solutions {
		solParts[i] = formatSolution(sol)
	}
	fmt.Fprintf(&b, "%s\n", strings.Join(solParts, " "))

	fmt.Fprintf(&b, "%d %d %g %d %d %g\n",
		s.NonDominatedHV, s.SolutionsHV, s.RatioHV,
		s.NadirNonDomHV, s.NadirSolutionHV, s.RatioNadirHV)

	fmt.Fprintf(&b, "%d %d %d %g",
		len(s.NonDominatedSet), len(s.Solutions), s.MatchCount, s.ElapsedSeconds)

	return b.String()
}

func formatSolution(sol Solution) string {
	parts := make([]string, len(sol))
	for i, v := range sol {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// WriteDebugFile writes the non-dominated set, the GRASP archive, and the
// hypervolume growth trace to path (the original's "debug.out" dump).
func (s *Statistics) WriteDebugFile(path string) error {
	var b strings.Builder

	b.WriteString("Run " + s.RunID + "\n")
	b.WriteString("Non-dominated set\n")
	for _, sol := range s.NonDominatedSet {
		b.WriteString(spaceJoin(sol) + "\n")
	}
	b.WriteString("GRASP set\n")
	for _, sol := range s.Solutions {
		b.WriteString(spaceJoin(sol) + "\n")
	}
	b.WriteString("Hypervolume growth\n")
	fmt.Fprintf(&b, "%d\n", s.NonDominatedHV)
	for _, c := range s.Checkpoints {
		fmt.Fprintf(&b, "%d\n", c.HV)
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func spaceJoin(sol Solution) string {
	parts := make([]string, len(sol))
	for i, v := range sol {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, " ")
}
