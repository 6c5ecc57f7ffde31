package hypergrasp

import "sort"

// Candidate pairs an extension identifier (an item or edge index) with the
// hypervolume contribution its bound vector would yield against the
// current archive.
type Candidate struct {
	ID    int32
	Score int64
}

// Problem is the capability set the GRASP driver is generic over. MOKP and
// MOMST both satisfy it; the driver dispatches through this interface
// rather than knowing either concrete type.
type Problem interface {
	// Reset restores working state to its initial condition.
	Reset()
	// EmptySolution returns a zero objective vector of the problem's arity.
	EmptySolution() Solution
	// ReferencePoint returns the fixed reference point for hypervolume.
	ReferencePoint() Solution
	// NonDominatedSet returns an optional ground-truth set, used only for
	// post-hoc validation and statistics.
	NonDominatedSet() []Solution
	// GenerateCandidates produces every feasible single-step extension of
	// current whose bound vector has strictly positive hypervolume
	// contribution against hv, sorted descending by contribution.
	GenerateCandidates(current Solution, hv *HVIndicator) []Candidate
	// ChooseCandidate picks one candidate from rcl, commits it to working
	// state, and returns the new partial solution. The caller supplies the
	// random source so a single process-wide PRNG can be threaded through.
	ChooseCandidate(rcl []Candidate, rng RNG) Solution
	// IsFeasible reports whether the current working state is a complete
	// feasible solution.
	IsFeasible(sol Solution) bool
	// ImproveSolution runs optional local search. Returns the (possibly
	// improved) solution and any other non-dominated solutions discovered
	// along the way. A problem with no local search returns (nil, nil).
	ImproveSolution(sol Solution, archive []Solution, rng RNG) (Solution, []Solution)
}

// SelectCandidates returns the restricted candidate list (RCL): the
// leading prefix of candidates (which must already be sorted descending by
// score) within alpha of the best score. With alpha=0 only candidates tied
// with the top score survive (strict greedy).
func SelectCandidates(candidates []Candidate, alpha float64) []Candidate {
	if len(candidates) == 0 {
		return nil
	}
	top := candidates[0].Score
	bot := candidates[len(candidates)-1].Score
	diff := int64(float64(top-bot) * alpha)
	threshold := top - diff

	for i, c := range candidates {
		if c.Score < threshold {
			return candidates[:i]
		}
	}
	return candidates
}

// sortCandidatesDescending sorts candidates by score, descending, stably.
func sortCandidatesDescending(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
}
