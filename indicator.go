package hypergrasp

import "sort"

// HVIndicator is an incremental hypervolume indicator over a non-dominated
// set of objective vectors, relative to a fixed reference point. It wraps a
// dimension-sweep (WFG/HSO-style) slicing engine — any correct hypervolume
// algorithm satisfies the contract, this one trades asymptotic optimality
// for a small, allocation-light implementation that suits the archive sizes
// this solver produces.
//
// Internally the indicator always works in maximization space: in
// minimization mode both the reference point and every inserted/queried
// point are negated at the boundary, per spec semantics.
type HVIndicator struct {
	refPoint     Solution
	maximization bool
	tracked      []Solution
	value        int64
}

// NewHVIndicator creates an indicator anchored at refPoint.
func NewHVIndicator(refPoint Solution, maximization bool) *HVIndicator {
	rp := refPoint
	if !maximization {
		rp = negated(refPoint)
	}
	return &HVIndicator{refPoint: rp, maximization: maximization}
}

// toInternal converts sol into the indicator's internal maximization space.
func (hv *HVIndicator) toInternal(sol Solution) Solution {
	if hv.maximization {
		return sol
	}
	return negated(sol)
}

// Insert adds sol to the tracked set and returns the hypervolume gain.
// Idempotent: a sol already weakly dominated by the tracked set yields 0
// and does not mutate the indicator.
func (hv *HVIndicator) Insert(sol Solution) int64 {
	p := hv.toInternal(sol)
	if !strictlyBeatsRef(p, hv.refPoint) {
		return 0
	}
	if !IsNonDominated(p, hv.tracked, true) {
		return 0
	}
	before := hv.value
	hv.tracked = RemoveWeaklyDominated(hv.tracked, p, true)
	hv.tracked = append(hv.tracked, p)
	hv.value = hypervolume(hv.tracked, hv.refPoint)
	return hv.value - before
}

// Contribution returns the hypervolume gain Insert(sol) would yield, without
// mutating the indicator. Pure.
func (hv *HVIndicator) Contribution(sol Solution) int64 {
	p := hv.toInternal(sol)
	if !strictlyBeatsRef(p, hv.refPoint) {
		return 0
	}
	if !IsNonDominated(p, hv.tracked, true) {
		return 0
	}
	candidate := RemoveWeaklyDominated(append([]Solution(nil), hv.tracked...), p, true)
	candidate = append(candidate, p)
	return hypervolume(candidate, hv.refPoint) - hv.value
}

// Value returns the current hypervolume of the tracked set.
func (hv *HVIndicator) Value() int64 {
	return hv.value
}

// SetHVC inserts every solution in sols and returns the total hypervolume
// contributed (mirrors the original's batch `set_hvc` helper, used to seed
// a fresh indicator from a pre-existing solution set).
func (hv *HVIndicator) SetHVC(sols []Solution) int64 {
	var total int64
	for _, s := range sols {
		total += hv.Insert(s)
	}
	return total
}

// strictlyBeatsRef reports whether p is strictly better than ref in every
// objective (maximization space). The reference point semantics: anything
// not strictly better than the reference in every objective contributes
// zero hypervolume.
func strictlyBeatsRef(p, ref Solution) bool {
	for i := range p {
		if p[i] <= ref[i] {
			return false
		}
	}
	return true
}

// hypervolume computes the hypervolume of a mutually non-dominated set of
// maximization points relative to ref, via recursive dimension slicing.
// points is not mutated.
func hypervolume(points []Solution, ref Solution) int64 {
	if len(points) == 0 {
		return 0
	}
	d := len(ref)
	if d == 1 {
		best := ref[0]
		for _, p := range points {
			if p[0] > best {
				best = p[0]
			}
		}
		if best <= ref[0] {
			return 0
		}
		return best - ref[0]
	}

	ordered := append([]Solution(nil), points...)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i][d-1] > ordered[j][d-1]
	})

	var volume int64
	front := make([]Solution, 0, len(ordered))
	for i, p := range ordered {
		proj := Solution(p[:d-1])
		if IsNonDominated(proj, front, true) {
			front = RemoveWeaklyDominated(front, proj, true)
			front = append(front, proj)
		}
		var height int64
		if i+1 < len(ordered) {
			height = p[d-1] - ordered[i+1][d-1]
		} else {
			height = p[d-1] - ref[d-1]
		}
		if height > 0 {
			volume += height * hypervolume(front, ref[:d-1])
		}
	}
	return volume
}
