package hypergrasp

import (
	"fmt"
	"sort"
)

// unionFind is a disjoint-set structure with path compression and union by
// rank, used to track which components Kruskal-style edge selection has
// already merged.
type unionFind struct {
	parent []int32
	rank   []int32
}

func newUnionFind(size int32) *unionFind {
	uf := &unionFind{
		parent: make([]int32, size),
		rank:   make([]int32, size),
	}
	for i := range uf.parent {
		uf.parent[i] = int32(i)
	}
	return uf
}

func (uf *unionFind) find(u int32) int32 {
	if uf.parent[u] != u {
		uf.parent[u] = uf.find(uf.parent[u])
	}
	return uf.parent[u]
}

// CanUnite reports whether u and v belong to different components.
func (uf *unionFind) CanUnite(u, v int32) bool {
	return uf.find(u) != uf.find(v)
}

// Unite merges the components of u and v, returning false if they were
// already the same component (the caller treating that as fatal: a
// candidate edge was chosen that cannot legally extend the tree).
func (uf *unionFind) Unite(u, v int32) bool {
	ru, rv := uf.find(u), uf.find(v)
	if ru == rv {
		return false
	}
	if uf.rank[ru] < uf.rank[rv] {
		ru, rv = rv, ru
	}
	if uf.rank[ru] == uf.rank[rv] {
		uf.rank[ru]++
	}
	uf.parent[rv] = ru
	return true
}

// clone returns an independent copy, used by the Kruskal completion bound
// to explore a hypothetical union state without disturbing the real one.
func (uf *unionFind) clone() *unionFind {
	out := &unionFind{
		parent: append([]int32(nil), uf.parent...),
		rank:   append([]int32(nil), uf.rank...),
	}
	return out
}

// Edge is one candidate tree edge between two vertices, with a value per
// objective.
type Edge struct {
	ID     int32
	Src    int32
	Dst    int32
	Values []int64
}

// MOMST is the multiobjective minimum spanning tree problem over the
// complete graph on V vertices: choose V-1 edges forming a tree that
// minimizes M independent edge-weight objectives.
type MOMST struct {
	vertices     int32
	objectives   int32
	maximization bool
	edges        []Edge
	sortedEdges  [][]Edge // per objective, edges sorted ascending, tie-broken by rotating objective order

	nonDominated []Solution
	supported    []Solution
	refPoint     Solution

	solution Solution
	used     []bool
	nEdges   int32
	uf       *unionFind
}

// NewMOMST builds an MOMST instance from parsed edges. Only M=2 is
// supported: the reference point is computed from the per-objective
// minimum spanning trees, a construction the original implementation
// leaves unimplemented for M>2 (an assertion failure there becomes a
// returned error here).
func NewMOMST(vertices int32, edges []Edge, nonDominated, supported []Solution, maximization bool) (*MOMST, error) {
	if len(edges) == 0 {
		return nil, fmt.Errorf("%w: momst instance has no edges", ErrUserInput)
	}
	objectives := int32(len(edges[0].Values))
	if objectives != 2 {
		return nil, fmt.Errorf("%w: momst only supports two objectives, got %d", ErrUserInput, objectives)
	}

	p := &MOMST{
		vertices:     vertices,
		objectives:   objectives,
		maximization: maximization,
		edges:        edges,
		nonDominated: nonDominated,
		supported:    supported,
	}

	p.sortedEdges = make([][]Edge, objectives)
	for i := int32(0); i < objectives; i++ {
		sorted := append([]Edge(nil), edges...)
		sort.Slice(sorted, func(a, b int) bool {
			for j := int32(0); j < objectives; j++ {
				idx := (i + j) % objectives
				if sorted[a].Values[idx] != sorted[b].Values[idx] {
					return sorted[a].Values[idx] < sorted[b].Values[idx]
				}
			}
			return false
		})
		p.sortedEdges[i] = sorted
	}

	p.refPoint = p.computeReferencePoint()
	p.Reset()
	return p, nil
}

func (p *MOMST) computeReferencePoint() Solution {
	nadir := make(Solution, p.objectives)
	for i := int32(0); i < p.objectives; i++ {
		mst := p.computeBoundKruskalForObjective(i)
		other := int32(1) - i
		nadir[other] += mst[other]
	}
	return nadir
}

// computeBoundKruskalForObjective runs Kruskal's algorithm sorted by
// objective, returning the resulting tree's full objective vector — used
// once per objective at construction to build the reference point.
func (p *MOMST) computeBoundKruskalForObjective(objective int32) Solution {
	uf := newUnionFind(p.vertices)
	sol := make(Solution, p.objectives)
	remaining := p.vertices - 1
	for _, edge := range p.sortedEdges[objective] {
		if !uf.CanUnite(edge.Src, edge.Dst) {
			continue
		}
		for j := range sol {
			sol[j] += edge.Values[j]
		}
		uf.Unite(edge.Src, edge.Dst)
		remaining--
		if remaining == 0 {
			break
		}
	}
	return sol
}

// computeBoundKruskal completes the current partial tree greedily (by
// objective order) to estimate, per objective, the minimum additional cost
// needed to reach a full spanning tree — the Kruskal lower bound used to
// score candidate edges.
func (p *MOMST) computeBoundKruskal(uf *unionFind, usedEdge int32, afterEdges int32) Solution {
	bound := make(Solution, p.objectives)
	for i := int32(0); i < p.objectives; i++ {
		ufAux := uf.clone()
		remaining := p.vertices - 1 - afterEdges
		for _, edge := range p.sortedEdges[i] {
			if remaining <= 0 {
				break
			}
			if p.used[edge.ID] || edge.ID == usedEdge {
				continue
			}
			if !ufAux.CanUnite(edge.Src, edge.Dst) {
				continue
			}
			bound[i] += edge.Values[i]
			remaining--
			ufAux.Unite(edge.Src, edge.Dst)
		}
	}
	return bound
}

func (p *MOMST) Reset() {
	p.solution = make(Solution, p.objectives)
	p.used = make([]bool, len(p.edges))
	p.nEdges = 0
	p.uf = newUnionFind(p.vertices)
}

func (p *MOMST) EmptySolution() Solution {
	return make(Solution, p.objectives)
}

func (p *MOMST) ReferencePoint() Solution {
	return p.refPoint
}

func (p *MOMST) NonDominatedSet() []Solution {
	return p.nonDominated
}

func (p *MOMST) GenerateCandidates(current Solution, hv *HVIndicator) []Candidate {
	var candidates []Candidate
	for i, edge := range p.edges {
		if p.used[i] {
			continue
		}
		if !p.uf.CanUnite(edge.Src, edge.Dst) {
			continue
		}
		bound := p.computeBoundKruskal(p.uf, edge.ID, p.nEdges+1)
		candidate := make(Solution, p.objectives)
		for j := range candidate {
			candidate[j] = p.solution[j] + edge.Values[j] + bound[j]
		}
		score := hv.Contribution(candidate)
		if score > 0 {
			candidates = append(candidates, Candidate{ID: edge.ID, Score: score})
		}
	}
	sortCandidatesDescending(candidates)
	return candidates
}

func (p *MOMST) ChooseCandidate(rcl []Candidate, rng RNG) Solution {
	choice := rcl[rng.Intn(len(rcl))]
	edge := p.edges[choice.ID]
	for j := range p.solution {
		p.solution[j] += edge.Values[j]
	}
	p.used[choice.ID] = true
	if !p.uf.Unite(edge.Src, edge.Dst) {
		panic("hypergrasp: momst candidate edge cannot extend the current tree")
	}
	p.nEdges++
	return p.solution.Clone()
}

func (p *MOMST) IsFeasible(sol Solution) bool {
	return p.nEdges == p.vertices-1
}

// ImproveSolution is a documented no-op: the reference algorithm never
// defines a local search move for spanning trees (any single edge swap
// risks disconnecting the tree), so Hyper-GRASP runs construction-only for
// MOMST.
func (p *MOMST) ImproveSolution(sol Solution, archive []Solution, rng RNG) (Solution, []Solution) {
	return nil, nil
}
