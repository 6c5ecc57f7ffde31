package hypergrasp

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func threeItemInstance() []Item {
	return []Item{
		{ID: 0, Weight: 2, Values: []int64{10, 1}},
		{ID: 1, Weight: 3, Values: []int64{1, 10}},
		{ID: 2, Weight: 5, Values: []int64{6, 6}},
	}
}

func TestMOKPSingletonFeasibility(t *testing.T) {
	items := []Item{{ID: 0, Weight: 5, Values: []int64{7, 3}}}
	p := NewMOKP(items, 2, 5, nil, true)

	hv := NewHVIndicator(p.ReferencePoint(), true)
	current := p.EmptySolution()
	candidates := p.GenerateCandidates(current, hv)
	assert.Len(t, candidates, 1)

	rng := rand.New(rand.NewSource(1))
	sol := p.ChooseCandidate(candidates, rng)
	assert.Equal(t, Solution{7, 3}, sol)
	assert.True(t, p.IsFeasible(sol))
}

func TestMOKPCapacityExcludesTooHeavyItems(t *testing.T) {
	items := threeItemInstance()
	p := NewMOKP(items, 2, 2, nil, true) // only item 0 fits

	hv := NewHVIndicator(p.ReferencePoint(), true)
	candidates := p.GenerateCandidates(p.EmptySolution(), hv)
	assert.Len(t, candidates, 1)
	assert.Equal(t, int32(0), candidates[0].ID)
}

func TestMOKPZeroValueItemNeverContributes(t *testing.T) {
	// An item worth nothing in every objective can never push the bound
	// beyond whatever is already archived, so it should never survive
	// candidate generation once at least one other item is taken.
	items := []Item{
		{ID: 0, Weight: 1, Values: []int64{10, 10}},
		{ID: 1, Weight: 1, Values: []int64{0, 0}},
	}
	p := NewMOKP(items, 2, 10, nil, true)

	hv := NewHVIndicator(p.ReferencePoint(), true)
	current := p.EmptySolution()
	candidates := p.GenerateCandidates(current, hv)

	rng := rand.New(rand.NewSource(7))
	rcl := SelectCandidates(candidates, 0)
	sol := p.ChooseCandidate(rcl, rng)
	hv.Insert(sol)

	remaining := p.GenerateCandidates(sol, hv)
	for _, c := range remaining {
		assert.NotEqual(t, int32(1), c.ID)
	}
}

func TestMOKPResetRestoresInitialState(t *testing.T) {
	items := threeItemInstance()
	p := NewMOKP(items, 2, 10, nil, true)

	hv := NewHVIndicator(p.ReferencePoint(), true)
	candidates := p.GenerateCandidates(p.EmptySolution(), hv)
	rng := rand.New(rand.NewSource(3))
	p.ChooseCandidate(candidates, rng)

	p.Reset()
	assert.Equal(t, p.EmptySolution(), p.solution)
	assert.True(t, p.IsFeasible(p.solution))
	for _, used := range p.used {
		assert.False(t, used)
	}
}

func TestParseMOKPInstance(t *testing.T) {
	input := "2 2\n10\n2 10 1\n3 1 10\n"
	instance, err := ParseMOKPInstance(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Equal(t, int32(2), instance.N)
	assert.Equal(t, int32(2), instance.M)
	assert.Equal(t, int64(10), instance.Capacity)
	assert.Equal(t, int64(2), instance.Items[0].Weight)
	assert.Equal(t, []int64{10, 1}, instance.Items[0].Values)
	assert.Empty(t, instance.NonDominatedSet)
}

func TestParseMOKPInstanceWithNonDominatedSet(t *testing.T) {
	input := "1 2\n5\n5 7 3\n1\n7 3\n"
	instance, err := ParseMOKPInstance(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Len(t, instance.NonDominatedSet, 1)
	assert.Equal(t, Solution{7, 3}, instance.NonDominatedSet[0])
}

func TestParseMOKPInstanceMalformed(t *testing.T) {
	_, err := ParseMOKPInstance(strings.NewReader("not-a-number 2 10"))
	assert.ErrorIs(t, err, ErrUserInput)
}
