package hypergrasp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectCandidatesAlphaZeroIsStrictGreedy(t *testing.T) {
	candidates := []Candidate{{ID: 1, Score: 10}, {ID: 2, Score: 10}, {ID: 3, Score: 5}}
	rcl := SelectCandidates(candidates, 0)
	assert.Len(t, rcl, 2)
	for _, c := range rcl {
		assert.Equal(t, int64(10), c.Score)
	}
}

func TestSelectCandidatesAlphaOneKeepsAll(t *testing.T) {
	candidates := []Candidate{{ID: 1, Score: 10}, {ID: 2, Score: 5}, {ID: 3, Score: 0}}
	rcl := SelectCandidates(candidates, 1)
	assert.Len(t, rcl, 3)
}

func TestSelectCandidatesPartialAlpha(t *testing.T) {
	candidates := []Candidate{{ID: 1, Score: 100}, {ID: 2, Score: 60}, {ID: 3, Score: 40}, {ID: 4, Score: 0}}
	rcl := SelectCandidates(candidates, 0.5)
	// threshold = 100 - (100-0)*0.5 = 50; 100 and 60 survive, 40 and 0 don't.
	assert.Len(t, rcl, 2)
}

func TestSelectCandidatesEmpty(t *testing.T) {
	assert.Nil(t, SelectCandidates(nil, 0.5))
}
