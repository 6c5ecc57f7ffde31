package hypergrasp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStoppingCriteriaUnknown(t *testing.T) {
	_, err := NewStoppingCriteria("bogus", 10)
	assert.True(t, errors.Is(err, ErrUserInput))
}

func TestIterationStoppingCriteria(t *testing.T) {
	sc := NewIterationStoppingCriteria(5, 2)
	sc.Start()

	assert.False(t, sc.ShouldStop())
	for i := 0; i < 5; i++ {
		sc.Increment()
	}
	assert.True(t, sc.ShouldStop())
}

func TestIterationStoppingCriteriaRetrieve(t *testing.T) {
	sc := NewIterationStoppingCriteria(10, 3)
	sc.Start()

	assert.False(t, sc.ShouldRetrieve())
	sc.Increment()
	sc.Increment()
	sc.Increment()
	assert.True(t, sc.ShouldRetrieve())
	sc.ResetRetrieve()
	assert.False(t, sc.ShouldRetrieve())
}

func TestNewStoppingCriteriaDispatch(t *testing.T) {
	timeSC, err := NewStoppingCriteria("time", 60)
	assert.NoError(t, err)
	_, ok := timeSC.(*TimeStoppingCriteria)
	assert.True(t, ok)

	iterSC, err := NewStoppingCriteria("iterations", 100)
	assert.NoError(t, err)
	_, ok = iterSC.(*IterationStoppingCriteria)
	assert.True(t, ok)
}
