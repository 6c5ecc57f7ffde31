package hypergrasp

import (
	"fmt"
	"time"
)

// StoppingCriteria polls whether the GRASP driver should stop, and whether
// a statistics checkpoint should be retrieved, between iterations. The
// driver never consults it mid-iteration (§5: no timeouts mid-iteration).
type StoppingCriteria interface {
	Start()
	ShouldStop() bool
	Increment()
	Current() float64
	ShouldRetrieve() bool
	ResetRetrieve()
}

// NewStoppingCriteria builds a StoppingCriteria from its CLI-level name
// ("time" or "iterations") and limit, matching spec.md §6.
func NewStoppingCriteria(criteria string, limit float64) (StoppingCriteria, error) {
	switch criteria {
	case "time":
		return NewTimeStoppingCriteria(limit, 5), nil
	case "iterations":
		return NewIterationStoppingCriteria(int(limit), 50), nil
	default:
		return nil, fmt.Errorf("%w: unknown stopping criteria %q", ErrUserInput, criteria)
	}
}

// TimeStoppingCriteria stops after a wall-clock limit in seconds and
// retrieves a checkpoint every retrieveInterval seconds by default (5s).
type TimeStoppingCriteria struct {
	limit             float64
	retrieveInterval  float64
	start             time.Time
	lastRetrieve      time.Time
}

// NewTimeStoppingCriteria builds a time-based stopping criterion.
func NewTimeStoppingCriteria(limitSeconds, retrieveIntervalSeconds float64) *TimeStoppingCriteria {
	return &TimeStoppingCriteria{limit: limitSeconds, retrieveInterval: retrieveIntervalSeconds}
}

func (t *TimeStoppingCriteria) Start() {
	t.start = time.Now()
	t.lastRetrieve = t.start
}

func (t *TimeStoppingCriteria) ShouldStop() bool {
	return time.Since(t.start).Seconds() >= t.limit
}

func (t *TimeStoppingCriteria) Increment() {
	// Time advances on its own; nothing to do.
}

func (t *TimeStoppingCriteria) Current() float64 {
	return time.Since(t.start).Seconds()
}

func (t *TimeStoppingCriteria) ShouldRetrieve() bool {
	return time.Since(t.lastRetrieve).Seconds() >= t.retrieveInterval
}

func (t *TimeStoppingCriteria) ResetRetrieve() {
	t.lastRetrieve = time.Now()
}

// IterationStoppingCriteria stops after an iteration cap and retrieves a
// checkpoint every retrieveInterval iterations by default (50).
type IterationStoppingCriteria struct {
	limit            int
	retrieveInterval int
	current          int
	lastRetrieve     int
}

// NewIterationStoppingCriteria builds an iteration-based stopping criterion.
func NewIterationStoppingCriteria(limit, retrieveInterval int) *IterationStoppingCriteria {
	return &IterationStoppingCriteria{limit: limit, retrieveInterval: retrieveInterval}
}

func (it *IterationStoppingCriteria) Start() {
	it.current = 0
	it.lastRetrieve = 0
}

func (it *IterationStoppingCriteria) ShouldStop() bool {
	return it.current >= it.limit
}

func (it *IterationStoppingCriteria) Increment() {
	it.current++
}

func (it *IterationStoppingCriteria) Current() float64 {
	return float64(it.current)
}

func (it *IterationStoppingCriteria) ShouldRetrieve() bool {
	return it.current-it.lastRetrieve >= it.retrieveInterval
}

func (it *IterationStoppingCriteria) ResetRetrieve() {
	it.lastRetrieve = it.current
}
