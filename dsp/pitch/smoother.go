package pitch

import "slices"

// Smoother keeps the most recent accepted estimates in a bounded FIFO and
// reduces them to their median.
//
// For an even number of entries the median is the upper of the two centre
// values (index len/2 of the ascending sort), never their average.
type Smoother struct {
	values []float64 // oldest first
	sorted []float64
}

// NewSmoother returns an empty smoother holding at most capacity values.
// Capacities below 1 are raised to 1.
func NewSmoother(capacity int) *Smoother {
	if capacity < 1 {
		capacity = 1
	}
	return &Smoother{
		values: make([]float64, 0, capacity),
		sorted: make([]float64, 0, capacity),
	}
}

// Push appends v, evicting the oldest value when full, and returns the new
// median.
func (s *Smoother) Push(v float64) float64 {
	if len(s.values) == cap(s.values) {
		copy(s.values, s.values[1:])
		s.values = s.values[:len(s.values)-1]
	}
	s.values = append(s.values, v)
	return s.Median()
}

// Median returns the upper median of the window, or 0 when it is empty.
func (s *Smoother) Median() float64 {
	if len(s.values) == 0 {
		return 0
	}
	s.sorted = append(s.sorted[:0], s.values...)
	slices.Sort(s.sorted)
	return s.sorted[len(s.sorted)/2]
}

// Len returns the number of values held.
func (s *Smoother) Len() int { return len(s.values) }

// Cap returns the window capacity.
func (s *Smoother) Cap() int { return cap(s.values) }

// Values returns a copy of the window, oldest first.
func (s *Smoother) Values() []float64 {
	return slices.Clone(s.values)
}

// Reset empties the window.
func (s *Smoother) Reset() {
	s.values = s.values[:0]
}
