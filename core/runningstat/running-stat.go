// Package runningstat implements Knuth and Welford's method for computing the standard deviation.
package runningstat

import (
	"math"

	pmath "github.com/pkg/math"
)

// IntStat collects statistics of unsigned integers and allows computing min, max, mean, and variance.
// Algorithm comes from https://www.johndcook.com/blog/standard_deviation/ .
//
// The zero IntStat is empty and ready to use.
type IntStat struct {
	n        uint64
	m1, m2   float64
	min, max uint64
}

// Push adds an input.
func (s *IntStat) Push(x uint64) {
	s.n++
	if s.n == 1 {
		s.m1, s.m2 = float64(x), 0
		s.min, s.max = x, x
		return
	}

	s.min, s.max = pmath.MinUint64(s.min, x), pmath.MaxUint64(s.max, x)
	delta := float64(x) - s.m1
	s.m1 += delta / float64(s.n)
	s.m2 += delta * (float64(x) - s.m1)
}

// Read returns current counters as Snapshot.
func (s IntStat) Read() Snapshot {
	return newSnapshot(s.n, s.m1, s.m2, s.min, s.max)
}

// Snapshot contains a snapshot of IntStat reading.
type Snapshot struct {
	Count    uint64  `json:"count"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	Stdev    float64 `json:"stdev"`
	M1       float64 `json:"m1"`
	M2       float64 `json:"m2"`
	Min      *uint64 `json:"min,omitempty"`
	Max      *uint64 `json:"max,omitempty"`
}

// Add combines stats with another instance.
func (s Snapshot) Add(o Snapshot) Snapshot {
	if s.Count == 0 {
		return o
	} else if o.Count == 0 {
		return s
	}
	n := s.Count + o.Count
	aN, bN, cN := float64(s.Count), float64(o.Count), float64(n)
	delta := o.M1 - s.M1
	m1 := (aN*s.M1 + bN*o.M1) / cN
	m2 := s.M2 + o.M2 + delta*delta*aN*bN/cN
	return newSnapshot(n, m1, m2, pmath.MinUint64(*s.Min, *o.Min), pmath.MaxUint64(*s.Max, *o.Max))
}

func newSnapshot(n uint64, m1, m2 float64, min, max uint64) (s Snapshot) {
	s.Count, s.M1, s.M2 = n, m1, m2
	if n > 0 {
		s.Mean = m1
		s.Min, s.Max = &min, &max
	}
	if n > 1 {
		s.Variance = m2 / float64(n-1)
		s.Stdev = math.Sqrt(s.Variance)
	}
	return
}
