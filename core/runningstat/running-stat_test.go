package runningstat_test

import (
	"testing"

	"github.com/usnistgov/ndnwire/core/runningstat"
	"github.com/usnistgov/ndnwire/core/testenv"
)

func TestIntStat(t *testing.T) {
	assert, require := testenv.MakeAR(t)

	var a, b runningstat.IntStat
	s := a.Read()
	assert.EqualValues(0, s.Count)
	assert.Nil(s.Min)
	assert.Nil(s.Max)

	// https://en.wikipedia.org/w/index.php?title=Standard_deviation&oldid=821088286
	// "Sample standard deviation of metabolic rate of Northern Fulmars" section "female", rounded
	input := []uint64{1091, 1490, 1956, 728, 1361, 1086}
	for _, x := range input[:3] {
		a.Push(x)
	}
	for _, x := range input[3:] {
		b.Push(x)
	}

	sa := a.Read()
	assert.EqualValues(3, sa.Count)
	require.NotNil(sa.Min)
	assert.EqualValues(1091, *sa.Min)
	assert.EqualValues(1956, *sa.Max)

	s = sa.Add(b.Read())
	assert.EqualValues(6, s.Count)
	require.NotNil(s.Min)
	require.NotNil(s.Max)
	assert.EqualValues(728, *s.Min)
	assert.EqualValues(1956, *s.Max)
	assert.InDelta(1285.33, s.Mean, 0.1)
	assert.InDelta(420.96, s.Stdev, 0.5)

	var c runningstat.IntStat
	for _, x := range input {
		c.Push(x)
	}
	sc := c.Read()
	assert.InDelta(s.Mean, sc.Mean, 0.001)
	assert.InDelta(s.Variance, sc.Variance, 0.01)

	assert.Equal(s, s.Add(runningstat.Snapshot{}))
	assert.Equal(s, runningstat.Snapshot{}.Add(s))
}
