package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	table, res := testTable()
	s := Summarize(table, res)

	assert.Equal(t, 5, s.Plants)
	assert.True(t, s.HasCapacityData)
	assert.Equal(t, 3050.0, s.TotalCapacity)
	// Mean is over the four rows with present capacity, not all five.
	assert.Equal(t, 762.5, s.MeanCapacity)
}

func TestSummarizeCapacityByOwnerSorted(t *testing.T) {
	table, res := testTable()
	s := Summarize(table, res)

	// B: 2000 + 50, A: 100 + 900. C only has an absent capacity and
	// contributes no bar.
	require.Len(t, s.CapacityByOwner, 2)
	assert.Equal(t, OwnerCapacity{Owner: "B", TotalCapacity: 2050}, s.CapacityByOwner[0])
	assert.Equal(t, OwnerCapacity{Owner: "A", TotalCapacity: 1000}, s.CapacityByOwner[1])
}

func TestSummarizeNoCapacityData(t *testing.T) {
	table, res := testTable()
	for i := range table.Records {
		table.Records[i].TotalCapacity = nil
	}
	s := Summarize(table, res)

	assert.Equal(t, 5, s.Plants)
	assert.False(t, s.HasCapacityData)
	// KPIs display as zero when there is no data, and the grouping is
	// omitted entirely.
	assert.Zero(t, s.TotalCapacity)
	assert.Zero(t, s.MeanCapacity)
	assert.Nil(t, s.CapacityByOwner)
}

func TestSummarizeOwnerUnresolved(t *testing.T) {
	table, _ := testTable()
	s := Summarize(table, Resolution{Coordinates: "Coordinates"})
	assert.True(t, s.HasCapacityData)
	assert.Nil(t, s.CapacityByOwner)
}

func TestSummarizeEmptyTable(t *testing.T) {
	s := Summarize(Table{}, Resolution{})
	assert.Zero(t, s.Plants)
	assert.False(t, s.HasCapacityData)
}

func TestOptionsFor(t *testing.T) {
	table, res := testTable()
	opts := OptionsFor(table, res)

	assert.Equal(t, []string{"A", "B", "C"}, opts.Owners)
	assert.Equal(t, []string{"Arcadia", "Elysium", "Utopia"}, opts.Regions)
	require.NotNil(t, opts.MinCapacity)
	require.NotNil(t, opts.MaxCapacity)
	assert.Equal(t, 50.0, *opts.MinCapacity)
	assert.Equal(t, 2000.0, *opts.MaxCapacity)
}

func TestOptionsForUnresolvedRoles(t *testing.T) {
	table, _ := testTable()
	for i := range table.Records {
		table.Records[i].TotalCapacity = nil
	}
	opts := OptionsFor(table, Resolution{Coordinates: "Coordinates"})
	assert.Nil(t, opts.Owners)
	assert.Nil(t, opts.Regions)
	assert.Nil(t, opts.MinCapacity)
	assert.Nil(t, opts.MaxCapacity)
}
