package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPick(t *testing.T) {
	columns := []string{"Plant ID", "Plant Name (English)", "Owner", "Country/Area", "Coordinates"}

	tests := []struct {
		name       string
		candidates []string
		want       string
	}{
		{"exact substring", []string{"coordinates"}, "Coordinates"},
		{"case insensitive", []string{"OWNER"}, "Owner"},
		{"first match wins in sheet order", []string{"plant"}, "Plant ID"},
		{"second candidate used", []string{"missing", "owner"}, "Owner"},
		{"no match", []string{"capacity"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pick(columns, tt.candidates...))
		})
	}
}

func TestCapacityColumns(t *testing.T) {
	columns := []string{
		"Plant Name",
		"Nominal BOF steel capacity (ttpa)",
		"Nominal EAF steel capacity (ttpa)",
		"Capacity (TTPA)",
		"Capacity (ttpa) notes", // suffix does not match, must be excluded
		"Owner",
	}
	assert.Equal(t, []string{
		"Nominal BOF steel capacity (ttpa)",
		"Nominal EAF steel capacity (ttpa)",
		"Capacity (TTPA)",
	}, CapacityColumns(columns))

	assert.Nil(t, CapacityColumns([]string{"Owner", "Coordinates"}))
}

func TestResolve(t *testing.T) {
	t.Run("full schema", func(t *testing.T) {
		res := Resolve([]string{
			"Plant Name (English)",
			"Owner",
			"Country/Area",
			"Coordinates",
			"Nominal crude steel capacity (ttpa)",
		})
		assert.Equal(t, "Coordinates", res.Coordinates)
		assert.Equal(t, "Owner", res.Owner)
		assert.Equal(t, "Country/Area", res.Region)
		assert.Equal(t, "Plant Name (English)", res.Name)
		assert.Equal(t, []string{"Nominal crude steel capacity (ttpa)"}, res.CapacityColumns)
	})

	t.Run("region falls back to country", func(t *testing.T) {
		res := Resolve([]string{"Coordinates", "Country", "Owner"})
		assert.Equal(t, "Country", res.Region)
	})

	t.Run("region falls back to region", func(t *testing.T) {
		res := Resolve([]string{"Coordinates", "Subnational Region", "Owner"})
		assert.Equal(t, "Subnational Region", res.Region)
	})

	t.Run("partial resolution is legal", func(t *testing.T) {
		res := Resolve([]string{"Coordinates", "Status"})
		assert.Equal(t, "Coordinates", res.Coordinates)
		assert.Empty(t, res.Owner)
		assert.Empty(t, res.Region)
		assert.Empty(t, res.CapacityColumns)
	})
}
