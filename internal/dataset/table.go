package dataset

import (
	"sort"
	"time"
)

// Record is a single plant row: the original sheet cells keyed by
// column name, plus the fields derived during loading. Latitude and
// Longitude are always present and finite on records that survive the
// load; TotalCapacity is nil when no capacity value could be computed
// for the row, which is distinct from a real zero.
type Record struct {
	Cells         map[string]string `json:"cells"`
	Latitude      float64           `json:"latitude"`
	Longitude     float64           `json:"longitude"`
	TotalCapacity *float64          `json:"total_capacity"`
}

// Resolution maps the logical roles the dashboard cares about to the
// actual sheet columns found for them. It is computed once per load
// and never changes afterwards. An empty string (or empty slice for
// capacity) means the role did not resolve; dependent features are
// expected to degrade instead of failing.
type Resolution struct {
	Coordinates     string   `json:"coordinates"`
	Owner           string   `json:"owner,omitempty"`
	Region          string   `json:"region,omitempty"`
	Name            string   `json:"name,omitempty"`
	CapacityColumns []string `json:"capacity_columns,omitempty"`
}

// Table is the normalized plant dataset: the trimmed source columns in
// sheet order and the retained records. Tables are treated as
// immutable after construction; filtering produces a new Table that
// shares the underlying records.
type Table struct {
	Columns []string `json:"columns"`
	Records []Record `json:"records"`
}

// Snapshot is the immutable result of one load attempt that
// succeeded. SourceRows counts the data rows read from the sheet
// before rows without usable coordinates were dropped.
type Snapshot struct {
	Table      Table
	Resolution Resolution
	SourceRows int
	LoadedAt   time.Time
}

// HasCapacityData reports whether at least one record carries a
// present TotalCapacity. This is deliberately independent from the
// question of whether any capacity columns resolved at all: a sheet
// can have capacity columns whose cells are all unparsable.
func (t Table) HasCapacityData() bool {
	for _, rec := range t.Records {
		if rec.TotalCapacity != nil {
			return true
		}
	}
	return false
}

// CapacityBounds returns the minimum and maximum present
// TotalCapacity values, or nils when the table has no capacity data.
func (t Table) CapacityBounds() (min, max *float64) {
	for _, rec := range t.Records {
		if rec.TotalCapacity == nil {
			continue
		}
		v := *rec.TotalCapacity
		if min == nil || v < *min {
			min = ptr(v)
		}
		if max == nil || v > *max {
			max = ptr(v)
		}
	}
	return min, max
}

// DistinctValues returns the sorted distinct non-empty values of one
// column across all records. Used to populate the filter widgets.
func (t Table) DistinctValues(column string) []string {
	if column == "" {
		return nil
	}
	seen := make(map[string]struct{})
	for _, rec := range t.Records {
		v := rec.Cells[column]
		if v == "" {
			continue
		}
		seen[v] = struct{}{}
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

func ptr(v float64) *float64 { return &v }
