package dataset

import (
	"math"
	"strconv"
	"strings"
)

// parseNumeric coerces one sheet cell to a float. Tracker exports
// write thousands separators into numeric cells, so commas are
// stripped before parsing. Empty, non-numeric and non-finite cells
// return nil; they count as absent, not as zero.
func parseNumeric(cell string) *float64 {
	s := strings.ReplaceAll(strings.TrimSpace(cell), ",", "")
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return ptr(v)
}

// totalCapacity sums the present numeric values of the resolved
// capacity columns for one row. Absent terms are excluded from the
// sum, not treated as zero; a row whose capacity cells are all absent
// (or an empty column list) yields nil.
func totalCapacity(cells map[string]string, columns []string) *float64 {
	var sum float64
	present := false
	for _, col := range columns {
		v := parseNumeric(cells[col])
		if v == nil {
			continue
		}
		sum += *v
		present = true
	}
	if !present {
		return nil
	}
	return ptr(sum)
}
