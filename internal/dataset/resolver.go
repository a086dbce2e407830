package dataset

import "strings"

// Candidate header substrings per role, lowercased, in priority
// order. Sheet exports from different tracker revisions disagree on
// exact header wording, so roles are matched by containment rather
// than equality.
var (
	coordinateKeys    = []string{"coordinates"}
	ownerKeys         = []string{"owner"}
	regionPrimaryKeys = []string{"country/area"}
	regionFallback    = []string{"country", "region"}
	nameKeys          = []string{"plant name", "plant name (english)"}
)

// capacitySuffix identifies per-product capacity columns. These are
// matched by suffix, not containment, because a sheet usually carries
// several of them (one per technology) and all of them are summed.
const capacitySuffix = "capacity (ttpa)"

// Pick returns the first column, in sheet order, whose lowercased name
// contains any of the candidate substrings. It returns "" when no
// column matches.
func Pick(columns []string, candidates ...string) string {
	for _, col := range columns {
		lower := strings.ToLower(col)
		for _, key := range candidates {
			if strings.Contains(lower, strings.ToLower(key)) {
				return col
			}
		}
	}
	return ""
}

// CapacityColumns returns every column whose lowercased name ends with
// "capacity (ttpa)", in sheet order.
func CapacityColumns(columns []string) []string {
	var matched []string
	for _, col := range columns {
		if strings.HasSuffix(strings.ToLower(col), capacitySuffix) {
			matched = append(matched, col)
		}
	}
	return matched
}

// Resolve computes the role-to-column mapping for one set of sheet
// headers. Only the coordinates role is required by the loader; every
// other role may come back empty. The region role tries the
// "country/area" wording first and falls back to anything containing
// "country" or "region".
func Resolve(columns []string) Resolution {
	res := Resolution{
		Coordinates:     Pick(columns, coordinateKeys...),
		Owner:           Pick(columns, ownerKeys...),
		Region:          Pick(columns, regionPrimaryKeys...),
		Name:            Pick(columns, nameKeys...),
		CapacityColumns: CapacityColumns(columns),
	}
	if res.Region == "" {
		res.Region = Pick(columns, regionFallback...)
	}
	return res
}
