package dataset

import (
	"regexp"
	"strconv"
)

// coordPattern matches a complete "lat, lon" cell: two optionally
// signed decimal numbers separated by a comma, with any amount of
// whitespace around either number. Anchored on both ends so embedded
// or trailing text rejects the whole cell rather than half-parsing it.
var coordPattern = regexp.MustCompile(`^\s*(-?\d+(?:\.\d+)?)\s*,\s*(-?\d+(?:\.\d+)?)\s*$`)

// ParseCoordinates parses one coordinate cell per row into parallel
// latitude and longitude slices aligned with the input. Cells that do
// not match the full pattern yield a nil pair; bad cells are a data
// quality problem for the caller to drop, never an error.
func ParseCoordinates(values []string) (lat, lon []*float64) {
	lat = make([]*float64, len(values))
	lon = make([]*float64, len(values))
	for i, v := range values {
		m := coordPattern.FindStringSubmatch(v)
		if m == nil {
			continue
		}
		la, errLa := strconv.ParseFloat(m[1], 64)
		lo, errLo := strconv.ParseFloat(m[2], 64)
		if errLa != nil || errLo != nil {
			continue
		}
		lat[i] = ptr(la)
		lon[i] = ptr(lo)
	}
	return lat, lon
}
