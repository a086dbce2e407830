package dataset

// Params holds the three independent filter dimensions. A nil slice
// or nil bound means the dimension is inactive and passes every row.
type Params struct {
	Owners      []string
	Regions     []string
	MinCapacity *float64
	MaxCapacity *float64
}

// Apply returns a new table containing exactly the records that
// satisfy every active filter dimension. Membership on owner and
// region is an exact, case-sensitive comparison against the supplied
// set; the capacity range is inclusive on both bounds and only tested
// against records with a present TotalCapacity — records lacking
// capacity data are never excluded for lacking it. A dimension whose
// role did not resolve passes every row.
//
// Apply never mutates its input: identical inputs always produce an
// identical output table, so filtering is idempotent and the order in
// which dimensions are evaluated does not matter.
func Apply(t Table, res Resolution, p Params) Table {
	ownerSet := toSet(p.Owners)
	regionSet := toSet(p.Regions)

	out := Table{Columns: t.Columns}
	for _, rec := range t.Records {
		if !memberOf(ownerSet, res.Owner, rec) {
			continue
		}
		if !memberOf(regionSet, res.Region, rec) {
			continue
		}
		if !withinCapacity(rec, p.MinCapacity, p.MaxCapacity) {
			continue
		}
		out.Records = append(out.Records, rec)
	}
	return out
}

func toSet(values []string) map[string]struct{} {
	if values == nil {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func memberOf(set map[string]struct{}, column string, rec Record) bool {
	if set == nil || column == "" {
		return true
	}
	_, ok := set[rec.Cells[column]]
	return ok
}

func withinCapacity(rec Record, min, max *float64) bool {
	if rec.TotalCapacity == nil {
		return true
	}
	v := *rec.TotalCapacity
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}
