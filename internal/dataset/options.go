package dataset

// Options describes what the filter widgets may offer for one loaded
// table: the sorted distinct owner and region values and the capacity
// bounds. Nil slices and nil bounds mean the corresponding widget has
// nothing to offer and should be hidden.
type Options struct {
	Owners      []string `json:"owners,omitempty"`
	Regions     []string `json:"regions,omitempty"`
	MinCapacity *float64 `json:"min_capacity"`
	MaxCapacity *float64 `json:"max_capacity"`
}

// OptionsFor computes the filter options from the full (unfiltered)
// table. Unresolved roles yield nil entries.
func OptionsFor(t Table, res Resolution) Options {
	opts := Options{
		Owners:  t.DistinctValues(res.Owner),
		Regions: t.DistinctValues(res.Region),
	}
	opts.MinCapacity, opts.MaxCapacity = t.CapacityBounds()
	return opts
}
