package dataset

import "sort"

// OwnerCapacity is one bar of the capacity-by-owner chart.
type OwnerCapacity struct {
	Owner         string  `json:"owner"`
	TotalCapacity float64 `json:"total_capacity"`
}

// Summary carries the dashboard KPIs for one (usually filtered)
// table. TotalCapacity and MeanCapacity are zero when the table has
// no capacity data at all; HasCapacityData lets consumers tell that
// apart from a genuine zero.
type Summary struct {
	Plants          int             `json:"plants"`
	TotalCapacity   float64         `json:"total_capacity"`
	MeanCapacity    float64         `json:"mean_capacity"`
	HasCapacityData bool            `json:"has_capacity_data"`
	CapacityByOwner []OwnerCapacity `json:"capacity_by_owner,omitempty"`
}

// Summarize computes the KPI numbers and, when the owner role
// resolved and capacity data exists, the per-owner capacity grouping
// sorted by descending capacity (ties broken by owner name so the
// chart is deterministic).
func Summarize(t Table, res Resolution) Summary {
	s := Summary{Plants: len(t.Records)}

	var sum float64
	count := 0
	for _, rec := range t.Records {
		if rec.TotalCapacity == nil {
			continue
		}
		sum += *rec.TotalCapacity
		count++
	}
	if count > 0 {
		s.HasCapacityData = true
		s.TotalCapacity = sum
		s.MeanCapacity = sum / float64(count)
	}

	if res.Owner == "" || !s.HasCapacityData {
		return s
	}

	byOwner := make(map[string]float64)
	for _, rec := range t.Records {
		if rec.TotalCapacity == nil {
			continue
		}
		byOwner[rec.Cells[res.Owner]] += *rec.TotalCapacity
	}
	for owner, total := range byOwner {
		s.CapacityByOwner = append(s.CapacityByOwner, OwnerCapacity{Owner: owner, TotalCapacity: total})
	}
	sort.Slice(s.CapacityByOwner, func(i, j int) bool {
		a, b := s.CapacityByOwner[i], s.CapacityByOwner[j]
		if a.TotalCapacity != b.TotalCapacity {
			return a.TotalCapacity > b.TotalCapacity
		}
		return a.Owner < b.Owner
	})
	return s
}
