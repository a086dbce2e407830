package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"steeldash/internal/config"
	"steeldash/internal/dataset"
)

// LoadState describes where the dataset is in its lifecycle.
type LoadState string

const (
	StateUnloaded LoadState = "unloaded"
	StateLoaded   LoadState = "loaded"
	StateFailed   LoadState = "failed"
)

// DashboardService owns the loaded dataset and answers every
// dashboard query from it. The load is memoized on the identity of
// the source file (modification time and size): repeated filter
// changes never re-read the workbook, while replacing the file on
// disk invalidates the cache on the next request. A failed load is
// cached the same way, so its message is re-surfaced verbatim on
// every access until the file changes or the process restarts.
type DashboardService struct {
	cfg    config.DatasetConfig
	logger *slog.Logger

	group singleflight.Group
	mu    sync.Mutex
	entry *cacheEntry
}

// sourceKey identifies one on-disk revision of the workbook. The zero
// key stands for "file cannot be stat'ed".
type sourceKey struct {
	modTime int64
	size    int64
}

type cacheEntry struct {
	key  sourceKey
	snap *dataset.Snapshot
	err  error
}

// NewDashboardService creates a dashboard service for the configured
// workbook.
func NewDashboardService(cfg config.DatasetConfig, logger *slog.Logger) *DashboardService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardService{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "dashboard_service")),
	}
}

func (s *DashboardService) currentKey() sourceKey {
	info, err := os.Stat(s.cfg.Path)
	if err != nil {
		return sourceKey{}
	}
	return sourceKey{modTime: info.ModTime().UnixNano(), size: info.Size()}
}

// Snapshot returns the loaded dataset, loading it on first access or
// whenever the backing file changed. Concurrent first requests
// collapse into a single read.
func (s *DashboardService) Snapshot(ctx context.Context) (*dataset.Snapshot, error) {
	key := s.currentKey()

	s.mu.Lock()
	if s.entry != nil && s.entry.key == key {
		entry := s.entry
		s.mu.Unlock()
		return entry.snap, entry.err
	}
	s.mu.Unlock()

	v, err, _ := s.group.Do(fmt.Sprintf("%d:%d", key.modTime, key.size), func() (interface{}, error) {
		s.mu.Lock()
		if s.entry != nil && s.entry.key == key {
			entry := s.entry
			s.mu.Unlock()
			return entry.snap, entry.err
		}
		s.mu.Unlock()

		snap, loadErr := dataset.Load(s.cfg.Path, s.cfg.Sheet, s.logger)
		if loadErr != nil {
			s.logger.ErrorContext(ctx, "dataset load failed",
				slog.String("path", s.cfg.Path),
				slog.String("error", loadErr.Error()))
		}

		s.mu.Lock()
		s.entry = &cacheEntry{key: key, snap: snap, err: loadErr}
		s.mu.Unlock()
		return snap, loadErr
	})
	if err != nil {
		return nil, err
	}
	return v.(*dataset.Snapshot), nil
}

// State reports the cached lifecycle state without triggering a load.
// The second return value is the load error message when failed.
func (s *DashboardService) State() (LoadState, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.entry == nil:
		return StateUnloaded, ""
	case s.entry.err != nil:
		return StateFailed, s.entry.err.Error()
	default:
		return StateLoaded, ""
	}
}

// Meta describes the loaded dataset for the front-end: the resolved
// columns, the filter options, and the capacity availability flags
// that drive widget enablement.
type Meta struct {
	Resolution         dataset.Resolution `json:"resolution"`
	Columns            []string           `json:"columns"`
	Options            dataset.Options    `json:"options"`
	Plants             int                `json:"plants"`
	SourceRows         int                `json:"source_rows"`
	HasCapacityColumns bool               `json:"has_capacity_columns"`
	HasCapacityData    bool               `json:"has_capacity_data"`
	LoadedAt           time.Time          `json:"loaded_at"`
}

// Meta returns the dataset description computed from the full,
// unfiltered table.
func (s *DashboardService) Meta(ctx context.Context) (*Meta, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &Meta{
		Resolution:         snap.Resolution,
		Columns:            snap.Table.Columns,
		Options:            dataset.OptionsFor(snap.Table, snap.Resolution),
		Plants:             len(snap.Table.Records),
		SourceRows:         snap.SourceRows,
		HasCapacityColumns: len(snap.Resolution.CapacityColumns) > 0,
		HasCapacityData:    snap.Table.HasCapacityData(),
		LoadedAt:           snap.LoadedAt,
	}, nil
}

// Plants returns the filtered table.
func (s *DashboardService) Plants(ctx context.Context, p dataset.Params) (dataset.Table, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return dataset.Table{}, err
	}
	return dataset.Apply(snap.Table, snap.Resolution, p), nil
}

// Summary returns the KPIs and the capacity-by-owner grouping for the
// filtered table.
func (s *DashboardService) Summary(ctx context.Context, p dataset.Params) (dataset.Summary, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return dataset.Summary{}, err
	}
	filtered := dataset.Apply(snap.Table, snap.Resolution, p)
	return dataset.Summarize(filtered, snap.Resolution), nil
}

// MapPoint is one marker of the scatter-geo layer. TotalCapacity is
// null when the row has no capacity data; the front-end falls back to
// uniform bubble sizes.
type MapPoint struct {
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	Label         string   `json:"label,omitempty"`
	Owner         string   `json:"owner,omitempty"`
	Region        string   `json:"region,omitempty"`
	TotalCapacity *float64 `json:"total_capacity"`
}

// MapPoints projects the filtered table onto the map layer. The
// marker label prefers the plant name column and falls back to the
// owner column when no name column resolved.
func (s *DashboardService) MapPoints(ctx context.Context, p dataset.Params) ([]MapPoint, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	res := snap.Resolution
	labelCol := res.Name
	if labelCol == "" {
		labelCol = res.Owner
	}

	filtered := dataset.Apply(snap.Table, res, p)
	points := make([]MapPoint, 0, len(filtered.Records))
	for _, rec := range filtered.Records {
		pt := MapPoint{
			Latitude:      rec.Latitude,
			Longitude:     rec.Longitude,
			TotalCapacity: rec.TotalCapacity,
		}
		if labelCol != "" {
			pt.Label = rec.Cells[labelCol]
		}
		if res.Owner != "" {
			pt.Owner = rec.Cells[res.Owner]
		}
		if res.Region != "" {
			pt.Region = rec.Cells[res.Region]
		}
		points = append(points, pt)
	}
	return points, nil
}
