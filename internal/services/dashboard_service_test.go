package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"steeldash/internal/config"
	"steeldash/internal/dataset"
)

func writeWorkbook(t *testing.T, path string, owners []string) {
	t.Helper()
	f := excelize.NewFile()
	sheet := "Plant data"
	f.SetSheetName(f.GetSheetName(0), sheet)
	header := []string{"Plant Name", "Owner", "Country/Area", "Coordinates", "Crude steel capacity (ttpa)"}
	for i, h := range header {
		col, _ := excelize.ColumnNumberToName(i + 1)
		require.NoError(t, f.SetCellValue(sheet, col+"1", h))
	}
	for i, owner := range owners {
		row := i + 2
		cells := []interface{}{owner + " Works", owner, "Utopia", "10.5, -20.25", (i + 1) * 100}
		for c, val := range cells {
			col, _ := excelize.ColumnNumberToName(c + 1)
			cell, _ := excelize.JoinCellName(col, row)
			require.NoError(t, f.SetCellValue(sheet, cell, val))
		}
	}
	require.NoError(t, f.SaveAs(path))
}

func newService(t *testing.T, path string) *DashboardService {
	t.Helper()
	return NewDashboardService(config.DatasetConfig{Path: path, Sheet: "Plant data"}, nil)
}

func TestSnapshotCachesAcrossRequests(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plants.xlsx")
	writeWorkbook(t, path, []string{"A", "B"})
	svc := newService(t, path)

	first, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	second, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	// Same pointer: the second request was served from the cache.
	assert.Same(t, first, second)
}

func TestSnapshotReloadsWhenFileChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plants.xlsx")
	writeWorkbook(t, path, []string{"A"})
	svc := newService(t, path)

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Table.Records, 1)

	// Replace the workbook and bump its mtime so the source key
	// changes even on filesystems with coarse timestamps.
	writeWorkbook(t, path, []string{"A", "B", "C"})
	require.NoError(t, os.Chtimes(path, time.Now(), time.Now().Add(2*time.Second)))

	snap, err = svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Table.Records, 3)
}

func TestSnapshotCachesFailureVerbatim(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.xlsx")
	svc := newService(t, path)

	_, err1 := svc.Snapshot(context.Background())
	require.Error(t, err1)
	_, err2 := svc.Snapshot(context.Background())
	require.Error(t, err2)
	assert.Equal(t, err1.Error(), err2.Error())

	state, msg := svc.State()
	assert.Equal(t, StateFailed, state)
	assert.Equal(t, err1.Error(), msg)
}

func TestStateLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plants.xlsx")
	writeWorkbook(t, path, []string{"A"})
	svc := newService(t, path)

	state, _ := svc.State()
	assert.Equal(t, StateUnloaded, state)

	_, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	state, _ = svc.State()
	assert.Equal(t, StateLoaded, state)
}

func TestMeta(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plants.xlsx")
	writeWorkbook(t, path, []string{"B", "A"})
	svc := newService(t, path)

	meta, err := svc.Meta(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, meta.Plants)
	assert.Equal(t, []string{"A", "B"}, meta.Options.Owners)
	assert.True(t, meta.HasCapacityColumns)
	assert.True(t, meta.HasCapacityData)
	assert.Equal(t, "Owner", meta.Resolution.Owner)
}

func TestSummaryWithFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plants.xlsx")
	writeWorkbook(t, path, []string{"A", "B", "A"})
	svc := newService(t, path)

	sum, err := svc.Summary(context.Background(), dataset.Params{Owners: []string{"A"}})
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Plants)
	assert.Equal(t, 400.0, sum.TotalCapacity) // rows 1 and 3: 100 + 300
}

func TestMapPointsLabelsAndDegradation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plants.xlsx")
	writeWorkbook(t, path, []string{"A"})
	svc := newService(t, path)

	points, err := svc.MapPoints(context.Background(), dataset.Params{})
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "A Works", points[0].Label)
	assert.Equal(t, 10.5, points[0].Latitude)
	assert.Equal(t, -20.25, points[0].Longitude)
	require.NotNil(t, points[0].TotalCapacity)
	assert.Equal(t, 100.0, *points[0].TotalCapacity)
}
