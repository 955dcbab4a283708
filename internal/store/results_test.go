package store

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/spindle-tools/cli/internal/domain"
	"github.com/spindle-tools/cli/internal/store/migrations"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Run(db))
	return NewWithDB(db)
}

func sampleResult(discID string, status domain.RipStatus, created time.Time) domain.RipResult {
	return domain.RipResult{
		ID:           uuid.New(),
		DiscID:       discID,
		Device:       "/dev/sr0",
		ReadOffset:   6,
		TrackCount:   12,
		TracksRipped: 12,
		Status:       status,
		OutputDir:    "/tmp/rips",
		CreatedAt:    created,
		UpdatedAt:    created,
	}
}

func TestInsertAndLatest(t *testing.T) {
	s := newTestStore(t)

	want := sampleResult("940aa80c", domain.StatusComplete, time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC))
	require.NoError(t, s.Insert(want))

	got, ok, err := s.Latest("940aa80c")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want.ID, got.ID)
	require.Equal(t, want.DiscID, got.DiscID)
	require.Equal(t, want.Device, got.Device)
	require.Equal(t, want.ReadOffset, got.ReadOffset)
	require.Equal(t, want.TrackCount, got.TrackCount)
	require.Equal(t, domain.StatusComplete, got.Status)
	require.True(t, want.CreatedAt.Equal(got.CreatedAt))
}

func TestLatest_NoRecord(t *testing.T) {
	s := newTestStore(t)

	_, ok, err := s.Latest("deadbeef")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLatest_PicksNewest(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	old := sampleResult("940aa80c", domain.StatusFailed, base)
	recent := sampleResult("940aa80c", domain.StatusComplete, base.Add(time.Hour))
	require.NoError(t, s.Insert(old))
	require.NoError(t, s.Insert(recent))

	got, ok, err := s.Latest("940aa80c")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, recent.ID, got.ID)
}

func TestList_Filters(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	a := sampleResult("aaaa1111", domain.StatusComplete, base)
	b := sampleResult("bbbb2222", domain.StatusFailed, base.Add(time.Minute))
	c := sampleResult("bbbb2222", domain.StatusPartial, base.Add(2*time.Minute))
	c.Device = "/dev/sr1"
	for _, r := range []domain.RipResult{a, b, c} {
		require.NoError(t, s.Insert(r))
	}

	t.Run("all newest first", func(t *testing.T) {
		got, err := s.List(domain.ResultFilter{})
		require.NoError(t, err)
		require.Len(t, got, 3)
		require.Equal(t, c.ID, got[0].ID)
		require.Equal(t, a.ID, got[2].ID)
	})

	t.Run("by disc id", func(t *testing.T) {
		got, err := s.List(domain.ResultFilter{DiscID: "bbbb2222"})
		require.NoError(t, err)
		require.Len(t, got, 2)
	})

	t.Run("by status", func(t *testing.T) {
		got, err := s.List(domain.ResultFilter{Status: domain.StatusComplete, HasStatus: true})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, a.ID, got[0].ID)
	})

	t.Run("by device", func(t *testing.T) {
		got, err := s.List(domain.ResultFilter{Device: "/dev/sr1"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, c.ID, got[0].ID)
	})

	t.Run("limit", func(t *testing.T) {
		got, err := s.List(domain.ResultFilter{Limit: 2})
		require.NoError(t, err)
		require.Len(t, got, 2)
	})
}

func TestUpdateStatus(t *testing.T) {
	s := newTestStore(t)

	r := sampleResult("940aa80c", domain.StatusPartial, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	r.TracksRipped = 7
	require.NoError(t, s.Insert(r))

	require.NoError(t, s.UpdateStatus(r.ID, domain.StatusComplete, 12))

	got, ok, err := s.Latest("940aa80c")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, domain.StatusComplete, got.Status)
	require.Equal(t, 12, got.TracksRipped)
	require.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func TestUpdateStatus_MissingRecord(t *testing.T) {
	s := newTestStore(t)

	err := s.UpdateStatus(uuid.New(), domain.StatusComplete, 1)
	require.Error(t, err)
}

func TestNew_CreatesFileWithRestrictedPermissions(t *testing.T) {
	path := t.TempDir() + "/results.db"

	s, err := New(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Insert(sampleResult("940aa80c", domain.StatusComplete, time.Now().UTC())))
}
