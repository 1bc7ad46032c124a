package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podkeeper/internal/model"
)

// fakeRecordStore keeps records in insertion order and mimics the SQL
// layer's newest-first listing.
type fakeRecordStore struct {
	records []model.PODRecord
}

func (f *fakeRecordStore) Create(_ context.Context, rec model.PODRecord) error {
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeRecordStore) FindByID(_ context.Context, id string) (model.PODRecord, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return model.PODRecord{}, model.ErrRecordNotFound
}

func (f *fakeRecordStore) List(_ context.Context) ([]model.PODRecord, error) {
	out := make([]model.PODRecord, 0, len(f.records))
	for i := len(f.records) - 1; i >= 0; i-- {
		out = append(out, f.records[i])
	}
	return out, nil
}

func TestRecordService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id and timestamp and preserves photo order", func(t *testing.T) {
		store := &fakeRecordStore{}
		svc := NewRecordService(store)
		created := time.Date(2026, 5, 2, 12, 30, 0, 0, time.UTC)
		svc.now = func() time.Time { return created }

		record, err := svc.Create(ctx, model.CreateRecordRequest{
			CaseNumber: "2026-0042",
			DriverName: "Jens Hansen",
			PhotoPaths: []string{"a.jpg", "b.jpg", "c.jpg"},
		})
		require.NoError(t, err)

		assert.NotEmpty(t, record.ID)
		assert.Equal(t, created, record.CreatedAt)
		assert.Equal(t, []string{"a.jpg", "b.jpg", "c.jpg"}, record.PhotoPaths)
	})

	t.Run("requires case number", func(t *testing.T) {
		svc := NewRecordService(&fakeRecordStore{})

		_, err := svc.Create(ctx, model.CreateRecordRequest{DriverName: "Jens Hansen"})
		assert.Error(t, err)
	})

	t.Run("requires driver name", func(t *testing.T) {
		svc := NewRecordService(&fakeRecordStore{})

		_, err := svc.Create(ctx, model.CreateRecordRequest{CaseNumber: "2026-0042"})
		assert.Error(t, err)
	})

	t.Run("accepts duplicate case numbers", func(t *testing.T) {
		svc := NewRecordService(&fakeRecordStore{})

		first, err := svc.Create(ctx, model.CreateRecordRequest{CaseNumber: "2026-0042", DriverName: "A"})
		require.NoError(t, err)
		second, err := svc.Create(ctx, model.CreateRecordRequest{CaseNumber: "2026-0042", DriverName: "B"})
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("drops blank photo paths but keeps ordering", func(t *testing.T) {
		svc := NewRecordService(&fakeRecordStore{})

		record, err := svc.Create(ctx, model.CreateRecordRequest{
			CaseNumber: "2026-0042",
			DriverName: "Jens Hansen",
			PhotoPaths: []string{"first.jpg", "  ", "second.jpg"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"first.jpg", "second.jpg"}, record.PhotoPaths)
	})
}

func TestRecordService_GetAndList(t *testing.T) {
	ctx := context.Background()

	t.Run("get returns the stored record field for field", func(t *testing.T) {
		store := &fakeRecordStore{}
		svc := NewRecordService(store)

		created, err := svc.Create(ctx, model.CreateRecordRequest{
			CaseNumber:    "2026-0042",
			DriverName:    "Jens Hansen",
			ForemanName:   "Bo Larsen",
			CustomerName:  "Nordisk Byg A/S",
			Notes:         "Leveret ved port 3",
			PhotoPaths:    []string{"p1.jpg", "p2.jpg"},
			SignaturePath: "sig.png",
		})
		require.NoError(t, err)

		fetched, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, fetched)
	})

	t.Run("get unknown id returns not found", func(t *testing.T) {
		svc := NewRecordService(&fakeRecordStore{})

		_, err := svc.Get(ctx, "missing")
		assert.ErrorIs(t, err, model.ErrRecordNotFound)
	})

	t.Run("list returns newest first as summaries", func(t *testing.T) {
		store := &fakeRecordStore{}
		svc := NewRecordService(store)

		r1, err := svc.Create(ctx, model.CreateRecordRequest{CaseNumber: "1", DriverName: "A"})
		require.NoError(t, err)
		r2, err := svc.Create(ctx, model.CreateRecordRequest{CaseNumber: "2", DriverName: "B"})
		require.NoError(t, err)
		r3, err := svc.Create(ctx, model.CreateRecordRequest{CaseNumber: "3", DriverName: "C"})
		require.NoError(t, err)

		summaries, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, summaries, 3)
		assert.Equal(t, r3.ID, summaries[0].ID)
		assert.Equal(t, r2.ID, summaries[1].ID)
		assert.Equal(t, r1.ID, summaries[2].ID)
	})
}
