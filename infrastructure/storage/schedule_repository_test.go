package storage

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"timeline-lab/errors"
	"timeline-lab/internal/testkit"
	pb "timeline-lab/proto/timeline/v1"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

// setupTestDB initializes a temporary Badger instance for testing
func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newRepository(t *testing.T) *ScheduleRepository {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return NewScheduleRepository(setupTestDB(t), logger)
}

func TestScheduleRepository_SaveAndLoad(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := newRepository(t)

	// Given a schedule where the ceremony started and ran late
	day := testkit.WeddingDay()
	_, err := day.Start("ceremony", "alice", testkit.At(10, 2))
	req.NoError(err)
	_, err = day.ReportDelay("ceremony", "alice", 15, "Bride is late", true, testkit.At(10, 5))
	req.NoError(err)
	day.Version = 5
	day.UpdatedAt = testkit.At(10, 5)

	// When it is saved then loaded back
	req.NoError(repo.Save(ctx, day))
	loaded, err := repo.Load(ctx, testkit.ScheduleID)

	// Then nothing is lost
	req.NoError(err)
	req.Equal(day, loaded)
}

func TestScheduleRepository_LoadUnknown(t *testing.T) {
	repo := newRepository(t)

	_, err := repo.Load(context.Background(), "nope")

	require.ErrorIs(t, err, errors.ErrNotFound)
}

func TestScheduleRepository_CancelledContext(t *testing.T) {
	req := require.New(t)
	repo := newRepository(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, testkit.WeddingDay())

	req.ErrorIs(err, errors.ErrStoreUnavailable)
	_, err = repo.Load(context.Background(), testkit.ScheduleID)
	req.ErrorIs(err, errors.ErrNotFound)
}

func TestScheduleRepository_ListByDateRange(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := newRepository(t)

	day := func(id string, date time.Time) {
		d := testkit.WeddingDay()
		d.ScheduleID = id
		d.Date = date
		req.NoError(repo.Save(ctx, d))
	}
	day("friday", testkit.Date.AddDate(0, 0, -1))
	day("saturday-a", testkit.Date)
	day("saturday-b", testkit.Date)
	day("next-month", testkit.Date.AddDate(0, 1, 0))

	// The range is inclusive on both ends and ordered by day
	days, err := repo.ListByDateRange(ctx, testkit.Date.AddDate(0, 0, -1), testkit.Date)
	req.NoError(err)
	req.Len(days, 3)
	req.Equal("friday", days[0].ScheduleID)

	days, err = repo.ListByDateRange(ctx, testkit.Date, testkit.Date)
	req.NoError(err)
	req.Len(days, 2)

	// Moving a schedule to another day drops its old index entry
	day("saturday-b", testkit.Date.AddDate(0, 0, 7))
	days, err = repo.ListByDateRange(ctx, testkit.Date, testkit.Date)
	req.NoError(err)
	req.Len(days, 1)
	req.Equal("saturday-a", days[0].ScheduleID)
}

func TestScheduleRepository_StoresProtobuf(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := newRepository(t)
	day := testkit.WeddingDay()
	day.Version = 3

	req.NoError(repo.Save(ctx, day))

	// The value under the schedule key is a timeline.v1.ScheduleDay
	var stored pb.ScheduleDay
	err := repo.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(scheduleKey(testkit.ScheduleID))
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error { return proto.Unmarshal(value, &stored) })
	})
	req.NoError(err)
	req.Equal(testkit.ScheduleID, stored.GetScheduleId())
	req.Equal(uint64(3), stored.GetVersion())
	req.Len(stored.GetEvents(), len(day.Events))
	req.Equal(testkit.Date.UnixNano(), stored.GetDate())
}

func TestScheduleRepository_CorruptedValue(t *testing.T) {
	req := require.New(t)
	repo := newRepository(t)
	req.NoError(repo.db.Update(func(txn *badger.Txn) error {
		return txn.Set(scheduleKey("broken"), []byte{0xff, 0xff, 0xff})
	}))

	_, err := repo.Load(context.Background(), "broken")

	req.ErrorIs(err, errors.ErrStoreUnavailable)
}
