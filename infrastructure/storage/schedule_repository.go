package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"timeline-lab/contract"
	"timeline-lab/domain/timeline"
	"timeline-lab/errors"
	"timeline-lab/infrastructure/wire"
	pb "timeline-lab/proto/timeline/v1"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"
)

const (
	schedulePrefix = "schedule:"
	datePrefix     = "date:"
	dateLayout     = "20060102"
)

var _ contract.IScheduleRepository = (*ScheduleRepository)(nil)

type ScheduleRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewScheduleRepository(db *badger.DB, log *slog.Logger) *ScheduleRepository {
	return &ScheduleRepository{db: db, log: log}
}

func scheduleKey(scheduleID string) []byte {
	return []byte(schedulePrefix + scheduleID)
}

// dateKey indexes a schedule by its day: "date:{yyyymmdd}:{schedule_id}".
// The fixed-width date keeps the index sorted lexicographically.
func dateKey(date time.Time, scheduleID string) []byte {
	return []byte(fmt.Sprintf("%s%s:%s", datePrefix, date.Format(dateLayout), scheduleID))
}

// Save writes the snapshot and its date index in a single transaction.
// A stale index entry is removed if the day moved.
func (r *ScheduleRepository) Save(ctx context.Context, day timeline.ScheduleDay) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(errors.CodeStoreUnavailable, err, "save of schedule %s cancelled", day.ScheduleID)
	}
	bytes, err := proto.Marshal(wire.ScheduleToPb(day))
	if err != nil {
		return errors.Wrap(errors.CodeStoreUnavailable, err, "encode schedule %s", day.ScheduleID)
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		previous, err := readSchedule(txn, day.ScheduleID)
		switch {
		case err == nil && previous.Date.Format(dateLayout) != day.Date.Format(dateLayout):
			if err := txn.Delete(dateKey(previous.Date, day.ScheduleID)); err != nil {
				return err
			}
		case err != nil && !errors.Is(err, badger.ErrKeyNotFound):
			return err
		}
		if err := txn.Set(scheduleKey(day.ScheduleID), bytes); err != nil {
			return err
		}
		return txn.Set(dateKey(day.Date, day.ScheduleID), nil)
	})
	if err != nil {
		return errors.Wrap(errors.CodeStoreUnavailable, err, "save schedule %s", day.ScheduleID)
	}
	r.log.Debug("Schedule saved", "schedule_id", day.ScheduleID, "version", day.Version)
	return nil
}

func (r *ScheduleRepository) Load(ctx context.Context, scheduleID string) (timeline.ScheduleDay, error) {
	if err := ctx.Err(); err != nil {
		return timeline.ScheduleDay{}, errors.Wrap(errors.CodeStoreUnavailable, err, "load of schedule %s cancelled", scheduleID)
	}
	var day timeline.ScheduleDay
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		day, err = readSchedule(txn, scheduleID)
		return err
	})
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
		return timeline.ScheduleDay{}, errors.New(errors.CodeNotFound, "schedule %s not found", scheduleID)
	case err != nil:
		return timeline.ScheduleDay{}, errors.Wrap(errors.CodeStoreUnavailable, err, "load schedule %s", scheduleID)
	}
	return day, nil
}

// ListByDateRange returns the schedules whose day falls in [from, to],
// ordered by day, using a seek on the date index.
func (r *ScheduleRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]timeline.ScheduleDay, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.CodeStoreUnavailable, err, "listing cancelled")
	}
	var days []timeline.ScheduleDay
	upper := datePrefix + to.Format(dateLayout) + ":\xff"
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(datePrefix)
		for it.Seek([]byte(datePrefix + from.Format(dateLayout))); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			if key > upper {
				break
			}
			scheduleID := key[len(datePrefix)+len(dateLayout)+1:]
			day, err := readSchedule(txn, scheduleID)
			if err != nil {
				return err
			}
			days = append(days, day)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(errors.CodeStoreUnavailable, err, "list schedules from %s to %s",
			from.Format(time.DateOnly), to.Format(time.DateOnly))
	}
	return days, nil
}

func readSchedule(txn *badger.Txn, scheduleID string) (timeline.ScheduleDay, error) {
	item, err := txn.Get(scheduleKey(scheduleID))
	if err != nil {
		return timeline.ScheduleDay{}, err
	}
	var dayPb pb.ScheduleDay
	err = item.Value(func(value []byte) error {
		return proto.Unmarshal(value, &dayPb)
	})
	if err != nil {
		return timeline.ScheduleDay{}, err
	}
	return wire.ScheduleFromPb(&dayPb), nil
}
