package storage

import (
	"context"
	"fmt"
	"log/slog"

	"timeline-lab/contract"
	"timeline-lab/domain/event"
	"timeline-lab/errors"
	"timeline-lab/infrastructure/wire"
	pb "timeline-lab/proto/timeline/v1"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
)

const journalPrefix = "journal:"

var _ contract.IJournalRepository = (*JournalRepository)(nil)

type JournalRepository struct {
	db          *badger.DB
	log         *slog.Logger
	limitDeltas *int
}

func NewJournalRepository(db *badger.DB, log *slog.Logger, limitDeltas *int) *JournalRepository {
	return &JournalRepository{db: db, log: log, limitDeltas: limitDeltas}
}

func journalSchedulePrefix(scheduleID string) string {
	return journalPrefix + scheduleID + ":"
}

// Append persists a delta in BadgerDB.
// The key is formatted as "journal:{schedule_id}:{sequence_padded}:{timestamp_padded}:{uuid}":
//  1. Deltas sort by sequence, and coordinator messages (which reuse the
//     last sequence) by time within it.
//  2. The UUID keeps two deltas stamped at the same nanosecond apart.
func (r *JournalRepository) Append(ctx context.Context, env event.Envelope) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(errors.CodeStoreUnavailable, err, "journal of schedule %s cancelled", env.Schedule)
	}
	key := fmt.Sprintf("%s%020d:%019d:%s",
		journalSchedulePrefix(env.Schedule),
		env.Sequence,
		env.At.UnixNano(),
		uuid.New(),
	)
	bytes, err := proto.Marshal(wire.EnvelopeToPb(env))
	if err != nil {
		return errors.Wrap(errors.CodeStoreUnavailable, err, "encode delta %d", env.Sequence)
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
	if err != nil {
		return errors.Wrap(errors.CodeStoreUnavailable, err, "journal delta %d of schedule %s", env.Sequence, env.Schedule)
	}
	return nil
}

// Read retrieves the deltas of a schedule using a prefix scan, oldest first.
// The returned cursor is the key suffix of the last delta read; passing it
// back resumes right after it. Reading stops at limitDeltas when set.
func (r *JournalRepository) Read(ctx context.Context, scheduleID string, cursor *string) ([]event.Envelope, *string, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, errors.Wrap(errors.CodeStoreUnavailable, err, "journal read cancelled")
	}
	var raw [][]byte
	var lastKey string
	err := r.db.View(func(txn *badger.Txn) error {
		prefixStr := journalSchedulePrefix(scheduleID)
		prefix := []byte(prefixStr)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		seekKey := prefix
		if cursor != nil {
			seekKey = append([]byte(prefixStr), []byte(*cursor)...)
		}
		it.Seek(seekKey)
		if cursor != nil && it.ValidForPrefix(prefix) && string(it.Item().Key()) == string(seekKey) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if r.limitDeltas != nil && len(raw) == *r.limitDeltas {
				r.log.Debug(fmt.Sprintf("Maximum of %d deltas reached", *r.limitDeltas))
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefixStr):])
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			raw = append(raw, value)
		}
		return nil
	})
	if err != nil {
		return nil, nil, errors.Wrap(errors.CodeStoreUnavailable, err, "read journal of schedule %s", scheduleID)
	}

	envelopes := make([]event.Envelope, 0, len(raw))
	for _, b := range raw {
		var envPb pb.Envelope
		if err := proto.Unmarshal(b, &envPb); err != nil {
			return nil, nil, errors.Wrap(errors.CodeStoreUnavailable, err, "decode journal of schedule %s", scheduleID)
		}
		envelopes = append(envelopes, wire.EnvelopeFromPb(&envPb))
	}
	if lastKey == "" {
		return envelopes, cursor, nil
	}
	return envelopes, &lastKey, nil
}
