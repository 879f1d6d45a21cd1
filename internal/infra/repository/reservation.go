package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"breakfast-deals/internal/domain/reservation"
	"breakfast-deals/internal/infra"
	"breakfast-deals/internal/infra/kvstore"
	"breakfast-deals/internal/infra/repository/converter"
	"breakfast-deals/internal/pkg/config"
)

// ReservationStore keeps every reservation as one JSON array under a single key.
// All mutation is whole-list read, modify in memory, whole-list write.
type ReservationStore struct {
	kv     kvstore.Store
	key    string
	logger *slog.Logger
}

func NewReservationStore(kv kvstore.Store, cfg config.StoreConfig, logger *slog.Logger) *ReservationStore {
	return &ReservationStore{
		kv:     kv,
		key:    cfg.ReservationsKey,
		logger: logger,
	}
}

// ReadAll returns the stored list in insertion order for readers. A missing
// key, a backend read error and an unparseable document all yield an empty
// list; a single invalid record is skipped.
func (s *ReservationStore) ReadAll(ctx context.Context) []*reservation.Reservation {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			s.logger.WarnContext(ctx, "failed to read reservations, treating as empty", "key", s.key, "error", err)
		}
		return []*reservation.Reservation{}
	}

	var records []converter.ReservationRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		s.logger.WarnContext(ctx, "unparseable reservations document, treating as empty", "key", s.key, "error", err)
		return []*reservation.Reservation{}
	}

	list := make([]*reservation.Reservation, 0, len(records))
	for i, rec := range records {
		r, err := converter.ReservationFromRecord(rec)
		if err != nil {
			s.logger.WarnContext(ctx, "skipping invalid reservation record", "key", s.key, "index", i, "id", rec.ID, "error", err)
			continue
		}
		list = append(list, r)
	}
	return list
}

// Load returns the stored list for a read-modify-write. Unlike ReadAll it
// fails on anything but a missing key, so a writer never rewrites the
// document from a partial view of it.
func (s *ReservationStore) Load(ctx context.Context) ([]*reservation.Reservation, error) {
	raw, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return []*reservation.Reservation{}, nil
	}
	if err != nil {
		return nil, infra.WrapStoreErr(ctx, s.logger, infra.KindStoreFailure, s.key, "failed to read reservations", err)
	}

	var records []converter.ReservationRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, infra.WrapStoreErr(ctx, s.logger, infra.KindDecodeFailure, s.key, "unparseable reservations document", err)
	}
	list, err := converter.ReservationsFromRecords(records)
	if err != nil {
		return nil, infra.WrapStoreErr(ctx, s.logger, infra.KindDecodeFailure, s.key, "invalid reservation record", err)
	}
	return list, nil
}

// WriteAll overwrites the stored list.
func (s *ReservationStore) WriteAll(ctx context.Context, list []*reservation.Reservation) error {
	raw, err := json.Marshal(converter.ReservationsToRecords(list))
	if err != nil {
		return infra.WrapStoreErr(ctx, s.logger, infra.KindEncodeFailure, s.key, "failed to encode reservations", err)
	}
	if err := s.kv.Set(ctx, s.key, raw); err != nil {
		return infra.WrapStoreErr(ctx, s.logger, infra.KindStoreFailure, s.key, "failed to write reservations", err)
	}
	return nil
}
