//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"breakfast-deals/internal/domain/reservation"
	"breakfast-deals/internal/infra/events"
	"breakfast-deals/internal/infra/kvstore"
	"breakfast-deals/internal/infra/repository"
	"breakfast-deals/internal/pkg/clock"
	"breakfast-deals/internal/pkg/config"
	"breakfast-deals/internal/usecase/commands"
	"breakfast-deals/internal/usecase/queries"
	"breakfast-deals/tests/common/builder"
	eventsmock "breakfast-deals/tests/mock/events"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// countingStore wraps a memory store and can be told to fail reads or writes.
type countingStore struct {
	*kvstore.MemoryStore
	writes   atomic.Int32
	failSets atomic.Bool
	failGets atomic.Bool
}

func (s *countingStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.failGets.Load() {
		return nil, errors.New("i/o timeout")
	}
	return s.MemoryStore.Get(ctx, key)
}

func (s *countingStore) Set(ctx context.Context, key string, value []byte) error {
	s.writes.Add(1)
	if s.failSets.Load() {
		return errors.New("disk full")
	}
	return s.MemoryStore.Set(ctx, key, value)
}

type ReservationCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockPublisher *eventsmock.MockPublisher
	kv            *countingStore
	repo          *repository.ReservationStore
	clock         *clock.MockClock
	policy        reservation.CapacityPolicy
	cmds          commands.ReservationCommands
	queries       queries.ReservationQueries
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPublisher = eventsmock.NewMockPublisher(s.mockCtrl)
	s.kv = &countingStore{MemoryStore: kvstore.NewMemoryStore()}
	s.repo = repository.NewReservationStore(s.kv, config.StoreConfig{ReservationsKey: "reservations"}, discard)
	s.clock = clock.NewMockClock(builder.ReservationNow)
	s.policy = reservation.NewCapacityPolicy(10, time.UTC)

	services := &reservation.Services{
		Clock:       s.clock,
		IDGenerator: reservation.NewSequenceGenerator(s.clock.Now),
	}
	s.cmds = commands.NewReservationCommands(s.repo, s.mockPublisher, services, s.policy, discard)
	s.queries = queries.NewReservationQueries(s.repo, s.policy)
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ReservationCommandsTestSuite) allowPublish() {
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (s *ReservationCommandsTestSuite) TestCreateReservation() {
	ctx := context.Background()
	params := builder.NewReservationBuilder().BuildParams()

	s.mockPublisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e events.Event) error {
			s.Equal(events.TypeReservationCreated, e.Type)
			s.Equal("deal1", e.DealID)
			s.Equal(2, e.Guests)
			return nil
		})

	res, err := s.cmds.CreateReservation(ctx, params)
	s.Require().NoError(err)

	s.Equal(reservation.StatusConfirmed, res.Status())
	s.InDelta(49.98, res.TotalPrice(), 0.0001)

	stored := s.repo.ReadAll(ctx)
	s.Require().Len(stored, 1)
	s.Equal(res.ID(), stored[0].ID())
}

func (s *ReservationCommandsTestSuite) TestCreateReservationKeepsInsertionOrder() {
	s.allowPublish()
	ctx := context.Background()

	var ids []string
	for range 3 {
		res, err := s.cmds.CreateReservation(ctx, builder.NewReservationBuilder().BuildParams())
		s.Require().NoError(err)
		ids = append(ids, res.ID())
	}

	stored := s.repo.ReadAll(ctx)
	s.Require().Len(stored, 3)
	for i, r := range stored {
		s.Equal(ids[i], r.ID())
	}
}

func (s *ReservationCommandsTestSuite) TestCreateReservationIsUncheckedAtCapacity() {
	s.allowPublish()
	ctx := context.Background()
	params := builder.NewReservationBuilder().BuildParams()

	for range 10 {
		_, err := s.cmds.CreateReservation(ctx, params)
		s.Require().NoError(err)
	}

	available, err := s.queries.IsTimeSlotAvailable(ctx, "deal1", params.TimeSlot, s.clock.Now())
	s.Require().NoError(err)
	s.False(available)

	res, err := s.cmds.CreateReservation(ctx, params)
	s.Require().NoError(err)
	s.NotNil(res)
	s.Len(s.repo.ReadAll(ctx), 11)
}

func (s *ReservationCommandsTestSuite) TestBookReservationRejectsFullSlot() {
	s.allowPublish()
	ctx := context.Background()
	params := builder.NewReservationBuilder().BuildParams()

	for range 9 {
		_, err := s.cmds.BookReservation(ctx, params)
		s.Require().NoError(err)
	}

	// the tenth place is still free
	_, err := s.cmds.BookReservation(ctx, params)
	s.Require().NoError(err)

	res, err := s.cmds.BookReservation(ctx, params)
	s.Nil(res)
	s.ErrorIs(err, commands.ErrSlotUnavailable)
	s.Len(s.repo.ReadAll(ctx), 10)
}

func (s *ReservationCommandsTestSuite) TestBookReservationOtherDayIsFree() {
	s.allowPublish()
	ctx := context.Background()
	params := builder.NewReservationBuilder().BuildParams()

	for range 10 {
		_, err := s.cmds.BookReservation(ctx, params)
		s.Require().NoError(err)
	}

	tomorrow := builder.NewReservationBuilder().WithDate(s.clock.Now().AddDate(0, 0, 1)).BuildParams()
	_, err := s.cmds.BookReservation(ctx, tomorrow)
	s.NoError(err)
}

func (s *ReservationCommandsTestSuite) TestBookReservationConcurrentNeverOverbooks() {
	s.allowPublish()
	ctx := context.Background()
	params := builder.NewReservationBuilder().BuildParams()

	var wg sync.WaitGroup
	var booked atomic.Int32
	for range 25 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.cmds.BookReservation(ctx, params); err == nil {
				booked.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(10), booked.Load())
	s.Len(s.repo.ReadAll(ctx), 10)
}

func (s *ReservationCommandsTestSuite) TestCreateReservationStoreFailure() {
	s.kv.failSets.Store(true)

	res, err := s.cmds.CreateReservation(context.Background(), builder.NewReservationBuilder().BuildParams())
	s.Nil(res)
	s.ErrorIs(err, commands.ErrReservationCreation)
}

func (s *ReservationCommandsTestSuite) seed(n int) []string {
	s.T().Helper()
	ids := make([]string, 0, n)
	for range n {
		res, err := s.cmds.CreateReservation(context.Background(), builder.NewReservationBuilder().BuildParams())
		s.Require().NoError(err)
		ids = append(ids, res.ID())
	}
	return ids
}

func (s *ReservationCommandsTestSuite) TestReadFailureNeverOverwritesStoredList() {
	s.allowPublish()
	ctx := context.Background()
	params := builder.NewReservationBuilder().BuildParams()

	s.Run("create", func() {
		s.seed(5)
		writes := s.kv.writes.Load()

		s.kv.failGets.Store(true)
		res, err := s.cmds.CreateReservation(ctx, params)
		s.kv.failGets.Store(false)

		s.Nil(res)
		s.ErrorIs(err, commands.ErrReservationCreation)
		s.Equal(writes, s.kv.writes.Load())
		s.Len(s.repo.ReadAll(ctx), 5)
	})

	s.Run("book", func() {
		before := len(s.repo.ReadAll(ctx))
		writes := s.kv.writes.Load()

		s.kv.failGets.Store(true)
		res, err := s.cmds.BookReservation(ctx, params)
		s.kv.failGets.Store(false)

		s.Nil(res)
		s.ErrorIs(err, commands.ErrReservationCreation)
		s.Equal(writes, s.kv.writes.Load())
		s.Len(s.repo.ReadAll(ctx), before)
	})

	s.Run("cancel", func() {
		ids := s.seed(1)
		before := len(s.repo.ReadAll(ctx))
		writes := s.kv.writes.Load()

		s.kv.failGets.Store(true)
		ok, err := s.cmds.CancelReservation(ctx, ids[0])
		s.kv.failGets.Store(false)

		s.False(ok)
		s.ErrorIs(err, commands.ErrReservationStore)
		s.NotErrorIs(err, commands.ErrReservationNotFound)
		s.Equal(writes, s.kv.writes.Load())
		s.Len(s.repo.ReadAll(ctx), before)

		got, err := s.queries.GetByID(ctx, ids[0])
		s.Require().NoError(err)
		s.True(got.IsActive())
	})
}

func (s *ReservationCommandsTestSuite) TestCorruptDocumentIsNotOverwritten() {
	s.allowPublish()
	ctx := context.Background()
	s.Require().NoError(s.kv.MemoryStore.Set(ctx, "reservations", []byte(`{"not":"a list"}`)))

	res, err := s.cmds.CreateReservation(ctx, builder.NewReservationBuilder().BuildParams())
	s.Nil(res)
	s.ErrorIs(err, commands.ErrReservationCreation)

	raw, err := s.kv.MemoryStore.Get(ctx, "reservations")
	s.Require().NoError(err)
	s.JSONEq(`{"not":"a list"}`, string(raw))
}

func (s *ReservationCommandsTestSuite) TestPublishFailureDoesNotFailWrite() {
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	res, err := s.cmds.CreateReservation(context.Background(), builder.NewReservationBuilder().BuildParams())
	s.Require().NoError(err)
	s.NotNil(res)
	s.Len(s.repo.ReadAll(context.Background()), 1)
}

func (s *ReservationCommandsTestSuite) TestCancelReservation() {
	ctx := context.Background()
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	created, err := s.cmds.CreateReservation(ctx, builder.NewReservationBuilder().BuildParams())
	s.Require().NoError(err)

	s.mockPublisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e events.Event) error {
			s.Equal(events.TypeReservationCancelled, e.Type)
			s.Equal(created.ID(), e.ReservationID)
			return nil
		})

	ok, err := s.cmds.CancelReservation(ctx, created.ID())
	s.Require().NoError(err)
	s.True(ok)

	got, err := s.queries.GetByID(ctx, created.ID())
	s.Require().NoError(err)
	s.Equal(reservation.StatusCancelled, got.Status())
	s.Equal(created.TotalPrice(), got.TotalPrice())
	s.Equal(created.CreatedAt(), got.CreatedAt())
}

func (s *ReservationCommandsTestSuite) TestCancelFreesCapacity() {
	s.allowPublish()
	ctx := context.Background()
	params := builder.NewReservationBuilder().BuildParams()

	var first *reservation.Reservation
	for i := range 10 {
		res, err := s.cmds.BookReservation(ctx, params)
		s.Require().NoError(err)
		if i == 0 {
			first = res
		}
	}

	ok, err := s.cmds.CancelReservation(ctx, first.ID())
	s.Require().NoError(err)
	s.Require().True(ok)

	_, err = s.cmds.BookReservation(ctx, params)
	s.NoError(err)
}

func (s *ReservationCommandsTestSuite) TestCancelUnknownReservation() {
	ok, err := s.cmds.CancelReservation(context.Background(), "res_missing")
	s.False(ok)
	s.ErrorIs(err, commands.ErrReservationNotFound)
	s.Equal(int32(0), s.kv.writes.Load())
}

func (s *ReservationCommandsTestSuite) TestCancelAlreadyCancelledWritesNothing() {
	s.allowPublish()
	ctx := context.Background()
	created, err := s.cmds.CreateReservation(ctx, builder.NewReservationBuilder().BuildParams())
	s.Require().NoError(err)

	ok, err := s.cmds.CancelReservation(ctx, created.ID())
	s.Require().NoError(err)
	s.Require().True(ok)
	writes := s.kv.writes.Load()

	ok, err = s.cmds.CancelReservation(ctx, created.ID())
	s.NoError(err)
	s.True(ok)
	s.Equal(writes, s.kv.writes.Load())
}

func (s *ReservationCommandsTestSuite) TestCancelStoreFailure() {
	s.allowPublish()
	ctx := context.Background()
	created, err := s.cmds.CreateReservation(ctx, builder.NewReservationBuilder().BuildParams())
	s.Require().NoError(err)

	s.kv.failSets.Store(true)
	ok, err := s.cmds.CancelReservation(ctx, created.ID())
	s.False(ok)
	s.ErrorIs(err, commands.ErrReservationStore)

	got, err := s.queries.GetByID(ctx, created.ID())
	s.Require().NoError(err)
	s.True(got.IsActive())
}

func TestReservationCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}
