//go:build unit

package queries_test

import (
	"context"
	"log/slog"
	"testing"

	"manuara-reservas/internal/domain/cabin"
	"manuara-reservas/internal/domain/reservation"
	"manuara-reservas/internal/infra"
	"manuara-reservas/internal/usecase/queries"
	"manuara-reservas/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type mockReadStore struct {
	mock.Mock
}

func (m *mockReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.ReservationView), args.Error(1)
}

func (m *mockReadStore) List(ctx context.Context, filter queries.ReservationFilter) ([]*queries.ReservationView, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*queries.ReservationView), args.Error(1)
}

func (m *mockReadStore) ActiveSnapshotsByCabin(ctx context.Context, cabinID cabin.ID) ([]reservation.Snapshot, error) {
	args := m.Called(ctx, cabinID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]reservation.Snapshot), args.Error(1)
}

func (m *mockReadStore) ActiveSnapshots(ctx context.Context) ([]reservation.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]reservation.Snapshot), args.Error(1)
}

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	store *mockReadStore
	q     queries.AvailabilityQueries
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	s.store = &mockReadStore{}
	s.q = queries.NewAvailabilityQueries(s.store, 30)
}

func TestAvailabilityQueriesSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

func (s *AvailabilityQueriesTestSuite) TestCheckCabin_Free() {
	stay := mustStay(s.T(), "2025-08-03", "2025-08-06")
	s.store.On("ActiveSnapshotsByCabin", mock.Anything, cabin.Large).
		Return([]reservation.Snapshot{}, nil)

	check, err := s.q.CheckCabin(context.Background(), cabin.Large, stay)

	s.Require().NoError(err)
	s.True(check.Available)
	s.Nil(check.NextAvailableDate)
}

func (s *AvailabilityQueriesTestSuite) TestCheckCabin_BusySuggestsNextDate() {
	stay := mustStay(s.T(), "2025-08-03", "2025-08-06")
	blocker := builder.NewReservationBuilder().
		WithCabin(cabin.Large).
		WithStay("2025-08-01", "2025-08-05").
		BuildSnapshot()
	s.store.On("ActiveSnapshotsByCabin", mock.Anything, cabin.Large).
		Return([]reservation.Snapshot{blocker}, nil)

	check, err := s.q.CheckCabin(context.Background(), cabin.Large, stay)

	s.Require().NoError(err)
	s.False(check.Available)
	s.Require().NotNil(check.NextAvailableDate)
	s.Equal("2025-08-05", check.NextAvailableDate.String())
}

func (s *AvailabilityQueriesTestSuite) TestCheckAllCabins_CatalogOrder() {
	stay := mustStay(s.T(), "2025-08-03", "2025-08-06")
	blocker := builder.NewReservationBuilder().
		WithCabin(cabin.Medium1).
		WithStay("2025-08-04", "2025-08-08").
		BuildSnapshot()
	s.store.On("ActiveSnapshots", mock.Anything).
		Return([]reservation.Snapshot{blocker}, nil)

	results, err := s.q.CheckAllCabins(context.Background(), stay)

	s.Require().NoError(err)
	s.Require().Len(results, 4)
	s.Equal(cabin.Small, results[0].CabinID)
	s.Equal(cabin.Medium1, results[1].CabinID)
	s.Equal(cabin.Medium2, results[2].CabinID)
	s.Equal(cabin.Large, results[3].CabinID)
	s.True(results[0].Available)
	s.False(results[1].Available)
	s.True(results[2].Available)
	s.True(results[3].Available)
}

type ReservationQueriesTestSuite struct {
	suite.Suite
	store *mockReadStore
	q     queries.ReservationQueries
}

func (s *ReservationQueriesTestSuite) SetupTest() {
	s.store = &mockReadStore{}
	s.q = queries.NewReservationQueries(s.store)
}

func TestReservationQueriesSuite(t *testing.T) {
	suite.Run(t, new(ReservationQueriesTestSuite))
}

func (s *ReservationQueriesTestSuite) TestTurnovers_PairsSameCabin() {
	date, err := reservation.ParseDate("2025-08-05")
	s.Require().NoError(err)
	confirmed := reservation.StatusConfirmed

	departure := &queries.ReservationView{
		ID:        uuid.New(),
		CabinID:   "small",
		GuestName: "Ana Pakarati",
	}
	otherDeparture := &queries.ReservationView{
		ID:        uuid.New(),
		CabinID:   "large",
		GuestName: "Jorge Tuki",
	}
	arrival := &queries.ReservationView{
		ID:        uuid.New(),
		CabinID:   "small",
		GuestName: "Marta Hotus",
	}

	s.store.On("List", mock.Anything, queries.ReservationFilter{DeparturesOn: &date, Status: &confirmed}).
		Return([]*queries.ReservationView{departure, otherDeparture}, nil)
	s.store.On("List", mock.Anything, queries.ReservationFilter{ArrivalsOn: &date, Status: &confirmed}).
		Return([]*queries.ReservationView{arrival}, nil)

	turnovers, err := s.q.Turnovers(context.Background(), date)

	s.Require().NoError(err)
	s.Require().Len(turnovers, 1)
	s.Equal("small", turnovers[0].CabinID)
	s.Equal("2025-08-05", turnovers[0].Date)
	s.Equal(departure.ID, turnovers[0].DepartureID)
	s.Equal(arrival.ID, turnovers[0].ArrivalID)
	s.Equal("Ana Pakarati", turnovers[0].DepartureGuest)
	s.Equal("Marta Hotus", turnovers[0].ArrivalGuest)
}

func (s *ReservationQueriesTestSuite) TestGetByID_NotFoundSentinel() {
	id := uuid.New()
	storeErr := infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "reservation not found", pgx.ErrNoRows)
	s.store.On("FindByID", mock.Anything, id).Return(nil, storeErr)

	view, err := s.q.GetByID(context.Background(), id)

	s.Nil(view)
	s.Require().ErrorIs(err, queries.ErrReservationNotFound)
}

func (s *ReservationQueriesTestSuite) TestGetByID_StoreFailureStaysUnmapped() {
	id := uuid.New()
	storeErr := infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "query failed", pgx.ErrTxClosed)
	s.store.On("FindByID", mock.Anything, id).Return(nil, storeErr)

	_, err := s.q.GetByID(context.Background(), id)

	s.Require().Error(err)
	s.NotErrorIs(err, queries.ErrReservationNotFound)
}

type AnalyticsQueriesTestSuite struct {
	suite.Suite
	store *mockReadStore
	q     queries.AnalyticsQueries
}

func (s *AnalyticsQueriesTestSuite) SetupTest() {
	s.store = &mockReadStore{}
	s.q = queries.NewAnalyticsQueries(s.store)
}

func TestAnalyticsQueriesSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsQueriesTestSuite))
}

func (s *AnalyticsQueriesTestSuite) TestOccupancy_ClampsToWindow() {
	window := mustStay(s.T(), "2025-08-01", "2025-08-11")

	// 4 nights inside the window, starts before it
	partial := builder.NewReservationBuilder().
		WithCabin(cabin.Small).
		WithStay("2025-07-28", "2025-08-05").
		BuildSnapshot()
	// Fully inside: 3 nights
	inside := builder.NewReservationBuilder().
		WithCabin(cabin.Small).
		WithStay("2025-08-06", "2025-08-09").
		BuildSnapshot()
	// Outside the window entirely
	outside := builder.NewReservationBuilder().
		WithCabin(cabin.Large).
		WithStay("2025-09-01", "2025-09-05").
		BuildSnapshot()
	s.store.On("ActiveSnapshots", mock.Anything).
		Return([]reservation.Snapshot{partial, inside, outside}, nil)

	results, err := s.q.Occupancy(context.Background(), window)

	s.Require().NoError(err)
	s.Require().Len(results, 4)
	s.Equal("small", results[0].CabinID)
	s.Equal(7, results[0].BookedNights)
	s.Equal(10, results[0].WindowNights)
	s.InDelta(0.7, results[0].OccupancyRate, 1e-9)
	s.Equal(0, results[3].BookedNights)
	s.Equal(float64(0), results[3].OccupancyRate)
}

type mockNotificationStore struct {
	mock.Mock
}

func (m *mockNotificationStore) List(ctx context.Context, unreadOnly bool, limit int) ([]*queries.NotificationView, error) {
	args := m.Called(ctx, unreadOnly, limit)
	return args.Get(0).([]*queries.NotificationView), args.Error(1)
}

func TestNotificationQueries_ListCapsLimit(t *testing.T) {
	store := &mockNotificationStore{}
	q := queries.NewNotificationQueries(store)

	store.On("List", mock.Anything, true, 50).Return([]*queries.NotificationView{}, nil)

	_, err := q.List(context.Background(), true, 500)
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func mustStay(t *testing.T, in, out string) reservation.StayRange {
	t.Helper()
	stay, err := reservation.ParseStayRange(in, out)
	require.NoError(t, err)
	return stay
}
