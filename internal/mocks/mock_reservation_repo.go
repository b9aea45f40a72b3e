package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cinetix/booking-engine/internal/domain"
)

type MockReservationRepo struct {
	mock.Mock
	domain.ReservationRepository
}

func (m *MockReservationRepo) CreateGroup(ctx context.Context, group *domain.ReservationGroup, seatIDs []int) error {
	args := m.Called(ctx, group, seatIDs)
	return args.Error(0)
}

func (m *MockReservationRepo) ReplaceSeats(ctx context.Context, groupID, userID int, seatIDs []int) error {
	args := m.Called(ctx, groupID, userID, seatIDs)
	return args.Error(0)
}

func (m *MockReservationRepo) CancelGroup(ctx context.Context, groupID, userID int) error {
	args := m.Called(ctx, groupID, userID)
	return args.Error(0)
}

func (m *MockReservationRepo) DeleteGroup(ctx context.Context, groupID int) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

func (m *MockReservationRepo) GetSummariesByUser(
	ctx context.Context,
	userID int,
	timeframe domain.Timeframe) ([]domain.BookingSummary, error) {

	args := m.Called(ctx, userID, timeframe)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingSummary), args.Error(1)
}

func (m *MockReservationRepo) GetActive(ctx context.Context) ([]domain.BookingSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingSummary), args.Error(1)
}
