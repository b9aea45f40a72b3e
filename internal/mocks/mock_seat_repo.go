package mocks

import (
	"context"

	"github.com/cinetix/booking-engine/internal/domain"
)

type MockSeatRepo struct {
	GetByHallFunc          func(ctx context.Context, hallID int) ([]domain.Seat, error)
	GetByHallAndNumberFunc func(ctx context.Context, hallID, seatNumber int) (*domain.Seat, error)
	UpdateStatusFunc       func(ctx context.Context, hallID, seatNumber int, status domain.SeatStatus) (*domain.Seat, error)
}

func (m *MockSeatRepo) GetByHall(ctx context.Context, hallID int) ([]domain.Seat, error) {
	return m.GetByHallFunc(ctx, hallID)
}

func (m *MockSeatRepo) GetByHallAndNumber(ctx context.Context, hallID, seatNumber int) (*domain.Seat, error) {
	return m.GetByHallAndNumberFunc(ctx, hallID, seatNumber)
}

func (m *MockSeatRepo) UpdateStatus(
	ctx context.Context,
	hallID, seatNumber int,
	status domain.SeatStatus) (*domain.Seat, error) {

	return m.UpdateStatusFunc(ctx, hallID, seatNumber, status)
}
