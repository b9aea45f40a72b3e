package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cinetix/booking-engine/internal/domain"
)

type MockShowtimeRepo struct {
	mock.Mock
	domain.ShowtimeRepository
}

func (m *MockShowtimeRepo) Create(ctx context.Context, showtime *domain.Showtime) error {
	args := m.Called(ctx, showtime)
	return args.Error(0)
}

func (m *MockShowtimeRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShowtimeRepo) GetById(ctx context.Context, id int) (*domain.ShowtimeDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShowtimeDetail), args.Error(1)
}

func (m *MockShowtimeRepo) GetAll(ctx context.Context) ([]domain.ShowtimeDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShowtimeDetail), args.Error(1)
}

func (m *MockShowtimeRepo) GetByMovieTitle(ctx context.Context, title string) ([]domain.ShowtimeDetail, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShowtimeDetail), args.Error(1)
}

func (m *MockShowtimeRepo) GetByMovieId(ctx context.Context, movieID int) ([]domain.ShowtimeDetail, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShowtimeDetail), args.Error(1)
}
