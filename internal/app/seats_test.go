package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"

	"github.com/cinetix/booking-engine/api"
	"github.com/cinetix/booking-engine/internal/domain"
	"github.com/cinetix/booking-engine/internal/mocks"
	appvalidator "github.com/cinetix/booking-engine/internal/validator"
)

type SeatsTestSuite struct {
	suite.Suite
	app      *Application
	seatRepo *mocks.MockSeatRepo
	notifier *mocks.MockNotifier
}

func (s *SeatsTestSuite) SetupTest() {
	s.seatRepo = &mocks.MockSeatRepo{}
	s.notifier = new(mocks.MockNotifier)
	s.app = newTestApplication(func(a *Application) {
		a.seatRepo = s.seatRepo
		a.notifier = s.notifier
	})
}

func TestSeatsSuite(t *testing.T) {
	suite.Run(t, new(SeatsTestSuite))
}

func (s *SeatsTestSuite) TestGetSeatsByHallHandler() {
	createdAt := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

	s.seatRepo.GetByHallFunc = func(ctx context.Context, hallID int) ([]domain.Seat, error) {
		s.Equal(2, hallID)

		return []domain.Seat{
			{ID: 10, HallID: 2, SeatNumber: 1, Status: domain.SeatStatusAvailable, CreatedAt: createdAt},
			{ID: 11, HallID: 2, SeatNumber: 2, Status: domain.SeatStatusBroken, CreatedAt: createdAt},
		}, nil
	}

	w, r := executeRequest(s.T(), http.MethodGet, "/halls/2/seats", nil)
	r = withURLParams(r, map[string]string{"hallID": "2"})

	s.app.GetSeatsByHallHandler(w, r)

	s.Equal(http.StatusOK, w.Code)

	var response api.SeatListResponse
	err := json.NewDecoder(w.Body).Decode(&response)
	s.Require().NoError(err)

	want := api.SeatListResponse{
		Seats: []api.Seat{
			{Id: 10, HallId: 2, SeatNumber: 1, Status: "AVAILABLE", CreatedAt: createdAt},
			{Id: 11, HallId: 2, SeatNumber: 2, Status: "BROKEN", CreatedAt: createdAt},
		},
	}

	diff := cmp.Diff(want, response)
	s.Empty(diff, "Response mismatch (-want +got):\n%s", diff)
}

func (s *SeatsTestSuite) TestGetSeatHandler() {
	tests := []struct {
		name           string
		seatNumber     string
		getSeat        func(ctx context.Context, hallID, seatNumber int) (*domain.Seat, error)
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:           "invalid seat number",
			seatNumber:     "x",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "invalid seatNumber parameter",
		},
		{
			name:       "seat not found",
			seatNumber: "99",
			getSeat: func(ctx context.Context, hallID, seatNumber int) (*domain.Seat, error) {
				return nil, domain.ErrRecordNotFound
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:       "database error",
			seatNumber: "1",
			getSeat: func(ctx context.Context, hallID, seatNumber int) (*domain.Seat, error) {
				return nil, fmt.Errorf("database error")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name:       "seat found",
			seatNumber: "1",
			getSeat: func(ctx context.Context, hallID, seatNumber int) (*domain.Seat, error) {
				return &domain.Seat{ID: 10, HallID: 2, SeatNumber: 1, Status: domain.SeatStatusAvailable}, nil
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			s.seatRepo.GetByHallAndNumberFunc = tt.getSeat

			w, r := executeRequest(s.T(), http.MethodGet, "/halls/2/seats/"+tt.seatNumber, nil)
			r = withURLParams(r, map[string]string{"hallID": "2", "seatNumber": tt.seatNumber})

			s.app.GetSeatHandler(w, r)

			s.Equal(tt.wantStatus, w.Code)

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func (s *SeatsTestSuite) TestUpdateSeatStatusHandler() {
	tests := []struct {
		name           string
		input          api.UpdateSeatStatusRequest
		updateStatus   func(ctx context.Context, hallID, seatNumber int, status domain.SeatStatus) (*domain.Seat, error)
		wantStatus     int
		wantErrMessage string
		wantEvents     int
	}{
		{
			name:           "missing status",
			input:          api.UpdateSeatStatusRequest{},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: appvalidator.ErrRequired,
		},
		{
			name:           "unknown status",
			input:          api.UpdateSeatStatusRequest{Status: "RESERVED"},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: appvalidator.ErrInvalidSeatStatus,
		},
		{
			name:  "seat not found",
			input: api.UpdateSeatStatusRequest{Status: "BROKEN"},
			updateStatus: func(ctx context.Context, hallID, seatNumber int, status domain.SeatStatus) (*domain.Seat, error) {
				return nil, domain.ErrRecordNotFound
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:  "successful update",
			input: api.UpdateSeatStatusRequest{Status: "MAINTENANCE"},
			updateStatus: func(ctx context.Context, hallID, seatNumber int, status domain.SeatStatus) (*domain.Seat, error) {
				s.Equal(domain.SeatStatusMaintenance, status)

				return &domain.Seat{ID: 10, HallID: 2, SeatNumber: 1, Status: status}, nil
			},
			wantStatus: http.StatusOK,
			wantEvents: 1,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			s.seatRepo.UpdateStatusFunc = tt.updateStatus

			w, r := executeRequest(s.T(), http.MethodPatch, "/halls/2/seats/1/status", tt.input)
			r = withURLParams(r, map[string]string{"hallID": "2", "seatNumber": "1"})

			s.app.UpdateSeatStatusHandler(w, r)

			s.Equal(tt.wantStatus, w.Code)
			s.Len(s.notifier.Events(), tt.wantEvents)

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}
