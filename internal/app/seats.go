package app

import (
	"errors"
	"net/http"

	"github.com/cinetix/booking-engine/api"
	"github.com/cinetix/booking-engine/internal/domain"
)

func (app *Application) GetSeatsByHallHandler(w http.ResponseWriter, r *http.Request) {
	hallID, err := readIDParam(r, "hallID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	seats, err := app.seatRepo.GetByHall(r.Context(), hallID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	apiSeats := make([]api.Seat, len(seats))
	for i, v := range seats {
		apiSeats[i] = toApiSeat(v)
	}

	resp := api.SeatListResponse{Seats: apiSeats}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetSeatHandler(w http.ResponseWriter, r *http.Request) {
	hallID, err := readIDParam(r, "hallID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	seatNumber, err := readIDParam(r, "seatNumber")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	seat, err := app.seatRepo.GetByHallAndNumber(r.Context(), hallID, seatNumber)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.SeatResponse{Seat: toApiSeat(*seat)}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateSeatStatusHandler(w http.ResponseWriter, r *http.Request) {
	hallID, err := readIDParam(r, "hallID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	seatNumber, err := readIDParam(r, "seatNumber")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.UpdateSeatStatusRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	seat, err := app.seatRepo.UpdateStatus(r.Context(), hallID, seatNumber, domain.SeatStatus(input.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.notifier.Notify(r.Context(), domain.Event{
		Name:    domain.EventSeatUpdated,
		Payload: toApiSeat(*seat),
	})

	resp := api.SeatResponse{Seat: toApiSeat(*seat)}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiSeat(seat domain.Seat) api.Seat {
	return api.Seat{
		Id:         seat.ID,
		HallId:     seat.HallID,
		SeatNumber: seat.SeatNumber,
		Status:     string(seat.Status),
		CreatedAt:  seat.CreatedAt,
	}
}
