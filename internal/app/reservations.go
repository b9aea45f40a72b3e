package app

import (
	"errors"
	"net/http"

	"github.com/cinetix/booking-engine/api"
	"github.com/cinetix/booking-engine/internal/domain"
)

func (app *Application) CreateReservationHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)
	principal := app.contextGetPrincipal(r)

	var input api.CreateReservationRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	group := domain.ReservationGroup{
		UserID:     principal.UserID,
		ShowtimeID: input.ShowtimeId,
	}

	err = app.reservationRepo.CreateGroup(r.Context(), &group, input.SeatIds)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatAlreadyReserved):
			logger.Warn("seat claim lost to a concurrent reservation", "showtime_id", input.ShowtimeId)
			app.conflictResponse(w, r, err)
		case errors.Is(err, domain.ErrSeatOutOfService):
			app.conflictResponse(w, r, err)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.notifier.Notify(r.Context(), domain.Event{
		Name: domain.EventReservationCreated,
		Payload: map[string]any{
			"reservationGroupId": group.ID,
			"showtimeId":         group.ShowtimeID,
			"seatIds":            input.SeatIds,
		},
	})

	resp := api.CreateReservationResponse{
		ReservationGroupId: group.ID,
		ShowtimeId:         group.ShowtimeID,
		SeatIds:            input.SeatIds,
		CreatedAt:          group.CreatedAt,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateReservationHandler(w http.ResponseWriter, r *http.Request) {
	principal := app.contextGetPrincipal(r)

	groupID, err := readIDParam(r, "groupID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.UpdateReservationRequest

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

	err = app.reservationRepo.ReplaceSeats(r.Context(), groupID, principal.UserID, input.SeatIds)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotOwner):
			app.forbiddenResponse(w, r)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrSeatAlreadyReserved), errors.Is(err, domain.ErrSeatOutOfService):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.notifier.Notify(r.Context(), domain.Event{
		Name: domain.EventReservationUpdated,
		Payload: map[string]any{
			"reservationGroupId": groupID,
			"seatIds":            input.SeatIds,
		},
	})

	resp := api.AckResponse{Message: "Reservation updated successfully"}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CancelReservationHandler(w http.ResponseWriter, r *http.Request) {
	principal := app.contextGetPrincipal(r)

	groupID, err := readIDParam(r, "groupID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.reservationRepo.CancelGroup(r.Context(), groupID, principal.UserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotOwner):
			app.forbiddenResponse(w, r)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.notifier.Notify(r.Context(), domain.Event{
		Name:    domain.EventReservationDeleted,
		Payload: map[string]any{"reservationGroupId": groupID},
	})

	resp := api.AckResponse{Message: "Reservation cancelled successfully"}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) AdminDeleteReservationHandler(w http.ResponseWriter, r *http.Request) {
	groupID, err := readIDParam(r, "groupID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.reservationRepo.DeleteGroup(r.Context(), groupID)
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
		Name:    domain.EventReservationDeleted,
		Payload: map[string]any{"reservationGroupId": groupID},
	})

	resp := api.AckResponse{Message: "Reservation deleted successfully"}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetUserReservationsHandler(w http.ResponseWriter, r *http.Request) {
	principal := app.contextGetPrincipal(r)

	params := api.UserReservationsParams{
		Timeframe: r.URL.Query().Get("timeframe"),
	}
	if params.Timeframe == "" {
		params.Timeframe = string(domain.TimeframeUpcoming)
	}

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	summaries, err := app.reservationRepo.GetSummariesByUser(
		r.Context(),
		principal.UserID,
		domain.Timeframe(params.Timeframe),
	)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.UserReservationsResponse{
		Reservations: toBookingSummaries(summaries),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetActiveReservationsHandler(w http.ResponseWriter, r *http.Request) {
	summaries, err := app.reservationRepo.GetActive(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ActiveReservationsResponse{
		Reservations: toBookingSummaries(summaries),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toBookingSummaries(summaries []domain.BookingSummary) []api.BookingSummary {
	bookingSummaries := make([]api.BookingSummary, len(summaries))

	for i, v := range summaries {
		bookingSummaries[i] = api.BookingSummary{
			ReservationGroupId: v.ReservationGroupID,
			UserId:             v.UserID,
			MovieTitle:         v.MovieTitle,
			HallName:           v.HallName,
			ShowDatetime:       v.ShowDatetime,
			SeatNumbers:        v.SeatNumbers,
			CreatedAt:          v.CreatedAt,
		}
	}

	return bookingSummaries
}
