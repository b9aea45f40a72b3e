package app

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/cinetix/booking-engine/api"
	"github.com/cinetix/booking-engine/internal/domain"
)

const showDatetimeLayout = "2006-01-02T15:04:05"

func (app *Application) CreateShowtimeHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CreateShowtimeRequest

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

	// The show_datetime tag guarantees the lexical shape, but not that the
	// components form a real calendar date.
	showDatetime, err := time.Parse(showDatetimeLayout, input.ShowDatetime)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("showDatetime is not a valid date and time"))
		return
	}

	showtime := domain.Showtime{
		MovieID:      input.MovieId,
		HallID:       input.HallId,
		ShowDatetime: showDatetime,
	}

	err = app.showtimeRepo.Create(r.Context(), &showtime)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrSchedulingConflict):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	detail, err := app.showtimeRepo.GetById(r.Context(), showtime.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.notifier.Notify(r.Context(), domain.Event{
		Name:    domain.EventShowtimeCreated,
		Payload: toApiShowtime(*detail),
	})

	resp := api.ShowtimeResponse{Showtime: toApiShowtime(*detail)}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShowtimesHandler(w http.ResponseWriter, r *http.Request) {
	var (
		details []domain.ShowtimeDetail
		err     error
	)

	query := r.URL.Query()

	switch {
	case query.Get("movieId") != "":
		movieID, parseErr := strconv.Atoi(query.Get("movieId"))
		if parseErr != nil || movieID < 1 {
			app.badRequestResponse(w, r, errors.New("invalid movieId parameter"))
			return
		}

		details, err = app.showtimeRepo.GetByMovieId(r.Context(), movieID)
	case query.Get("title") != "":
		details, err = app.showtimeRepo.GetByMovieTitle(r.Context(), query.Get("title"))
	default:
		details, err = app.showtimeRepo.GetAll(r.Context())
	}

	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	showtimes := make([]api.Showtime, len(details))
	for i, v := range details {
		showtimes[i] = toApiShowtime(v)
	}

	resp := api.ShowtimeListResponse{Showtimes: showtimes}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteShowtimeHandler(w http.ResponseWriter, r *http.Request) {
	showtimeID, err := readIDParam(r, "showtimeID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.showtimeRepo.Delete(r.Context(), showtimeID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrHasReservations):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.notifier.Notify(r.Context(), domain.Event{
		Name:    domain.EventShowtimeDeleted,
		Payload: map[string]any{"showtimeId": showtimeID},
	})

	resp := api.AckResponse{Message: "Showtime deleted successfully"}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiShowtime(detail domain.ShowtimeDetail) api.Showtime {
	return api.Showtime{
		Id:            detail.ID,
		MovieId:       detail.MovieID,
		MovieTitle:    detail.MovieTitle,
		HallId:        detail.HallID,
		HallName:      detail.HallName,
		ShowDatetime:  detail.ShowDatetime,
		OccupiedUntil: detail.OccupiedUntil,
		CreatedAt:     detail.CreatedAt,
	}
}
