package app

import (
	"errors"
	"net/http"

	"github.com/cinetix/booking-engine/api"
	"github.com/cinetix/booking-engine/internal/domain"
)

func (app *Application) CreateHallHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CreateHallRequest

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

	hall := domain.Hall{
		Name:       input.Name,
		TotalSeats: input.TotalSeats,
	}

	err = app.hallRepo.Create(r.Context(), &hall)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrHallAlreadyExists):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.notifier.Notify(r.Context(), domain.Event{
		Name:    domain.EventHallCreated,
		Payload: toApiHall(hall),
	})

	resp := api.HallResponse{Hall: toApiHall(hall)}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetHallsHandler(w http.ResponseWriter, r *http.Request) {
	halls, err := app.hallRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	apiHalls := make([]api.Hall, len(halls))
	for i, v := range halls {
		apiHalls[i] = toApiHall(v)
	}

	resp := api.HallListResponse{Halls: apiHalls}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetHallHandler(w http.ResponseWriter, r *http.Request) {
	hallID, err := readIDParam(r, "hallID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	hall, err := app.hallRepo.GetById(r.Context(), hallID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.HallResponse{Hall: toApiHall(*hall)}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateHallHandler(w http.ResponseWriter, r *http.Request) {
	hallID, err := readIDParam(r, "hallID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.UpdateHallRequest

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

	hall, err := app.hallRepo.UpdateName(r.Context(), hallID, input.Name)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrHallAlreadyExists):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.notifier.Notify(r.Context(), domain.Event{
		Name:    domain.EventHallUpdated,
		Payload: toApiHall(*hall),
	})

	resp := api.HallResponse{Hall: toApiHall(*hall)}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteHallHandler(w http.ResponseWriter, r *http.Request) {
	hallID, err := readIDParam(r, "hallID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.hallRepo.Delete(r.Context(), hallID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrHasFutureShowtimes), errors.Is(err, domain.ErrHasReservations):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.notifier.Notify(r.Context(), domain.Event{
		Name:    domain.EventHallDeleted,
		Payload: map[string]any{"hallId": hallID},
	})

	resp := api.AckResponse{Message: "Hall deleted successfully"}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiHall(hall domain.Hall) api.Hall {
	return api.Hall{
		Id:         hall.ID,
		Name:       hall.Name,
		TotalSeats: hall.TotalSeats,
		CreatedAt:  hall.CreatedAt,
	}
}
