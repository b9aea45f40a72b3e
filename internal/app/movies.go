package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/cinetix/booking-engine/api"
	"github.com/cinetix/booking-engine/internal/domain"
)

func (app *Application) CreateMovieHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CreateMovieRequest

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

	movie := domain.Movie{
		Title:       input.Title,
		Description: input.Description,
		Duration:    input.DurationMinutes,
	}

	if input.ReleaseDate != nil {
		releaseDate, parseErr := time.Parse("2006-01-02", *input.ReleaseDate)
		if parseErr != nil {
			app.badRequestResponse(w, r, errors.New("releaseDate is not a valid date"))
			return
		}

		movie.ReleaseDate = &releaseDate
	}

	err = app.movieRepo.Create(r.Context(), &movie)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieResponse{Movie: toApiMovie(movie)}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMoviesHandler(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movieRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	apiMovies := make([]api.Movie, len(movies))
	for i, v := range movies {
		apiMovies[i] = toApiMovie(v)
	}

	resp := api.MovieListResponse{Movies: apiMovies}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieHandler(w http.ResponseWriter, r *http.Request) {
	movieID, err := readIDParam(r, "movieID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), movieID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.MovieResponse{Movie: toApiMovie(*movie)}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiMovie(movie domain.Movie) api.Movie {
	return api.Movie{
		Id:              movie.ID,
		Title:           movie.Title,
		Description:     movie.Description,
		DurationMinutes: movie.Duration,
		ReleaseDate:     movie.ReleaseDate,
		CreatedAt:       movie.CreatedAt,
	}
}
