// Package api defines the request and response types of the booking HTTP
// surface.
package api

import "time"

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type AckResponse struct {
	Message string `json:"message"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type CreateHallRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	TotalSeats int    `json:"totalSeats" validate:"required,min=1,max=1000"`
}

type UpdateHallRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type Hall struct {
	Id         int       `json:"id"`
	Name       string    `json:"name"`
	TotalSeats int       `json:"totalSeats"`
	CreatedAt  time.Time `json:"createdAt"`
}

type HallResponse struct {
	Hall Hall `json:"hall"`
}

type HallListResponse struct {
	Halls []Hall `json:"halls"`
}

type Seat struct {
	Id         int       `json:"id"`
	HallId     int       `json:"hallId"`
	SeatNumber int       `json:"seatNumber"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type SeatResponse struct {
	Seat Seat `json:"seat"`
}

type SeatListResponse struct {
	Seats []Seat `json:"seats"`
}

type UpdateSeatStatusRequest struct {
	Status string `json:"status" validate:"required,seat_status"`
}

type CreateMovieRequest struct {
	Title           string  `json:"title" validate:"required,max=200"`
	Description     string  `json:"description" validate:"max=2000"`
	DurationMinutes int     `json:"durationMinutes" validate:"required,min=1,max=600"`
	ReleaseDate     *string `json:"releaseDate" validate:"omitempty,datetime=2006-01-02"`
}

type Movie struct {
	Id              int        `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	DurationMinutes int        `json:"durationMinutes"`
	ReleaseDate     *time.Time `json:"releaseDate,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type MovieResponse struct {
	Movie Movie `json:"movie"`
}

type MovieListResponse struct {
	Movies []Movie `json:"movies"`
}

type CreateShowtimeRequest struct {
	MovieId      int    `json:"movieId" validate:"required,min=1"`
	HallId       int    `json:"hallId" validate:"required,min=1"`
	ShowDatetime string `json:"showDatetime" validate:"required,show_datetime"`
}

type Showtime struct {
	Id            int       `json:"id"`
	MovieId       int       `json:"movieId"`
	MovieTitle    string    `json:"movieTitle"`
	HallId        int       `json:"hallId"`
	HallName      string    `json:"hallName"`
	ShowDatetime  time.Time `json:"showDatetime"`
	OccupiedUntil time.Time `json:"occupiedUntil"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ShowtimeResponse struct {
	Showtime Showtime `json:"showtime"`
}

type ShowtimeListResponse struct {
	Showtimes []Showtime `json:"showtimes"`
}

type CreateReservationRequest struct {
	ShowtimeId int   `json:"showtimeId" validate:"required,min=1"`
	SeatIds    []int `json:"seatIds" validate:"required,min=1,max=10,unique,dive,min=1"`
}

type UpdateReservationRequest struct {
	SeatIds []int `json:"seatIds" validate:"required,min=1,max=10,unique,dive,min=1"`
}

type CreateReservationResponse struct {
	ReservationGroupId int       `json:"reservationGroupId"`
	ShowtimeId         int       `json:"showtimeId"`
	SeatIds            []int     `json:"seatIds"`
	CreatedAt          time.Time `json:"createdAt"`
}

type BookingSummary struct {
	ReservationGroupId int       `json:"reservationGroupId"`
	UserId             int       `json:"userId"`
	MovieTitle         string    `json:"movieTitle"`
	HallName           string    `json:"hallName"`
	ShowDatetime       time.Time `json:"showDatetime"`
	SeatNumbers        []int     `json:"seatNumbers"`
	CreatedAt          time.Time `json:"createdAt"`
}

type UserReservationsParams struct {
	Timeframe string `validate:"required,oneof=upcoming past"`
}

type UserReservationsResponse struct {
	Reservations []BookingSummary `json:"reservations"`
}

type ActiveReservationsResponse struct {
	Reservations []BookingSummary `json:"reservations"`
}
