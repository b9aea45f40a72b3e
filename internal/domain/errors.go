package domain

import "errors"

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrHallAlreadyExists   = errors.New("hall already exists with the same name")
	ErrSeatAlreadyReserved = errors.New("seat(s) are already reserved")
	ErrSeatOutOfService    = errors.New("seat(s) are not available for booking")
	ErrSchedulingConflict  = errors.New("hall is already occupied during the requested time window")
	ErrHasReservations     = errors.New("showtime has active reservations")
	ErrHasFutureShowtimes  = errors.New("hall has upcoming showtimes")
	ErrNotOwner            = errors.New("reservation does not belong to the user")
)
