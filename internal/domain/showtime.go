package domain

import (
	"context"
	"time"
)

// TurnoverBuffer is the cleaning margin appended to every screening; a hall
// stays occupied for the movie duration plus this buffer.
const TurnoverBuffer = 30 * time.Minute

type Showtime struct {
	ID            int
	MovieID       int
	HallID        int
	ShowDatetime  time.Time
	OccupiedUntil time.Time
	CreatedAt     time.Time
}

// ShowtimeDetail is a showtime joined with its movie and hall display fields.
type ShowtimeDetail struct {
	Showtime
	MovieTitle string
	HallName   string
}

// NewShowtime computes the occupied window [showDatetime, showDatetime +
// duration + TurnoverBuffer) for a screening of the given length.
func NewShowtime(movieID, hallID int, showDatetime time.Time, durationMinutes int) Showtime {
	occupied := time.Duration(durationMinutes)*time.Minute + TurnoverBuffer

	return Showtime{
		MovieID:       movieID,
		HallID:        hallID,
		ShowDatetime:  showDatetime,
		OccupiedUntil: showDatetime.Add(occupied),
	}
}

// Overlaps reports whether the two occupied windows intersect. Both windows
// are half-open, so a showtime starting exactly at another's OccupiedUntil
// does not conflict.
func (s Showtime) Overlaps(other Showtime) bool {
	return s.ShowDatetime.Before(other.OccupiedUntil) && s.OccupiedUntil.After(other.ShowDatetime)
}

type ShowtimeRepository interface {
	// Create checks the hall's existing occupied windows and inserts the
	// showtime in a single transaction. Overlap yields ErrSchedulingConflict.
	Create(ctx context.Context, showtime *Showtime) error
	// Delete refuses with ErrHasReservations while any reservation group
	// still references the showtime.
	Delete(ctx context.Context, id int) error
	GetById(ctx context.Context, id int) (*ShowtimeDetail, error)
	GetAll(ctx context.Context) ([]ShowtimeDetail, error)
	GetByMovieTitle(ctx context.Context, title string) ([]ShowtimeDetail, error)
	GetByMovieId(ctx context.Context, movieID int) ([]ShowtimeDetail, error)
}
