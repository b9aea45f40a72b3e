package domain

import (
	"context"
	"time"
)

type SeatStatus string

const (
	SeatStatusAvailable   SeatStatus = "AVAILABLE"
	SeatStatusBroken      SeatStatus = "BROKEN"
	SeatStatusMaintenance SeatStatus = "MAINTENANCE"
)

// Seat status reflects physical condition only. Whether a seat is currently
// held for a given showtime is derived from the reservations table, never
// stored on the seat row. Seats that are BROKEN or under MAINTENANCE are
// excluded from booking eligibility.
type Seat struct {
	ID         int
	HallID     int
	SeatNumber int
	Status     SeatStatus
	CreatedAt  time.Time
}

type SeatRepository interface {
	GetByHall(ctx context.Context, hallID int) ([]Seat, error)
	GetByHallAndNumber(ctx context.Context, hallID, seatNumber int) (*Seat, error)
	UpdateStatus(ctx context.Context, hallID, seatNumber int, status SeatStatus) (*Seat, error)
}
