package domain

import (
	"context"
	"time"
)

// ReservationGroup is one user's atomic booking of one or more seats for one
// showtime. A group always holds at least one seat; seat changes replace the
// whole seat set under the same group id.
type ReservationGroup struct {
	ID         int
	UserID     int
	ShowtimeID int
	CreatedAt  time.Time
}

// Reservation claims a single seat for the owning group's showtime. The
// (ShowtimeID, SeatID) pair is unique across all groups; the storage
// constraint on that pair is the sole arbiter of concurrent claims.
type Reservation struct {
	ID                 int
	ReservationGroupID int
	ShowtimeID         int
	SeatID             int
}

type Timeframe string

const (
	TimeframeUpcoming Timeframe = "upcoming"
	TimeframePast     Timeframe = "past"
)

// BookingSummary is one reservation group joined with its showtime, movie,
// and seat numbers for listing.
type BookingSummary struct {
	ReservationGroupID int
	UserID             int
	MovieTitle         string
	HallName           string
	ShowDatetime       time.Time
	SeatNumbers        []int
	CreatedAt          time.Time
}

type ReservationRepository interface {
	// CreateGroup atomically inserts the group and one reservation row per
	// seat. Any seat already claimed for the showtime fails the whole
	// operation with ErrSeatAlreadyReserved and commits nothing.
	CreateGroup(ctx context.Context, group *ReservationGroup, seatIDs []int) error
	// ReplaceSeats swaps the group's entire seat set in one transaction.
	// The group's own previous seats are freed first, so conflicts arise
	// only against other groups.
	ReplaceSeats(ctx context.Context, groupID, userID int, seatIDs []int) error
	// CancelGroup deletes the group after verifying ownership.
	CancelGroup(ctx context.Context, groupID, userID int) error
	// DeleteGroup deletes the group without an ownership check.
	DeleteGroup(ctx context.Context, groupID int) error
	GetSummariesByUser(ctx context.Context, userID int, timeframe Timeframe) ([]BookingSummary, error)
	// GetActive lists all groups whose showtime has not started yet.
	GetActive(ctx context.Context) ([]BookingSummary, error)
}
