package domain

import (
	"context"
	"time"
)

// Hall is a screening room. Its seat partition is generated exactly once at
// creation time; total seat count never changes afterwards.
type Hall struct {
	ID         int
	Name       string
	TotalSeats int
	CreatedAt  time.Time
}

type HallRepository interface {
	// Create inserts the hall and its full seat partition in one transaction.
	Create(ctx context.Context, hall *Hall) error
	GetAll(ctx context.Context) ([]Hall, error)
	GetById(ctx context.Context, id int) (*Hall, error)
	// UpdateName renames the hall. Seat cardinality is not editable.
	UpdateName(ctx context.Context, id int, name string) (*Hall, error)
	// Delete removes the hall and its seats unless an upcoming showtime
	// still occupies it.
	Delete(ctx context.Context, id int) error
}
