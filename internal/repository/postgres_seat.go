package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cinetix/booking-engine/internal/domain"
)

type PostgresSeatRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSeatRepository(db *pgxpool.Pool) *PostgresSeatRepository {
	return &PostgresSeatRepository{
		db: db,
	}
}

func (p *PostgresSeatRepository) GetByHall(ctx context.Context, hallID int) ([]domain.Seat, error) {
	query := `
		SELECT id, hall_id, seat_number, status, created_at
		FROM seats
		WHERE hall_id = $1
		ORDER BY seat_number
	`

	rows, err := p.db.Query(ctx, query, hallID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.Seat, 0)

	for rows.Next() {
		var seat domain.Seat

		err = rows.Scan(&seat.ID, &seat.HallID, &seat.SeatNumber, &seat.Status, &seat.CreatedAt)
		if err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

func (p *PostgresSeatRepository) GetByHallAndNumber(ctx context.Context, hallID, seatNumber int) (*domain.Seat, error) {
	query := `
		SELECT id, hall_id, seat_number, status, created_at
		FROM seats
		WHERE hall_id = $1 AND seat_number = $2
	`

	var seat domain.Seat

	err := p.db.QueryRow(ctx, query, hallID, seatNumber).Scan(
		&seat.ID,
		&seat.HallID,
		&seat.SeatNumber,
		&seat.Status,
		&seat.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &seat, nil
}

func (p *PostgresSeatRepository) UpdateStatus(
	ctx context.Context,
	hallID, seatNumber int,
	status domain.SeatStatus) (*domain.Seat, error) {

	query := `
		UPDATE seats
		SET status = $1
		WHERE hall_id = $2 AND seat_number = $3
		RETURNING id, hall_id, seat_number, status, created_at
	`

	var seat domain.Seat

	err := p.db.QueryRow(ctx, query, status, hallID, seatNumber).Scan(
		&seat.ID,
		&seat.HallID,
		&seat.SeatNumber,
		&seat.Status,
		&seat.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &seat, nil
}
