package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cinetix/booking-engine/internal/domain"
)

type PostgresHallRepository struct {
	db *pgxpool.Pool
}

func NewPostgresHallRepository(db *pgxpool.Pool) *PostgresHallRepository {
	return &PostgresHallRepository{
		db: db,
	}
}

// Create inserts the hall row and generates its seat partition in the same
// transaction. Seats are created exactly once here and never regenerated.
func (p *PostgresHallRepository) Create(ctx context.Context, hall *domain.Hall) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO halls (name, total_seats)
			VALUES ($1, $2)
			RETURNING id, created_at
		`

		err := tx.QueryRow(ctx, query, hall.Name, hall.TotalSeats).Scan(&hall.ID, &hall.CreatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrHallAlreadyExists
			}

			return err
		}

		rows := make([][]any, 0, hall.TotalSeats)
		for seatNumber := 1; seatNumber <= hall.TotalSeats; seatNumber++ {
			rows = append(rows, []any{hall.ID, seatNumber})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"seats"},
			[]string{"hall_id", "seat_number"},
			pgx.CopyFromRows(rows),
		)

		return err
	})
}

func (p *PostgresHallRepository) GetAll(ctx context.Context) ([]domain.Hall, error) {
	query := `
		SELECT id, name, total_seats, created_at
		FROM halls
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	halls := make([]domain.Hall, 0)

	for rows.Next() {
		var hall domain.Hall

		err = rows.Scan(&hall.ID, &hall.Name, &hall.TotalSeats, &hall.CreatedAt)
		if err != nil {
			return nil, err
		}

		halls = append(halls, hall)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return halls, nil
}

func (p *PostgresHallRepository) GetById(ctx context.Context, id int) (*domain.Hall, error) {
	query := `
		SELECT id, name, total_seats, created_at
		FROM halls
		WHERE id = $1
	`

	var hall domain.Hall

	err := p.db.QueryRow(ctx, query, id).Scan(&hall.ID, &hall.Name, &hall.TotalSeats, &hall.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &hall, nil
}

func (p *PostgresHallRepository) UpdateName(ctx context.Context, id int, name string) (*domain.Hall, error) {
	query := `
		UPDATE halls
		SET name = $1
		WHERE id = $2
		RETURNING id, name, total_seats, created_at
	`

	var hall domain.Hall

	err := p.db.QueryRow(ctx, query, name, id).Scan(&hall.ID, &hall.Name, &hall.TotalSeats, &hall.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, domain.ErrRecordNotFound
		case isUniqueViolation(err):
			return nil, domain.ErrHallAlreadyExists
		}

		return nil, err
	}

	return &hall, nil
}

// Delete removes the hall together with its seats. A hall that is still
// occupied by an upcoming showtime cannot be deleted; past showtimes with
// reservation history block deletion through their foreign keys.
func (p *PostgresHallRepository) Delete(ctx context.Context, id int) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var occupied bool

		query := `
			SELECT EXISTS (
				SELECT 1 FROM showtimes
				WHERE hall_id = $1 AND occupied_until > now()
			)
		`

		err := tx.QueryRow(ctx, query, id).Scan(&occupied)
		if err != nil {
			return err
		}

		if occupied {
			return domain.ErrHasFutureShowtimes
		}

		cmd, err := tx.Exec(ctx, `DELETE FROM halls WHERE id = $1`, id)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrHasReservations
			}

			return err
		}

		if cmd.RowsAffected() == 0 {
			return domain.ErrRecordNotFound
		}

		return nil
	})
}
