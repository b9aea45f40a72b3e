package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cinetix/booking-engine/internal/domain"
)

type PostgresShowtimeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowtimeRepository(db *pgxpool.Pool) *PostgresShowtimeRepository {
	return &PostgresShowtimeRepository{
		db: db,
	}
}

// Create resolves the movie duration, computes the occupied window including
// the turnover buffer, scans the hall for overlapping windows, and inserts —
// all inside one transaction. The half-open overlap test allows back-to-back
// showtimes. The exclusion constraint on (hall_id, occupied window) catches
// any overlap the scan could miss under weaker isolation, so correctness does
// not depend on the isolation level.
func (p *PostgresShowtimeRepository) Create(ctx context.Context, showtime *domain.Showtime) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var duration int

		err := tx.QueryRow(ctx, `SELECT duration_minutes FROM movies WHERE id = $1`, showtime.MovieID).Scan(&duration)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		var hallExists bool

		err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM halls WHERE id = $1)`, showtime.HallID).Scan(&hallExists)
		if err != nil {
			return err
		}

		if !hallExists {
			return domain.ErrRecordNotFound
		}

		occupied := time.Duration(duration)*time.Minute + domain.TurnoverBuffer
		showtime.OccupiedUntil = showtime.ShowDatetime.Add(occupied)

		var overlaps bool

		query := `
			SELECT EXISTS (
				SELECT 1 FROM showtimes
				WHERE hall_id = $1
				  AND show_datetime < $3
				  AND occupied_until > $2
			)
		`

		err = tx.QueryRow(ctx, query, showtime.HallID, showtime.ShowDatetime, showtime.OccupiedUntil).Scan(&overlaps)
		if err != nil {
			return err
		}

		if overlaps {
			return domain.ErrSchedulingConflict
		}

		query = `
			INSERT INTO showtimes (movie_id, hall_id, show_datetime, occupied_until)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at
		`

		err = tx.QueryRow(
			ctx,
			query,
			showtime.MovieID,
			showtime.HallID,
			showtime.ShowDatetime,
			showtime.OccupiedUntil).Scan(&showtime.ID, &showtime.CreatedAt)

		if err != nil {
			if isExclusionViolation(err) {
				return domain.ErrSchedulingConflict
			}

			return err
		}

		return nil
	})
}

func (p *PostgresShowtimeRepository) Delete(ctx context.Context, id int) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var hasReservations bool

		query := `
			SELECT EXISTS (
				SELECT 1 FROM reservation_groups
				WHERE showtime_id = $1
			)
		`

		err := tx.QueryRow(ctx, query, id).Scan(&hasReservations)
		if err != nil {
			return err
		}

		if hasReservations {
			return domain.ErrHasReservations
		}

		cmd, err := tx.Exec(ctx, `DELETE FROM showtimes WHERE id = $1`, id)
		if err != nil {
			return err
		}

		if cmd.RowsAffected() == 0 {
			return domain.ErrRecordNotFound
		}

		return nil
	})
}

const showtimeDetailQuery = `
	SELECT
		sh.id,
		sh.movie_id,
		sh.hall_id,
		sh.show_datetime,
		sh.occupied_until,
		sh.created_at,
		m.title,
		h.name
	FROM showtimes sh
	JOIN movies m ON sh.movie_id = m.id
	JOIN halls h ON sh.hall_id = h.id
`

func (p *PostgresShowtimeRepository) GetById(ctx context.Context, id int) (*domain.ShowtimeDetail, error) {
	query := showtimeDetailQuery + ` WHERE sh.id = $1`

	var detail domain.ShowtimeDetail

	err := p.db.QueryRow(ctx, query, id).Scan(
		&detail.ID,
		&detail.MovieID,
		&detail.HallID,
		&detail.ShowDatetime,
		&detail.OccupiedUntil,
		&detail.CreatedAt,
		&detail.MovieTitle,
		&detail.HallName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &detail, nil
}

func (p *PostgresShowtimeRepository) GetAll(ctx context.Context) ([]domain.ShowtimeDetail, error) {
	query := showtimeDetailQuery + ` ORDER BY sh.show_datetime`

	return p.queryDetails(ctx, query)
}

func (p *PostgresShowtimeRepository) GetByMovieTitle(ctx context.Context, title string) ([]domain.ShowtimeDetail, error) {
	query := showtimeDetailQuery + `
		WHERE m.title ILIKE '%' || $1 || '%'
		ORDER BY sh.show_datetime`

	return p.queryDetails(ctx, query, title)
}

func (p *PostgresShowtimeRepository) GetByMovieId(ctx context.Context, movieID int) ([]domain.ShowtimeDetail, error) {
	query := showtimeDetailQuery + `
		WHERE sh.movie_id = $1
		ORDER BY sh.show_datetime`

	return p.queryDetails(ctx, query, movieID)
}

func (p *PostgresShowtimeRepository) queryDetails(ctx context.Context, query string, args ...any) ([]domain.ShowtimeDetail, error) {
	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make([]domain.ShowtimeDetail, 0)

	for rows.Next() {
		var detail domain.ShowtimeDetail

		err = rows.Scan(
			&detail.ID,
			&detail.MovieID,
			&detail.HallID,
			&detail.ShowDatetime,
			&detail.OccupiedUntil,
			&detail.CreatedAt,
			&detail.MovieTitle,
			&detail.HallName,
		)

		if err != nil {
			return nil, err
		}

		details = append(details, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return details, nil
}
