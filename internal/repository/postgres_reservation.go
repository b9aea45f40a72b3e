package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cinetix/booking-engine/internal/domain"
)

type PostgresReservationRepository struct {
	db *pgxpool.Pool
}

func NewPostgresReservationRepository(db *pgxpool.Pool) *PostgresReservationRepository {
	return &PostgresReservationRepository{
		db: db,
	}
}

// CreateGroup inserts the reservation group and one seat-claim row per seat
// in one transaction. There is deliberately no availability pre-check before
// the insert: the (showtime_id, seat_id) unique constraint is the only
// arbiter of concurrent claims, so exactly one of any number of concurrent
// claimants commits and the rest roll back with ErrSeatAlreadyReserved.
func (p *PostgresReservationRepository) CreateGroup(
	ctx context.Context,
	group *domain.ReservationGroup,
	seatIDs []int) error {

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		err := checkSeatsBookable(ctx, tx, group.ShowtimeID, seatIDs)
		if err != nil {
			return err
		}

		query := `
			INSERT INTO reservation_groups (user_id, showtime_id)
			VALUES ($1, $2)
			RETURNING id, created_at
		`

		err = tx.QueryRow(ctx, query, group.UserID, group.ShowtimeID).Scan(&group.ID, &group.CreatedAt)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		return insertSeatClaims(ctx, tx, group.ID, group.ShowtimeID, seatIDs)
	})
}

// ReplaceSeats swaps the group's whole seat set. The delete and the insert
// run in the same transaction, so the group's own previous seats never
// conflict with its new ones; only claims held by other groups do.
func (p *PostgresReservationRepository) ReplaceSeats(ctx context.Context, groupID, userID int, seatIDs []int) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		showtimeID, err := lockGroupOwnedBy(ctx, tx, groupID, userID)
		if err != nil {
			return err
		}

		err = checkSeatsBookable(ctx, tx, showtimeID, seatIDs)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `DELETE FROM reservations WHERE reservation_group_id = $1`, groupID)
		if err != nil {
			return err
		}

		return insertSeatClaims(ctx, tx, groupID, showtimeID, seatIDs)
	})
}

func (p *PostgresReservationRepository) CancelGroup(ctx context.Context, groupID, userID int) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		_, err := lockGroupOwnedBy(ctx, tx, groupID, userID)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `DELETE FROM reservation_groups WHERE id = $1`, groupID)

		return err
	})
}

func (p *PostgresReservationRepository) DeleteGroup(ctx context.Context, groupID int) error {
	cmd, err := p.db.Exec(ctx, `DELETE FROM reservation_groups WHERE id = $1`, groupID)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

// lockGroupOwnedBy locks the group row for the duration of the transaction
// and verifies ownership.
func lockGroupOwnedBy(ctx context.Context, tx pgx.Tx, groupID, userID int) (int, error) {
	var ownerID, showtimeID int

	query := `
		SELECT user_id, showtime_id
		FROM reservation_groups
		WHERE id = $1
		FOR UPDATE
	`

	err := tx.QueryRow(ctx, query, groupID).Scan(&ownerID, &showtimeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrRecordNotFound
		}

		return 0, err
	}

	if ownerID != userID {
		return 0, domain.ErrNotOwner
	}

	return showtimeID, nil
}

// checkSeatsBookable verifies that every requested seat belongs to the
// showtime's hall and is physically in service. Seats marked BROKEN or
// MAINTENANCE are not bookable.
func checkSeatsBookable(ctx context.Context, tx pgx.Tx, showtimeID int, seatIDs []int) error {
	query := `
		SELECT
			count(*),
			count(*) FILTER (WHERE se.status = 'AVAILABLE')
		FROM seats se
		JOIN showtimes sh ON se.hall_id = sh.hall_id
		WHERE sh.id = $1 AND se.id = ANY($2)
	`

	var total, inService int

	err := tx.QueryRow(ctx, query, showtimeID, seatIDs).Scan(&total, &inService)
	if err != nil {
		return err
	}

	if total != len(seatIDs) {
		return domain.ErrRecordNotFound
	}

	if inService != len(seatIDs) {
		return domain.ErrSeatOutOfService
	}

	return nil
}

func insertSeatClaims(ctx context.Context, tx pgx.Tx, groupID, showtimeID int, seatIDs []int) error {
	rows := make([][]any, 0, len(seatIDs))
	for _, seatID := range seatIDs {
		rows = append(rows, []any{groupID, showtimeID, seatID})
	}

	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"reservations"},
		[]string{"reservation_group_id", "showtime_id", "seat_id"},
		pgx.CopyFromRows(rows),
	)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSeatAlreadyReserved
		}

		return err
	}

	return nil
}

func (p *PostgresReservationRepository) GetSummariesByUser(
	ctx context.Context,
	userID int,
	timeframe domain.Timeframe) ([]domain.BookingSummary, error) {

	cmp := ">="
	if timeframe == domain.TimeframePast {
		cmp = "<"
	}

	query := `
		SELECT
			rg.id,
			rg.user_id,
			m.title,
			h.name,
			sh.show_datetime,
			array_agg(se.seat_number ORDER BY se.seat_number),
			rg.created_at
		FROM reservation_groups rg
		JOIN showtimes sh ON rg.showtime_id = sh.id
		JOIN movies m ON sh.movie_id = m.id
		JOIN halls h ON sh.hall_id = h.id
		JOIN reservations r ON r.reservation_group_id = rg.id
		JOIN seats se ON r.seat_id = se.id
		WHERE rg.user_id = $1 AND sh.show_datetime ` + cmp + ` now()
		GROUP BY rg.id, m.title, h.name, sh.show_datetime
		ORDER BY sh.show_datetime
	`

	return p.querySummaries(ctx, query, userID)
}

func (p *PostgresReservationRepository) GetActive(ctx context.Context) ([]domain.BookingSummary, error) {
	query := `
		SELECT
			rg.id,
			rg.user_id,
			m.title,
			h.name,
			sh.show_datetime,
			array_agg(se.seat_number ORDER BY se.seat_number),
			rg.created_at
		FROM reservation_groups rg
		JOIN showtimes sh ON rg.showtime_id = sh.id
		JOIN movies m ON sh.movie_id = m.id
		JOIN halls h ON sh.hall_id = h.id
		JOIN reservations r ON r.reservation_group_id = rg.id
		JOIN seats se ON r.seat_id = se.id
		WHERE sh.show_datetime >= now()
		GROUP BY rg.id, m.title, h.name, sh.show_datetime
		ORDER BY sh.show_datetime
	`

	return p.querySummaries(ctx, query)
}

func (p *PostgresReservationRepository) querySummaries(
	ctx context.Context,
	query string,
	args ...any) ([]domain.BookingSummary, error) {

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]domain.BookingSummary, 0)

	for rows.Next() {
		var summary domain.BookingSummary

		err = rows.Scan(
			&summary.ReservationGroupID,
			&summary.UserID,
			&summary.MovieTitle,
			&summary.HallName,
			&summary.ShowDatetime,
			&summary.SeatNumbers,
			&summary.CreatedAt,
		)

		if err != nil {
			return nil, err
		}

		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
