package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/cinetix/booking-engine/internal/domain"
)

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []http.Cookie) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, c := range cookies {
		req.AddCookie(&c)
	}

	return req, nil
}

// doRequest drives the router directly and returns the raw response.
func doRequest(t testing.TB, testApp *TestApp, method, path string, body io.Reader, cookies []http.Cookie) *http.Response {
	req, err := prepareRequest(method, path, body, nil, cookies)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	testApp.App.Routes().ServeHTTP(rec, req)

	return rec.Result()
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore nondeterministic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		return k == "timestamp" || k == "requestId" || k == "createdAt" || k == "id"
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func resetDatabase(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(),
		`TRUNCATE reservations, reservation_groups, showtimes, seats, halls, movies RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

func seedMovie(t testing.TB, db *pgxpool.Pool, title string, durationMinutes int) int {
	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO movies (title, description, duration_minutes) VALUES ($1, '', $2) RETURNING id`,
		title, durationMinutes).Scan(&id)
	require.NoError(t, err)

	return id
}

func seedHall(t testing.TB, db *pgxpool.Pool, name string, totalSeats int) int {
	ctx := context.Background()

	var id int
	err := db.QueryRow(ctx,
		`INSERT INTO halls (name, total_seats) VALUES ($1, $2) RETURNING id`,
		name, totalSeats).Scan(&id)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		`INSERT INTO seats (hall_id, seat_number) SELECT $1, n FROM generate_series(1, $2) AS n`,
		id, totalSeats)
	require.NoError(t, err)

	return id
}

func seedShowtime(t testing.TB, db *pgxpool.Pool, movieID, hallID int, start time.Time, durationMinutes int) int {
	occupiedUntil := start.Add(time.Duration(durationMinutes)*time.Minute + domain.TurnoverBuffer)

	var id int
	err := db.QueryRow(context.Background(),
		`INSERT INTO showtimes (movie_id, hall_id, show_datetime, occupied_until) VALUES ($1, $2, $3, $4) RETURNING id`,
		movieID, hallID, start, occupiedUntil).Scan(&id)
	require.NoError(t, err)

	return id
}

func seatIDsByNumber(t testing.TB, db *pgxpool.Pool, hallID int, seatNumbers ...int) []int {
	rows, err := db.Query(context.Background(),
		`SELECT id FROM seats WHERE hall_id = $1 AND seat_number = ANY($2) ORDER BY seat_number`,
		hallID, seatNumbers)
	require.NoError(t, err)
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	require.Len(t, ids, len(seatNumbers))

	return ids
}

func markSeatStatus(t testing.TB, db *pgxpool.Pool, hallID, seatNumber int, status domain.SeatStatus) {
	_, err := db.Exec(context.Background(),
		`UPDATE seats SET status = $3 WHERE hall_id = $1 AND seat_number = $2`,
		hallID, seatNumber, status)
	require.NoError(t, err)
}

func countReservedSeats(t testing.TB, db *pgxpool.Pool, showtimeID int) int {
	var count int
	err := db.QueryRow(context.Background(),
		`SELECT count(*) FROM reservations WHERE showtime_id = $1`, showtimeID).Scan(&count)
	require.NoError(t, err)

	return count
}
