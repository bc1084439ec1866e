package workouts

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/trainprogress/internal/telemetry/tracing"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

// FetchParams filters completed workouts. Zero values mean no filter.
// From is inclusive, To is exclusive.
type FetchParams struct {
	SessionName string
	From        *time.Time
	To          *time.Time
	Limit       int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Append(ctx context.Context, workout CompletedWorkout) (_ *CompletedWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.append")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("user.id", workout.UserID.String()),
		attribute.String("session", workout.SessionName),
		attribute.Int("week", workout.WeekNumber),
	)

	if err := workout.Validate(); err != nil {
		return nil, err
	}

	payload, err := encodeExercises(workout.LoggedExercises)
	if err != nil {
		return nil, fmt.Errorf("marshal logged exercises: %w", err)
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO completed_workout (user_id, instance_id, session_name, week_number, completed_at, duration_seconds, logged_exercises)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		workout.UserID,
		workout.InstanceID,
		workout.SessionName,
		workout.WeekNumber,
		workout.CompletedAt,
		workout.DurationSeconds,
		payload,
	).Scan(&workout.ID)
	if err != nil {
		return nil, err
	}

	return &workout, nil
}

// Fetch returns the user's completed workouts, newest first.
// Records whose exercises cannot be decoded are left out of the result and reported
// through the returned error (each matching ErrMalformedRecord), next to the valid records.
func (r *Repo) Fetch(ctx context.Context, userID uuid.UUID, params FetchParams) (_ []CompletedWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.fetch")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user.id", userID.String()))
	if params.SessionName != "" {
		span.SetAttributes(attribute.String("session", params.SessionName))
	}
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	var sessionName, limit any
	if params.SessionName != "" {
		sessionName = params.SessionName
	}
	if params.Limit > 0 {
		limit = params.Limit
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, instance_id, session_name, week_number, completed_at, duration_seconds, logged_exercises
		FROM completed_workout
		WHERE user_id = $1
		  AND ($2::text IS NULL OR session_name = $2)
		  AND ($3::timestamptz IS NULL OR completed_at >= $3)
		  AND ($4::timestamptz IS NULL OR completed_at < $4)
		ORDER BY completed_at DESC, id DESC
		LIMIT $5
	`,
		userID,
		sessionName,
		params.From, params.To,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var malformedErr error
	completed := make([]CompletedWorkout, 0)
	for rows.Next() {
		var payload []byte
		var w CompletedWorkout
		if err := rows.Scan(
			&w.ID,
			&w.UserID,
			&w.InstanceID,
			&w.SessionName,
			&w.WeekNumber,
			&w.CompletedAt,
			&w.DurationSeconds,
			&payload,
		); err != nil {
			return nil, err
		}

		exercises, decodeErr := decodeExercises(w.ID, payload)
		if decodeErr != nil {
			malformedErr = multierr.Append(malformedErr, decodeErr)
			continue
		}
		w.LoggedExercises = exercises
		completed = append(completed, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("records", len(completed)))
	return completed, malformedErr
}
