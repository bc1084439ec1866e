package progression

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/trainprogress/internal/program"
	"github.com/2beens/trainprogress/internal/telemetry/metrics"
	"github.com/2beens/trainprogress/internal/workouts"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=progression_test

type workoutStore interface {
	Append(ctx context.Context, workout workouts.CompletedWorkout) (*workouts.CompletedWorkout, error)
	Fetch(ctx context.Context, userID uuid.UUID, params workouts.FetchParams) ([]workouts.CompletedWorkout, error)
}

type instanceStore interface {
	GetActiveInstance(ctx context.Context, userID uuid.UUID) (*program.Instance, error)
	UpdateCursor(ctx context.Context, instance *program.Instance) error
}

type templateStore interface {
	GetTemplate(ctx context.Context, id int64) (*program.Template, error)
}

type recordReader struct {
	store   workoutStore
	metrics *metrics.Manager
}

// fetch reads completion records, skipping malformed ones. Any other store error
// is reported as ErrStoreUnavailable.
func (r recordReader) fetch(ctx context.Context, userID uuid.UUID, params workouts.FetchParams) ([]workouts.CompletedWorkout, error) {
	records, err := r.store.Fetch(ctx, userID, params)
	if err == nil {
		return records, nil
	}

	fetchErrs := multierr.Errors(err)
	for _, fetchErr := range fetchErrs {
		if !errors.Is(fetchErr, workouts.ErrMalformedRecord) {
			return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
	}

	for _, fetchErr := range fetchErrs {
		log.Warnf("user %s: skipping workout record: %s", userID, fetchErr)
	}
	if r.metrics != nil {
		r.metrics.CounterMalformedRecords.Add(float64(len(fetchErrs)))
	}
	return records, nil
}

type programStore interface {
	instanceStore
	templateStore
	AddTemplate(ctx context.Context, template program.Template) (*program.Template, error)
	AssignProgram(ctx context.Context, userID uuid.UUID, templateID int64, startedAt time.Time) (*program.Instance, error)
}
