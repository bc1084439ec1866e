package progression

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/trainprogress/internal/program"
	"github.com/2beens/trainprogress/internal/telemetry/metrics"
	"github.com/2beens/trainprogress/internal/telemetry/tracing"
	"github.com/2beens/trainprogress/internal/workouts"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type CompletionInput struct {
	// SessionName defaults to the day name of the instance's current slot.
	SessionName     string                    `json:"sessionName"`
	CompletedAt     time.Time                 `json:"completedAt"`
	DurationSeconds int                       `json:"durationSeconds"`
	LoggedExercises []workouts.LoggedExercise `json:"loggedExercises"`
}

type CompletionResult struct {
	Workout       *workouts.CompletedWorkout `json:"workout"`
	PersonalBests []PersonalBest             `json:"personalBests"`
	State         State                      `json:"state"`
	WeekAdvanced  bool                       `json:"weekAdvanced"`
}

// Recorder is the write path: it stores a finished workout and moves the instance cursor.
type Recorder struct {
	instances      instanceStore
	templates      templateStore
	records        recordReader
	workoutStore   workoutStore
	locker         Locker
	calendar       *Calendar
	metricsManager *metrics.Manager
}

func NewRecorder(
	instances instanceStore,
	templates templateStore,
	workoutStore workoutStore,
	locker Locker,
	calendar *Calendar,
	metricsManager *metrics.Manager,
) *Recorder {
	return &Recorder{
		instances:      instances,
		templates:      templates,
		records:        recordReader{store: workoutStore, metrics: metricsManager},
		workoutStore:   workoutStore,
		locker:         locker,
		calendar:       calendar,
		metricsManager: metricsManager,
	}
}

// RecordCompletion appends the workout first and only then re-evaluates the cursor, so the
// instance never advances without a durable record behind it. Duplicate submissions are
// stored as separate records.
func (r *Recorder) RecordCompletion(ctx context.Context, userID uuid.UUID, input CompletionInput) (_ *CompletionResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progression.recorder.complete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	start := time.Now()
	defer func() {
		if r.metricsManager == nil {
			return
		}
		result := "ok"
		if err != nil {
			result = "error"
		}
		r.metricsManager.CounterCompletions.WithLabelValues(result).Inc()
		r.metricsManager.HistogramRecordDuration.Observe(time.Since(start).Seconds())
	}()

	unlock, err := r.locker.Lock(ctx, userID.String())
	if err != nil {
		return nil, err
	}
	defer unlock()

	instance, tmpl, err := resolveProgram(ctx, r.instances, r.templates, userID)
	if err != nil {
		return nil, err
	}
	if instance.IsComplete(tmpl) {
		return nil, ErrProgramComplete
	}

	sessionName := input.SessionName
	if sessionName == "" {
		name, ok := tmpl.SlotName(instance.CurrentSessionIndex)
		if !ok {
			return nil, fmt.Errorf("%w: cursor slot %d", ErrIndexOutOfRange, instance.CurrentSessionIndex)
		}
		sessionName = name
	} else if !hasSession(tmpl, sessionName) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSession, sessionName)
	}

	completedAt := input.CompletedAt
	if completedAt.IsZero() {
		completedAt = r.calendar.Now()
	}

	toAppend := workouts.CompletedWorkout{
		UserID:          userID,
		InstanceID:      instance.ID,
		SessionName:     sessionName,
		WeekNumber:      instance.CurrentWeek,
		CompletedAt:     completedAt,
		DurationSeconds: input.DurationSeconds,
		LoggedExercises: input.LoggedExercises,
	}
	if err := toAppend.Validate(); err != nil {
		return nil, err
	}

	workout, err := r.workoutStore.Append(ctx, toAppend)
	if err != nil {
		return nil, fmt.Errorf("%w: append completed workout: %w", ErrStoreUnavailable, err)
	}
	log.Debugf("user %s: recorded %s (record %d) in week %d", userID, sessionName, workout.ID, instance.CurrentWeek)

	tracker := newTracker(instance, tmpl, r.records, r.calendar)
	next, due, err := tracker.NextDueSlotIndex(ctx)
	if err != nil {
		return nil, err
	}

	weekAdvanced := false
	if due {
		instance.CurrentSessionIndex = next
	} else {
		weekAdvanced, err = tracker.AdvanceWeekIfComplete(ctx)
		if err != nil {
			return nil, err
		}
	}

	if err := r.instances.UpdateCursor(ctx, instance); err != nil {
		return nil, fmt.Errorf("%w: update cursor: %w", ErrStoreUnavailable, err)
	}

	if weekAdvanced {
		log.Infof("user %s: program instance %s advanced to week %d", userID, instance.ID, instance.CurrentWeek)
		if r.metricsManager != nil {
			r.metricsManager.CounterWeekRollovers.Inc()
		}
		if instance.IsComplete(tmpl) {
			log.Infof("user %s: program instance %s complete", userID, instance.ID)
			if r.metricsManager != nil {
				r.metricsManager.CounterProgramsCompleted.Inc()
			}
		}
	}

	state, err := tracker.State(ctx)
	if err != nil {
		return nil, err
	}

	return &CompletionResult{
		Workout:       workout,
		PersonalBests: r.personalBests(ctx, userID, *workout),
		State:         state,
		WeekAdvanced:  weekAdvanced,
	}, nil
}

// personalBests is best effort; the completion is already durable at this point.
func (r *Recorder) personalBests(ctx context.Context, userID uuid.UUID, workout workouts.CompletedWorkout) []PersonalBest {
	// To is exclusive, records logged at the very same instant are sorted out by PersonalBests
	to := workout.CompletedAt.Add(time.Nanosecond)
	history, err := r.records.fetch(ctx, userID, workouts.FetchParams{To: &to})
	if err != nil {
		log.Errorf("user %s: load history for personal bests: %s", userID, err)
		return []PersonalBest{}
	}
	return PersonalBests(workout, history)
}

func resolveProgram(ctx context.Context, instances instanceStore, templates templateStore, userID uuid.UUID) (*program.Instance, *program.Template, error) {
	instance, err := instances.GetActiveInstance(ctx, userID)
	if err != nil {
		if errors.Is(err, program.ErrInstanceNotFound) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: get active instance: %w", ErrStoreUnavailable, err)
	}

	tmpl, err := templates.GetTemplate(ctx, instance.TemplateID)
	if err != nil {
		if errors.Is(err, program.ErrTemplateNotFound) {
			return nil, nil, fmt.Errorf("%w: template %d of instance %s", ErrMissingTemplate, instance.TemplateID, instance.ID)
		}
		return nil, nil, fmt.Errorf("%w: get template: %w", ErrStoreUnavailable, err)
	}

	return instance, tmpl, nil
}

func hasSession(tmpl *program.Template, name string) bool {
	for _, s := range tmpl.Sessions {
		if s.DayName == name {
			return true
		}
	}
	return false
}
