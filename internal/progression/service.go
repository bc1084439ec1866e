package progression

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/trainprogress/internal/program"
	"github.com/2beens/trainprogress/internal/telemetry/metrics"
	"github.com/2beens/trainprogress/internal/telemetry/tracing"
	"github.com/2beens/trainprogress/internal/workouts"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const MaxRecentWorkouts = 100

type ActiveProgram struct {
	Instance     *program.Instance `json:"instance"`
	Template     *program.Template `json:"template"`
	DisplayNames []DisplayName     `json:"displayNames"`
}

type Progress struct {
	State            State        `json:"state"`
	TotalWeeks       int          `json:"totalWeeks"`
	DaysPerWeek      int          `json:"daysPerWeek"`
	NextSlot         *SlotStatus  `json:"nextSlot,omitempty"`
	Upcoming         []SlotStatus `json:"upcoming"`
	WorkoutsThisWeek int          `json:"workoutsThisWeek"`
	CurrentStreak    int          `json:"currentStreak"`
	StreakMilestone  int          `json:"streakMilestone,omitempty"`
}

type ServiceParams struct {
	Programs       programStore
	Templates      templateStore
	Workouts       workoutStore
	Locker         Locker
	Calendar       *Calendar
	MetricsManager *metrics.Manager
	// DegradeOnStoreError reports weekly count and streak as zero when the record store fails.
	DegradeOnStoreError bool
}

type Service struct {
	programs            programStore
	templates           templateStore
	workouts            workoutStore
	records             recordReader
	recorder            *Recorder
	calendar            *Calendar
	degradeOnStoreError bool
}

func NewService(params ServiceParams) *Service {
	templates := params.Templates
	if templates == nil {
		templates = params.Programs
	}
	locker := params.Locker
	if locker == nil {
		locker = NewLocalLocker()
	}
	calendar := params.Calendar
	if calendar == nil {
		calendar = NewCalendar(nil, nil)
	}

	return &Service{
		programs:            params.Programs,
		templates:           templates,
		workouts:            params.Workouts,
		records:             recordReader{store: params.Workouts, metrics: params.MetricsManager},
		recorder:            NewRecorder(params.Programs, templates, params.Workouts, locker, calendar, params.MetricsManager),
		calendar:            calendar,
		degradeOnStoreError: params.DegradeOnStoreError,
	}
}

// AssignProgram stores the template and starts a new instance for the user,
// superseding the previous one.
func (s *Service) AssignProgram(ctx context.Context, userID uuid.UUID, tmpl program.Template) (_ *ActiveProgram, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progression.service.assign")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	stored, err := s.programs.AddTemplate(ctx, tmpl)
	if err != nil {
		return nil, fmt.Errorf("add template: %w", err)
	}

	instance, err := s.programs.AssignProgram(ctx, userID, stored.ID, s.calendar.Now())
	if err != nil {
		return nil, fmt.Errorf("assign program: %w", err)
	}
	log.Infof("user %s: assigned program instance %s (template %d, %d weeks)", userID, instance.ID, stored.ID, stored.TotalWeeks)

	return &ActiveProgram{
		Instance:     instance,
		Template:     stored,
		DisplayNames: DisplayNames(stored.Sessions),
	}, nil
}

func (s *Service) ActiveProgram(ctx context.Context, userID uuid.UUID) (_ *ActiveProgram, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progression.service.active")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	instance, tmpl, err := resolveProgram(ctx, s.programs, s.templates, userID)
	if err != nil {
		return nil, err
	}
	return &ActiveProgram{
		Instance:     instance,
		Template:     tmpl,
		DisplayNames: DisplayNames(tmpl.Sessions),
	}, nil
}

func (s *Service) Progress(ctx context.Context, userID uuid.UUID) (_ *Progress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progression.service.progress")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	instance, tmpl, err := resolveProgram(ctx, s.programs, s.templates, userID)
	if err != nil {
		return nil, err
	}

	tracker := newTracker(instance, tmpl, s.records, s.calendar)
	state, err := tracker.State(ctx)
	if err != nil {
		return nil, err
	}
	upcoming, err := tracker.UpcomingSlots(ctx)
	if err != nil {
		return nil, err
	}

	progress := &Progress{
		State:       state,
		TotalWeeks:  tmpl.TotalWeeks,
		DaysPerWeek: tmpl.DaysPerWeek(),
		Upcoming:    upcoming,
	}
	for i := range upcoming {
		if upcoming[i].Next {
			progress.NextSlot = &upcoming[i]
			break
		}
	}

	stats := newStats(userID, s.records, s.calendar)
	if progress.WorkoutsThisWeek, err = s.degrade(stats.WeeklyCompletionCount(ctx)); err != nil {
		return nil, err
	}
	if progress.CurrentStreak, err = s.degrade(stats.CurrentStreak(ctx)); err != nil {
		return nil, err
	}
	if milestone, ok := StreakMilestone(progress.CurrentStreak); ok {
		progress.StreakMilestone = milestone
	}

	return progress, nil
}

func (s *Service) IsSlotCompleted(ctx context.Context, userID uuid.UUID, week, slot int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progression.service.slot")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	instance, tmpl, err := resolveProgram(ctx, s.programs, s.templates, userID)
	if err != nil {
		return false, err
	}
	return newTracker(instance, tmpl, s.records, s.calendar).IsTemplateSlotCompleted(ctx, week, slot)
}

func (s *Service) RecordCompletion(ctx context.Context, userID uuid.UUID, input CompletionInput) (*CompletionResult, error) {
	return s.recorder.RecordCompletion(ctx, userID, input)
}

func (s *Service) RecentWorkouts(ctx context.Context, userID uuid.UUID, limit int) (_ []workouts.CompletedWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progression.service.recent")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if limit <= 0 || limit > MaxRecentWorkouts {
		limit = MaxRecentWorkouts
	}
	return s.records.fetch(ctx, userID, workouts.FetchParams{Limit: limit})
}

func (s *Service) Summary(ctx context.Context, userID uuid.UUID) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progression.service.summary")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	instance, tmpl, err := resolveProgram(ctx, s.programs, s.templates, userID)
	if err != nil && !errors.Is(err, program.ErrInstanceNotFound) {
		return nil, err
	}

	summary, err := newStats(userID, s.records, s.calendar).Summary(ctx, instance, tmpl)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *Service) degrade(value int, err error) (int, error) {
	if err != nil && s.degradeOnStoreError && errors.Is(err, ErrStoreUnavailable) {
		log.Warnf("record store unavailable, reporting zero: %s", err)
		return 0, nil
	}
	return value, err
}
