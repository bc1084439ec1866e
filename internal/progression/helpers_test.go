package progression_test

import (
	"context"
	"testing"
	"time"

	"github.com/2beens/trainprogress/internal/program"
	"github.com/2beens/trainprogress/internal/progression"
	"github.com/2beens/trainprogress/internal/workouts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Wednesday, in the week starting Monday 2024-03-04
var wednesdayNoon = time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)

func fixedCalendar(at time.Time) *progression.Calendar {
	return progression.NewCalendar(at.Location(), progression.ClockFunc(func() time.Time { return at }))
}

func templateOf(totalWeeks int, names ...string) *program.Template {
	sessions := make([]program.SessionTemplate, 0, len(names))
	for _, n := range names {
		sessions = append(sessions, program.SessionTemplate{
			DayName:   n,
			Exercises: []program.ExerciseSpec{{Name: n + " press", Sets: 3, RepsMin: 8, RepsMax: 12}},
		})
	}
	return &program.Template{Name: "test", TotalWeeks: totalWeeks, Sessions: sessions}
}

func completed(userID uuid.UUID, name string, at time.Time) workouts.CompletedWorkout {
	return workouts.CompletedWorkout{
		UserID:      userID,
		SessionName: name,
		WeekNumber:  1,
		CompletedAt: at,
	}
}

// programFixture stores the template and assigns it to a fresh user in memory repos.
type programFixture struct {
	userID   uuid.UUID
	programs *program.MemoryRepo
	records  *workouts.MemoryRepo
	template *program.Template
	instance *program.Instance
}

func newProgramFixture(t *testing.T, tmpl *program.Template) *programFixture {
	t.Helper()
	ctx := context.Background()
	f := &programFixture{
		userID:   uuid.New(),
		programs: program.NewMemoryRepo(),
		records:  workouts.NewMemoryRepo(),
	}

	stored, err := f.programs.AddTemplate(ctx, *tmpl)
	require.NoError(t, err)
	f.template = stored

	instance, err := f.programs.AssignProgram(ctx, f.userID, stored.ID, wednesdayNoon)
	require.NoError(t, err)
	f.instance = instance
	return f
}

func (f *programFixture) complete(t *testing.T, name string, at time.Time) {
	t.Helper()
	_, err := f.records.Append(context.Background(), completed(f.userID, name, at))
	require.NoError(t, err)
}
