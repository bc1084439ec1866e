package progression

import (
	"context"
	"sort"
	"time"

	"github.com/2beens/trainprogress/internal/program"
	"github.com/2beens/trainprogress/internal/workouts"
	"github.com/google/uuid"
)

var streakMilestones = []int{7, 30, 100}

type Summary struct {
	TotalWorkouts        int     `json:"totalWorkouts"`
	CompletedSets        int     `json:"completedSets"`
	TotalReps            int     `json:"totalReps"`
	TotalVolume          float64 `json:"totalVolume"`
	TotalDurationSeconds int     `json:"totalDurationSeconds"`
	PersonalBests        int     `json:"personalBests"`
	WeeksLogged          int     `json:"weeksLogged"`
	ProgramCycles        int     `json:"programCycles"`
	WorkoutsThisWeek     int     `json:"workoutsThisWeek"`
	CurrentStreak        int     `json:"currentStreak"`
	LongestStreak        int     `json:"longestStreak"`
}

// Stats derives streaks and counts from a user's completion history.
type Stats struct {
	userID   uuid.UUID
	records  recordReader
	calendar *Calendar
}

func NewStats(userID uuid.UUID, store workoutStore, calendar *Calendar) *Stats {
	return newStats(userID, recordReader{store: store}, calendar)
}

func newStats(userID uuid.UUID, records recordReader, calendar *Calendar) *Stats {
	return &Stats{
		userID:   userID,
		records:  records,
		calendar: calendar,
	}
}

// WeeklyCompletionCount counts records in [Monday 00:00, next Monday 00:00) local time.
func (s *Stats) WeeklyCompletionCount(ctx context.Context) (int, error) {
	records, err := s.records.fetch(ctx, s.userID, workouts.Window(s.calendar.CurrentWeekWindow()))
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// CurrentStreak counts consecutive days with at least one completion, ending today.
func (s *Stats) CurrentStreak(ctx context.Context) (int, error) {
	history, err := s.history(ctx)
	if err != nil {
		return 0, err
	}
	return s.currentStreak(history), nil
}

func (s *Stats) LongestStreak(ctx context.Context) (int, error) {
	history, err := s.history(ctx)
	if err != nil {
		return 0, err
	}
	return s.longestStreak(history), nil
}

// Summary aggregates the whole history. Instance and template may be nil when the user
// has no active program, in which case no cycles are reported.
func (s *Stats) Summary(ctx context.Context, instance *program.Instance, tmpl *program.Template) (Summary, error) {
	history, err := s.history(ctx)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		TotalWorkouts: len(history),
		CurrentStreak: s.currentStreak(history),
		LongestStreak: s.longestStreak(history),
	}
	if instance != nil && tmpl != nil {
		summary.ProgramCycles = instance.Cycles(tmpl)
	}

	weekFrom, weekTo := s.calendar.CurrentWeekWindow()
	weeks := make(map[int]struct{})
	for i, w := range history {
		totals := w.Totals()
		summary.CompletedSets += totals.CompletedSets
		summary.TotalReps += totals.Reps
		summary.TotalVolume += totals.Volume
		summary.TotalDurationSeconds += w.DurationSeconds
		summary.PersonalBests += len(PersonalBests(w, history[i+1:]))
		weeks[w.WeekNumber] = struct{}{}
		if !w.CompletedAt.Before(weekFrom) && w.CompletedAt.Before(weekTo) {
			summary.WorkoutsThisWeek++
		}
	}
	summary.WeeksLogged = len(weeks)

	return summary, nil
}

// StreakMilestone reports the celebration threshold reached exactly by the given streak.
func StreakMilestone(streak int) (int, bool) {
	for _, m := range streakMilestones {
		if streak == m {
			return m, true
		}
	}
	return 0, false
}

// history returns every record up to the end of today, newest first.
func (s *Stats) history(ctx context.Context) ([]workouts.CompletedWorkout, error) {
	tomorrow := s.calendar.DayStart(s.calendar.Now()).AddDate(0, 0, 1)
	return s.records.fetch(ctx, s.userID, workouts.FetchParams{To: &tomorrow})
}

// trainingDays maps local day starts (unix seconds) of all completions.
func (s *Stats) trainingDays(history []workouts.CompletedWorkout) map[int64]struct{} {
	days := make(map[int64]struct{}, len(history))
	for _, w := range history {
		days[s.calendar.DayStart(w.CompletedAt).Unix()] = struct{}{}
	}
	return days
}

func (s *Stats) currentStreak(history []workouts.CompletedWorkout) int {
	days := s.trainingDays(history)
	streak := 0
	day := s.calendar.DayStart(s.calendar.Now())
	for {
		if _, ok := days[day.Unix()]; !ok {
			return streak
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}

func (s *Stats) longestStreak(history []workouts.CompletedWorkout) int {
	days := s.trainingDays(history)
	sorted := make([]int64, 0, len(days))
	for d := range days {
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	loc := s.calendar.Location()
	longest, run := 0, 0
	for i, d := range sorted {
		if i > 0 && time.Unix(sorted[i-1], 0).In(loc).AddDate(0, 0, 1).Unix() == d {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
