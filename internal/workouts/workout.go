package workouts

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMalformedRecord = errors.New("malformed completed workout record")
	ErrInvalidWorkout  = errors.New("invalid completed workout")
)

type LoggedSet struct {
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
	Completed bool    `json:"completed"`
}

func (s LoggedSet) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

type LoggedExercise struct {
	ExerciseName string      `json:"exerciseName"`
	Sets         []LoggedSet `json:"sets"`
}

// BestSet returns the completed set with the highest weight x reps.
func (e LoggedExercise) BestSet() (LoggedSet, bool) {
	var best LoggedSet
	found := false
	for _, s := range e.Sets {
		if !s.Completed {
			continue
		}
		if !found || s.Volume() > best.Volume() {
			best = s
			found = true
		}
	}
	return best, found
}

// CompletedWorkout is an append-only record of a finished session.
// It is linked to the program by SessionName and WeekNumber only.
type CompletedWorkout struct {
	ID              int64            `json:"id"`
	UserID          uuid.UUID        `json:"userId"`
	InstanceID      uuid.UUID        `json:"instanceId"`
	SessionName     string           `json:"sessionName"`
	WeekNumber      int              `json:"weekNumber"`
	CompletedAt     time.Time        `json:"completedAt"`
	DurationSeconds int              `json:"durationSeconds"`
	LoggedExercises []LoggedExercise `json:"loggedExercises"`
}

type Totals struct {
	CompletedSets int
	Reps          int
	Volume        float64
}

func (w *CompletedWorkout) Totals() Totals {
	var t Totals
	for _, e := range w.LoggedExercises {
		for _, s := range e.Sets {
			if !s.Completed {
				continue
			}
			t.CompletedSets++
			t.Reps += s.Reps
			t.Volume += s.Volume()
		}
	}
	return t
}

func (w *CompletedWorkout) Validate() error {
	if w.SessionName == "" {
		return fmt.Errorf("%w: session name missing", ErrInvalidWorkout)
	}
	if w.WeekNumber < 1 {
		return fmt.Errorf("%w: week number %d", ErrInvalidWorkout, w.WeekNumber)
	}
	if w.DurationSeconds < 0 {
		return fmt.Errorf("%w: duration %d", ErrInvalidWorkout, w.DurationSeconds)
	}
	if w.CompletedAt.IsZero() {
		return fmt.Errorf("%w: completion time missing", ErrInvalidWorkout)
	}
	// must stay in line with what decodeExercises accepts
	for _, e := range w.LoggedExercises {
		for i, s := range e.Sets {
			if s.Reps < 0 || s.Weight < 0 {
				return fmt.Errorf("%w: %s set %d has negative reps or weight", ErrInvalidWorkout, e.ExerciseName, i+1)
			}
		}
	}
	return nil
}

// MalformedRecordError reports a stored record whose exercise payload cannot be decoded.
type MalformedRecordError struct {
	RecordID int64
	Err      error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s %d: %s", ErrMalformedRecord, e.RecordID, e.Err)
}

func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}
