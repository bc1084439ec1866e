package workouts

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

type storedWorkout struct {
	workout CompletedWorkout
	payload []byte
}

// MemoryRepo keeps completed workouts in process memory, encoded the same way
// the postgres repo stores them.
type MemoryRepo struct {
	mu     sync.RWMutex
	byUser map[uuid.UUID][]storedWorkout
	lastID int64
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byUser: make(map[uuid.UUID][]storedWorkout),
	}
}

func (r *MemoryRepo) Append(ctx context.Context, workout CompletedWorkout) (*CompletedWorkout, error) {
	if err := workout.Validate(); err != nil {
		return nil, err
	}
	payload, err := encodeExercises(workout.LoggedExercises)
	if err != nil {
		return nil, err
	}
	return r.AppendRaw(ctx, workout, payload)
}

// AppendRaw stores a record with an already encoded exercises payload, as imported
// from an older data export. The payload is only decoded on read.
func (r *MemoryRepo) AppendRaw(_ context.Context, workout CompletedWorkout, payload []byte) (*CompletedWorkout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	workout.ID = r.lastID
	workout.LoggedExercises = nil
	r.byUser[workout.UserID] = append(r.byUser[workout.UserID], storedWorkout{
		workout: workout,
		payload: append([]byte(nil), payload...),
	})

	exercises, _ := decodeExercises(workout.ID, payload)
	workout.LoggedExercises = exercises
	return &workout, nil
}

func (r *MemoryRepo) Fetch(_ context.Context, userID uuid.UUID, params FetchParams) ([]CompletedWorkout, error) {
	r.mu.RLock()
	stored := append([]storedWorkout(nil), r.byUser[userID]...)
	r.mu.RUnlock()

	sort.SliceStable(stored, func(i, j int) bool {
		a, b := stored[i].workout, stored[j].workout
		if a.CompletedAt.Equal(b.CompletedAt) {
			return a.ID > b.ID
		}
		return a.CompletedAt.After(b.CompletedAt)
	})

	var malformedErr error
	completed := make([]CompletedWorkout, 0)
	for _, s := range stored {
		if !params.matches(s.workout) {
			continue
		}
		exercises, err := decodeExercises(s.workout.ID, s.payload)
		if err != nil {
			malformedErr = multierr.Append(malformedErr, err)
			continue
		}
		w := s.workout
		w.LoggedExercises = exercises
		completed = append(completed, w)
		if params.Limit > 0 && len(completed) == params.Limit {
			break
		}
	}

	return completed, malformedErr
}

func (p FetchParams) matches(w CompletedWorkout) bool {
	if p.SessionName != "" && w.SessionName != p.SessionName {
		return false
	}
	if p.From != nil && w.CompletedAt.Before(*p.From) {
		return false
	}
	if p.To != nil && !w.CompletedAt.Before(*p.To) {
		return false
	}
	return true
}

// Window is a helper for FetchParams over [from, to).
func Window(from, to time.Time) FetchParams {
	return FetchParams{From: &from, To: &to}
}
