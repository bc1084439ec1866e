package progression

import (
	"github.com/2beens/trainprogress/internal/workouts"
)

type PersonalBest struct {
	ExerciseName   string  `json:"exerciseName"`
	Weight         float64 `json:"weight"`
	Reps           int     `json:"reps"`
	Volume         float64 `json:"volume"`
	PreviousVolume float64 `json:"previousVolume"`
}

// PersonalBests compares the best completed set (weight x reps) of every exercise in
// the record with the best completed set of the same exercise in the earlier history.
// Earlier means completed before the record, or at the same time with a lower ID.
// Exercises never logged before are not reported.
func PersonalBests(record workouts.CompletedWorkout, history []workouts.CompletedWorkout) []PersonalBest {
	previousBest := make(map[string]float64)
	for _, w := range history {
		if !completedBefore(w, record) {
			continue
		}
		for _, e := range w.LoggedExercises {
			best, ok := e.BestSet()
			if !ok {
				continue
			}
			if v, seen := previousBest[e.ExerciseName]; !seen || best.Volume() > v {
				previousBest[e.ExerciseName] = best.Volume()
			}
		}
	}

	pbs := make([]PersonalBest, 0)
	reported := make(map[string]bool)
	for _, e := range record.LoggedExercises {
		best, ok := e.BestSet()
		if !ok || reported[e.ExerciseName] {
			continue
		}
		previous, seen := previousBest[e.ExerciseName]
		if !seen || best.Volume() <= previous {
			continue
		}
		reported[e.ExerciseName] = true
		pbs = append(pbs, PersonalBest{
			ExerciseName:   e.ExerciseName,
			Weight:         best.Weight,
			Reps:           best.Reps,
			Volume:         best.Volume(),
			PreviousVolume: previous,
		})
	}
	return pbs
}

func completedBefore(w, record workouts.CompletedWorkout) bool {
	if w.CompletedAt.Equal(record.CompletedAt) {
		return w.ID < record.ID
	}
	return w.CompletedAt.Before(record.CompletedAt)
}
