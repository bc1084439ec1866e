package progression

import (
	"fmt"

	"github.com/2beens/trainprogress/internal/program"
	"github.com/2beens/trainprogress/internal/workouts"
)

// IsSlotCompleted tells whether the given template slot has been done, using only the
// records of the current calendar week. Sessions share names, so the slot counts as done
// only when this week holds more records with its name than there are earlier slots
// carrying the same name.
func IsSlotCompleted(tmpl *program.Template, slot int, completedThisWeek []workouts.CompletedWorkout) (bool, error) {
	if slot < 0 || slot >= tmpl.DaysPerWeek() {
		return false, fmt.Errorf("%w: slot %d, days per week %d", ErrIndexOutOfRange, slot, tmpl.DaysPerWeek())
	}
	return slotCompleted(tmpl.Sessions, slot, countByName(completedThisWeek)), nil
}

// SlotCompletion resolves every slot of the template in one pass.
func SlotCompletion(tmpl *program.Template, completedThisWeek []workouts.CompletedWorkout) []bool {
	counts := countByName(completedThisWeek)
	completed := make([]bool, tmpl.DaysPerWeek())
	for i := range tmpl.Sessions {
		completed[i] = slotCompleted(tmpl.Sessions, i, counts)
	}
	return completed
}

func slotCompleted(sessions []program.SessionTemplate, slot int, completedCounts map[string]int) bool {
	name := sessions[slot].DayName
	priorCount := 0
	for _, s := range sessions[:slot] {
		if s.DayName == name {
			priorCount++
		}
	}
	return completedCounts[name] > priorCount
}

func countByName(records []workouts.CompletedWorkout) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.SessionName]++
	}
	return counts
}
