package program

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrTemplateNotFound = errors.New("program template not found")
	ErrInvalidTemplate  = errors.New("invalid program template")
)

// ExerciseSpec is a single prescribed exercise inside a session.
type ExerciseSpec struct {
	ExerciseID    string `json:"exerciseId"`
	Name          string `json:"name"`
	Sets          int    `json:"sets"`
	RepsMin       int    `json:"repsMin"`
	RepsMax       int    `json:"repsMax"`
	RestSeconds   int    `json:"restSeconds"`
	PrimaryMuscle string `json:"primaryMuscle"`
	Equipment     string `json:"equipment"`
}

// SessionTemplate is one slot of the weekly schedule.
// DayName is a label ("Push", "Legs", ...) and is not unique within a template.
type SessionTemplate struct {
	DayName   string         `json:"dayName"`
	Exercises []ExerciseSpec `json:"exercises"`
}

// Template is the repeating weekly schedule of a program.
// It is immutable once stored and may be shared by many instances.
type Template struct {
	ID         int64             `json:"id"`
	Name       string            `json:"name"`
	Sessions   []SessionTemplate `json:"sessions"`
	TotalWeeks int               `json:"totalWeeks"`
	CreatedAt  time.Time         `json:"createdAt"`
}

func (t *Template) DaysPerWeek() int {
	return len(t.Sessions)
}

// SlotName returns the day name of the given slot, and false if the slot is out of range.
func (t *Template) SlotName(slot int) (string, bool) {
	if slot < 0 || slot >= len(t.Sessions) {
		return "", false
	}
	return t.Sessions[slot].DayName, true
}

func (t *Template) ExercisesCount() int {
	count := 0
	for _, s := range t.Sessions {
		count += len(s.Exercises)
	}
	return count
}

func (t *Template) Validate() error {
	if len(t.Sessions) == 0 {
		return fmt.Errorf("%w: no sessions", ErrInvalidTemplate)
	}
	if t.TotalWeeks < 1 {
		return fmt.Errorf("%w: total weeks must be positive, got %d", ErrInvalidTemplate, t.TotalWeeks)
	}
	for i, s := range t.Sessions {
		if strings.TrimSpace(s.DayName) == "" {
			return fmt.Errorf("%w: session %d has no day name", ErrInvalidTemplate, i)
		}
		for j, ex := range s.Exercises {
			if ex.Sets < 0 || ex.RepsMin < 0 || ex.RepsMax < ex.RepsMin || ex.RestSeconds < 0 {
				return fmt.Errorf("%w: session %d exercise %d has invalid targets", ErrInvalidTemplate, i, j)
			}
		}
	}
	return nil
}
