package program

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInstanceNotFound     = errors.New("active program instance not found")
	ErrConcurrentAssignment = errors.New("another program was assigned concurrently")
)

// Instance is a user's cursor over a Template.
// CurrentWeek == template.TotalWeeks+1 means the program is complete.
type Instance struct {
	ID                  uuid.UUID `json:"id"`
	UserID              uuid.UUID `json:"userId"`
	TemplateID          int64     `json:"templateId"`
	CurrentWeek         int       `json:"currentWeek"`
	CurrentSessionIndex int       `json:"currentSessionIndex"`
	// LastRolloverRecordID is the newest completion record seen when the week last rolled over.
	LastRolloverRecordID int64      `json:"lastRolloverRecordId"`
	StartedAt            time.Time  `json:"startedAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
	SupersededAt         *time.Time `json:"supersededAt,omitempty"`
}

func NewInstance(userID uuid.UUID, templateID int64, startedAt time.Time) *Instance {
	return &Instance{
		ID:                  uuid.New(),
		UserID:              userID,
		TemplateID:          templateID,
		CurrentWeek:         1,
		CurrentSessionIndex: 0,
		StartedAt:           startedAt,
		UpdatedAt:           startedAt,
	}
}

func (i *Instance) IsComplete(t *Template) bool {
	return i.CurrentWeek > t.TotalWeeks
}

// Cycles is the number of fully finished passes through the program.
func (i *Instance) Cycles(t *Template) int {
	if t.TotalWeeks <= 0 || i.CurrentWeek <= 1 {
		return 0
	}
	return (i.CurrentWeek - 1) / t.TotalWeeks
}
