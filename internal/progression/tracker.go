package progression

import (
	"context"

	"github.com/2beens/trainprogress/internal/program"
	"github.com/2beens/trainprogress/internal/workouts"
	log "github.com/sirupsen/logrus"
)

type Phase string

const (
	PhaseInProgress      Phase = "in_progress"
	PhaseWeekComplete    Phase = "week_complete"
	PhaseProgramComplete Phase = "program_complete"
)

// State is where an instance stands. Slot is only meaningful while in progress.
type State struct {
	Phase Phase `json:"phase"`
	Week  int   `json:"week"`
	Slot  int   `json:"slot"`
}

type SlotStatus struct {
	Index       int    `json:"index"`
	DayName     string `json:"dayName"`
	DisplayName string `json:"displayName"`
	ShortName   string `json:"shortName"`
	Completed   bool   `json:"completed"`
	Next        bool   `json:"next"`
}

// Tracker answers progression questions for one instance. It mutates only the
// instance it was given; persisting the cursor is the caller's job.
type Tracker struct {
	instance *program.Instance
	template *program.Template
	records  recordReader
	calendar *Calendar
}

func NewTracker(instance *program.Instance, template *program.Template, store workoutStore, calendar *Calendar) *Tracker {
	return newTracker(instance, template, recordReader{store: store}, calendar)
}

func newTracker(instance *program.Instance, template *program.Template, records recordReader, calendar *Calendar) *Tracker {
	return &Tracker{
		instance: instance,
		template: template,
		records:  records,
		calendar: calendar,
	}
}

func (t *Tracker) Instance() *program.Instance {
	return t.instance
}

func (t *Tracker) completedThisWeek(ctx context.Context) ([]workouts.CompletedWorkout, error) {
	return t.records.fetch(ctx, t.instance.UserID, workouts.Window(t.calendar.CurrentWeekWindow()))
}

// IsTemplateSlotCompleted resolves a slot against the current calendar week.
// The week number does not narrow the lookup: records are matched by the calendar
// window, whatever program week they were logged in.
func (t *Tracker) IsTemplateSlotCompleted(ctx context.Context, weekNumber, slot int) (bool, error) {
	if slot < 0 || slot >= t.template.DaysPerWeek() {
		return IsSlotCompleted(t.template, slot, nil)
	}

	records, err := t.completedThisWeek(ctx)
	if err != nil {
		return false, err
	}

	log.Tracef("instance %s: resolving slot %d of week %d", t.instance.ID, slot, weekNumber)
	return IsSlotCompleted(t.template, slot, records)
}

// NextDueSlotIndex returns the first slot not completed this week, and false when there
// is none (week finished or program complete).
func (t *Tracker) NextDueSlotIndex(ctx context.Context) (int, bool, error) {
	if t.instance.IsComplete(t.template) {
		return 0, false, nil
	}

	records, err := t.completedThisWeek(ctx)
	if err != nil {
		return 0, false, err
	}

	slot, ok := nextDue(SlotCompletion(t.template, records))
	return slot, ok, nil
}

// AdvanceWeekIfComplete rolls the instance over to the next week once no slot is due.
// It advances at most once per calendar week and only for a record newer than the one
// behind the previous rollover. It never moves the week back and does nothing once the
// program is complete.
func (t *Tracker) AdvanceWeekIfComplete(ctx context.Context) (bool, error) {
	if t.instance.IsComplete(t.template) {
		return false, nil
	}

	records, err := t.completedThisWeek(ctx)
	if err != nil {
		return false, err
	}

	if _, due := nextDue(SlotCompletion(t.template, records)); due {
		return false, nil
	}

	// completion is read per calendar week, so a week that already rolled the program
	// over keeps reading as complete until it ends
	if containsRecord(records, t.instance.LastRolloverRecordID) {
		log.Debugf("instance %s: calendar week already rolled over to week %d", t.instance.ID, t.instance.CurrentWeek)
		return false, nil
	}

	newest := newestRecordID(records)
	if newest <= t.instance.LastRolloverRecordID {
		log.Debugf("instance %s: week %d already rolled over for record %d", t.instance.ID, t.instance.CurrentWeek, newest)
		return false, nil
	}

	t.instance.CurrentSessionIndex = 0
	t.instance.CurrentWeek++
	t.instance.LastRolloverRecordID = newest
	return true, nil
}

func (t *Tracker) State(ctx context.Context) (State, error) {
	if t.instance.IsComplete(t.template) {
		return State{Phase: PhaseProgramComplete, Week: t.instance.CurrentWeek}, nil
	}

	slot, due, err := t.NextDueSlotIndex(ctx)
	if err != nil {
		return State{}, err
	}
	if !due {
		return State{Phase: PhaseWeekComplete, Week: t.instance.CurrentWeek}, nil
	}
	return State{Phase: PhaseInProgress, Week: t.instance.CurrentWeek, Slot: slot}, nil
}

// UpcomingSlots lists every slot of the week with its completion flag and the next due one marked.
func (t *Tracker) UpcomingSlots(ctx context.Context) ([]SlotStatus, error) {
	completed := make([]bool, t.template.DaysPerWeek())
	if !t.instance.IsComplete(t.template) {
		records, err := t.completedThisWeek(ctx)
		if err != nil {
			return nil, err
		}
		completed = SlotCompletion(t.template, records)
	}

	next, due := nextDue(completed)
	if t.instance.IsComplete(t.template) {
		due = false
	}

	names := DisplayNames(t.template.Sessions)
	slots := make([]SlotStatus, 0, len(completed))
	for i, s := range t.template.Sessions {
		slots = append(slots, SlotStatus{
			Index:       i,
			DayName:     s.DayName,
			DisplayName: names[i].Full,
			ShortName:   names[i].Short,
			Completed:   completed[i],
			Next:        due && i == next,
		})
	}
	return slots, nil
}

func nextDue(completed []bool) (int, bool) {
	for i, done := range completed {
		if !done {
			return i, true
		}
	}
	return 0, false
}

func containsRecord(records []workouts.CompletedWorkout, id int64) bool {
	if id == 0 {
		return false
	}
	for _, r := range records {
		if r.ID == id {
			return true
		}
	}
	return false
}

func newestRecordID(records []workouts.CompletedWorkout) int64 {
	var newest int64
	for _, r := range records {
		if r.ID > newest {
			newest = r.ID
		}
	}
	return newest
}
