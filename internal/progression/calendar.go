package progression

import (
	"time"

	"github.com/jinzhu/now"
)

type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

var SystemClock Clock = ClockFunc(time.Now)

// Calendar computes local calendar days and Monday-based weeks.
type Calendar struct {
	clock  Clock
	config *now.Config
}

func NewCalendar(loc *time.Location, clock Clock) *Calendar {
	if loc == nil {
		loc = time.Local
	}
	if clock == nil {
		clock = SystemClock
	}
	return &Calendar{
		clock: clock,
		config: &now.Config{
			WeekStartDay: time.Monday,
			TimeLocation: loc,
		},
	}
}

func (c *Calendar) Now() time.Time {
	return c.clock.Now().In(c.config.TimeLocation)
}

func (c *Calendar) Location() *time.Location {
	return c.config.TimeLocation
}

// DayStart is local midnight of the day t falls on.
func (c *Calendar) DayStart(t time.Time) time.Time {
	return c.config.With(t.In(c.config.TimeLocation)).BeginningOfDay()
}

// WeekWindow returns [Monday 00:00, next Monday 00:00) around t.
func (c *Calendar) WeekWindow(t time.Time) (time.Time, time.Time) {
	from := c.config.With(t.In(c.config.TimeLocation)).BeginningOfWeek()
	return from, from.AddDate(0, 0, 7)
}

func (c *Calendar) CurrentWeekWindow() (time.Time, time.Time) {
	return c.WeekWindow(c.Now())
}
