package program_test

import (
	"testing"

	"github.com/2beens/trainprogress/internal/program"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pplTemplate() program.Template {
	return program.Template{
		Name:       "ppl",
		TotalWeeks: 4,
		Sessions: []program.SessionTemplate{
			{DayName: "Push", Exercises: []program.ExerciseSpec{{Name: "Bench", Sets: 3, RepsMin: 8, RepsMax: 12}}},
			{DayName: "Pull", Exercises: []program.ExerciseSpec{{Name: "Row", Sets: 3, RepsMin: 8, RepsMax: 12}}},
			{DayName: "Legs", Exercises: []program.ExerciseSpec{{Name: "Squat", Sets: 5, RepsMin: 5, RepsMax: 5}, {Name: "Lunge", Sets: 3, RepsMin: 10, RepsMax: 12}}},
		},
	}
}

func TestTemplate_Validate(t *testing.T) {
	tmpl := pplTemplate()
	require.NoError(t, tmpl.Validate())
	assert.Equal(t, 3, tmpl.DaysPerWeek())
	assert.Equal(t, 4, tmpl.ExercisesCount())

	name, ok := tmpl.SlotName(2)
	assert.True(t, ok)
	assert.Equal(t, "Legs", name)
	_, ok = tmpl.SlotName(3)
	assert.False(t, ok)
	_, ok = tmpl.SlotName(-1)
	assert.False(t, ok)

	empty := program.Template{TotalWeeks: 1}
	assert.ErrorIs(t, empty.Validate(), program.ErrInvalidTemplate)

	noWeeks := pplTemplate()
	noWeeks.TotalWeeks = 0
	assert.ErrorIs(t, noWeeks.Validate(), program.ErrInvalidTemplate)

	noName := pplTemplate()
	noName.Sessions[1].DayName = "  "
	assert.ErrorIs(t, noName.Validate(), program.ErrInvalidTemplate)

	badReps := pplTemplate()
	badReps.Sessions[0].Exercises[0].RepsMax = 2
	assert.ErrorIs(t, badReps.Validate(), program.ErrInvalidTemplate)
}

func TestInstance_Cycles(t *testing.T) {
	tmpl := pplTemplate()
	instance := &program.Instance{CurrentWeek: 1}
	assert.Equal(t, 0, instance.Cycles(&tmpl))
	assert.False(t, instance.IsComplete(&tmpl))

	instance.CurrentWeek = 4
	assert.Equal(t, 0, instance.Cycles(&tmpl))

	instance.CurrentWeek = 5
	assert.Equal(t, 1, instance.Cycles(&tmpl))
	assert.True(t, instance.IsComplete(&tmpl))
}
