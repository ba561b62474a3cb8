package portal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhyrak/go-timetable/pkg/model"
)

func TestPivotFillsPlaceholders(t *testing.T) {
	schedule := model.Schedule{
		{Subject: "MATH101", Day: "Monday", TimeSlot: model.TimeSlots[0]},
		{Subject: "OPS101", Day: "Wednesday", TimeSlot: model.TimeSlots[3]},
	}
	g := Pivot(schedule, "---")

	assert.Equal(t, model.Days, g.Days)
	require.Len(t, g.Rows, len(model.TimeSlots))
	for i, row := range g.Rows {
		assert.Equal(t, model.TimeSlots[i], row.TimeSlot)
		require.Len(t, row.Cells, len(model.Days))
	}
	assert.Equal(t, "MATH101", g.Cell(model.TimeSlots[0], "Monday"))
	assert.Equal(t, "OPS101", g.Cell(model.TimeSlots[3], "Wednesday"))
	assert.Equal(t, "---", g.Cell(model.TimeSlots[0], "Tuesday"))
	assert.Equal(t, "---", g.Cell(model.TimeSlots[2], "Friday"))
	assert.Equal(t, "", g.Cell("midnight", "Monday"))
}

func TestPivotEmpty(t *testing.T) {
	g := Pivot(nil, "-")
	for _, row := range g.Rows {
		for _, c := range row.Cells {
			assert.Equal(t, "-", c)
		}
	}
}

func TestPivotIgnoresUnknownCells(t *testing.T) {
	g := Pivot(model.Schedule{{Subject: "X", Day: "Sunday", TimeSlot: model.TimeSlots[0]}}, "---")
	assert.Equal(t, "---", g.Cell(model.TimeSlots[0], "Monday"))
}
