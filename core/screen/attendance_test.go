package screen_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/scholarsync/core/school"
	"github.com/trezcool/scholarsync/core/screen"
	testutil "github.com/trezcool/scholarsync/tests"
)

func TestAttendanceSheet_Toggle(t *testing.T) {
	screen.NewAttendanceID = func() string { return "ATT-NEW" }

	sheet, err := screen.LoadAttendanceSheet(context.Background(), testutil.NewDataService(), "C1001", "2023-09-01")
	if !assert.NoError(t, err) {
		return
	}
	assert.Len(t, sheet.Students, 2)

	present, absent, unmarked := sheet.Counts()
	assert.Equal(t, []int{1, 1, 0}, []int{present, absent, unmarked})

	for _, id := range []string{"S1001", "S1003"} {
		before, _ := sheet.Status(id)
		sheet.Toggle(id)
		after, _ := sheet.Status(id)
		assert.NotEqual(t, before, after)
		sheet.Toggle(id)
		again, _ := sheet.Status(id)
		assert.Equal(t, before, again, id)
	}

	// unmarked students get a present record on first toggle
	sheet.Toggle("S9999")
	st, ok := sheet.Status("S9999")
	assert.True(t, ok)
	assert.Equal(t, school.Present, st)
	assert.Equal(t, "ATT-NEW", sheet.Records[len(sheet.Records)-1].ID)
}

func TestAttendanceSheet_Apply(t *testing.T) {
	svc := testutil.NewDataService()
	sheet, err := screen.LoadAttendanceSheet(context.Background(), svc, "C1001", "2023-09-02")
	if !assert.NoError(t, err) {
		return
	}
	_, _, unmarked := sheet.Counts()
	assert.Equal(t, 2, unmarked)

	sheet.Apply(map[string]school.AttendanceStatus{"S1001": school.Absent, "S1003": school.Present, "S1005": "late"})
	assert.False(t, sheet.IsPresent("S1001"))
	assert.True(t, sheet.IsPresent("S1003"))
	_, ok := sheet.Status("S1005")
	assert.False(t, ok)

	n, err := sheet.Save(context.Background(), 0)
	assert.NoError(t, err)
	assert.Equal(t, "Attendance for Sep 2, 2023 has been saved.", n.Description)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n, err = sheet.Save(ctx, time.Second)
	assert.Equal(t, context.Canceled, err)
	assert.Equal(t, "Error", n.Title)
}

func TestLoadAttendance(t *testing.T) {
	svc := testutil.NewDataService()
	ctx := context.Background()

	v, err := screen.LoadAttendance(ctx, svc, teacher, "", "2023-09-01")
	if assert.NoError(t, err) {
		assert.True(t, v.CanTake)
		assert.Equal(t, "C1001", v.Sheet.Class.ID)
	}

	v, err = screen.LoadAttendance(ctx, svc, parent, "", "")
	if assert.NoError(t, err) && assert.Len(t, v.Summaries, 1) {
		assert.False(t, v.CanTake)
		assert.Equal(t, "S1001", v.Summaries[0].Student.ID)
		assert.Equal(t, 100, v.Summaries[0].Rate)
	}
}
