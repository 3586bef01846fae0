package screen_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/scholarsync/core/screen"
	"github.com/trezcool/scholarsync/core/user"
	testutil "github.com/trezcool/scholarsync/tests"
)

func statValues(d screen.Dashboard) map[string]string {
	m := make(map[string]string, len(d.Stats))
	for _, s := range d.Stats {
		m[s.Title] = s.Value
	}
	return m
}

func TestLoadDashboard(t *testing.T) {
	svc := testutil.NewDataService()
	monday := time.Date(2023, 9, 4, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		usr       user.User
		wantStats map[string]string
	}{
		{
			usr: admin,
			wantStats: map[string]string{
				"Total Students": "5", "Total Teachers": "3", "Classes": "3", "Attendance Rate": "80%",
			},
		},
		{
			usr:       teacher,
			wantStats: map[string]string{"My Classes": "2", "Students": "3", "Weekly Lessons": "5"},
		},
		{
			usr:       student,
			wantStats: map[string]string{"Attendance": "100%", "Classes Today": "3", "Library Books": "1"},
		},
		{
			usr:       parent,
			wantStats: map[string]string{"Children": "1", "Attendance": "100%", "Fee Status": "₹30,000 due"},
		},
	}
	for _, tc := range tests {
		t.Run(string(tc.usr.Role), func(t *testing.T) {
			d, err := screen.LoadDashboard(context.Background(), svc, tc.usr, monday)
			if assert.NoError(t, err) {
				assert.Equal(t, tc.wantStats, statValues(d))
				if assert.Len(t, d.Events, 3) {
					assert.Equal(t, "Parent-Teacher Meeting", d.Events[0].EventName)
				}
			}
		})
	}
}

func TestLoadDashboard_Details(t *testing.T) {
	svc := testutil.NewDataService()
	ctx := context.Background()

	d, err := screen.LoadDashboard(ctx, svc, student, time.Now())
	if assert.NoError(t, err) && assert.Len(t, d.Results, 2) {
		assert.Equal(t, "Mathematics", d.Results[0].Subject)
		assert.Equal(t, "Midterm", d.Results[0].Exam)
		assert.Equal(t, 85, d.Results[0].MarksObtained)
	}

	d, err = screen.LoadDashboard(ctx, svc, parent, time.Now())
	if assert.NoError(t, err) && assert.Len(t, d.Children, 1) {
		assert.Equal(t, "John Smith", d.Children[0].FullName())
	}

	d, err = screen.LoadDashboard(ctx, svc, admin, time.Now())
	if assert.NoError(t, err) {
		assert.Len(t, d.RecentStudents, 5)
	}
}
