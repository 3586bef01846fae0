package fixtures

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/scholarsync/core/school"
)

func TestService_ReturnsCopies(t *testing.T) {
	svc := NewService(Options{})
	ctx := context.Background()

	first, err := svc.GetStudents(ctx)
	if !assert.NoError(t, err) {
		return
	}
	first[0].FirstName = "Changed"

	second, _ := svc.GetStudents(ctx)
	assert.Equal(t, "John", second[0].FirstName)
	assert.Len(t, second, 5)
}

func TestService_Lookups(t *testing.T) {
	svc := NewService(Options{})
	ctx := context.Background()

	st, err := svc.GetStudentByID(ctx, "S1003")
	assert.NoError(t, err)
	assert.Equal(t, "Michael", st.FirstName)

	_, err = svc.GetStudentByID(ctx, "S9999")
	assert.Equal(t, school.ErrNotFound, err)

	tch, err := svc.GetTeacherByID(ctx, "T1002")
	assert.NoError(t, err)
	assert.Equal(t, "English Literature", tch.SubjectTaught)

	cls, err := svc.GetClassByID(ctx, "C1003")
	assert.NoError(t, err)
	assert.Equal(t, "11B", cls.Grade())

	_, err = svc.GetParentByID(ctx, "P0000")
	assert.Equal(t, school.ErrNotFound, err)
}

func TestService_Filters(t *testing.T) {
	svc := NewService(Options{})
	ctx := context.Background()

	subs, _ := svc.GetSubjectsByClassID(ctx, "C1001")
	assert.Len(t, subs, 3)

	att, _ := svc.GetAttendanceByClassID(ctx, "C1001", "")
	assert.Len(t, att, 2)
	att, _ = svc.GetAttendanceByClassID(ctx, "C1001", "2023-09-02")
	assert.Empty(t, att)
	att, _ = svc.GetAttendanceByStudentID(ctx, "S1003")
	if assert.Len(t, att, 1) {
		assert.Equal(t, school.Absent, att[0].Status)
	}

	exams, _ := svc.GetExamsByClassID(ctx, "C1002")
	assert.Len(t, exams, 2)

	res, _ := svc.GetResultsByExamID(ctx, "E1001")
	assert.Len(t, res, 4)
	res, _ = svc.GetResultsByStudentID(ctx, "S1001")
	assert.Len(t, res, 2)

	pays, _ := svc.GetFeePaymentsByStudentID(ctx, "S1005")
	if assert.Len(t, pays, 1) {
		assert.Equal(t, school.Pending, pays[0].PaymentStatus)
		assert.Equal(t, "", pays[0].PaymentDate)
	}

	bks, _ := svc.GetBooksByStudentID(ctx, "S1003")
	if assert.Len(t, bks, 1) {
		assert.Equal(t, "Advanced Physics", bks[0].Title)
	}
}

func TestService_TimetableSortedByPeriod(t *testing.T) {
	svc := NewService(Options{})
	ctx := context.Background()

	tt, err := svc.GetTimetableByClassID(ctx, "C1001", "Tuesday")
	if assert.NoError(t, err) && assert.Len(t, tt, 2) {
		assert.Equal(t, 1, tt[0].PeriodNumber)
		assert.Equal(t, 2, tt[1].PeriodNumber)
	}

	all, _ := svc.GetTimetableByClassID(ctx, "C1001", "")
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].PeriodNumber, all[i].PeriodNumber)
	}
}

func TestService_Latency(t *testing.T) {
	svc := NewService(Options{Latency: true})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := svc.GetStudents(ctx)
	assert.Equal(t, context.DeadlineExceeded, err)

	start := time.Now()
	_, err = svc.GetClassByID(context.Background(), "C1001")
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, int64(time.Since(start)), int64(delayByID))
}
